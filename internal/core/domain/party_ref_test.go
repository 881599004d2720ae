package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartyRef(t *testing.T) {
	id, ok := domain.NoParty.ID()
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.True(t, domain.NoParty.IsNone())
	assert.True(t, domain.PartyRefOf("   ").IsNone())

	ref := domain.PartyRefOf("p1")
	id, ok = ref.ID()
	assert.True(t, ok)
	assert.Equal(t, "p1", id)
	assert.True(t, ref.Refers("p1"))
	assert.False(t, ref.Refers("p2"))
	assert.False(t, domain.NoParty.Refers(""))
}

func TestPartyRef_JSON(t *testing.T) {
	type wrapper struct {
		Party domain.PartyRef `json:"partyID"`
	}

	out, err := json.Marshal(wrapper{Party: domain.PartyRefOf("p2")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"partyID":"p2"}`, string(out))

	out, err = json.Marshal(wrapper{Party: domain.NoParty})
	require.NoError(t, err)
	assert.JSONEq(t, `{"partyID":null}`, string(out))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"partyID":""}`), &w))
	assert.True(t, w.Party.IsNone())

	require.NoError(t, json.Unmarshal([]byte(`{"partyID":"p3"}`), &w))
	assert.True(t, w.Party.Refers("p3"))

	require.NoError(t, json.Unmarshal([]byte(`{"partyID":null}`), &w))
	assert.True(t, w.Party.IsNone())

	assert.Error(t, json.Unmarshal([]byte(`{"partyID":42}`), &w))
}
