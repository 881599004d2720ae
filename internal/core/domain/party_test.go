package domain_test

import (
	"testing"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParty_Validate(t *testing.T) {
	valid := domain.Party{PartyID: "p1", Name: "Ramesh Traders", Type: domain.PartyCustomer}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		party domain.Party
	}{
		{"missing id", domain.Party{Name: "x", Type: domain.PartyCustomer}},
		{"blank name", domain.Party{PartyID: "p1", Name: "  ", Type: domain.PartySupplier}},
		{"unknown type", domain.Party{PartyID: "p1", Name: "x", Type: "VENDOR"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.party.Validate(), apperrors.ErrValidation)
		})
	}
}
