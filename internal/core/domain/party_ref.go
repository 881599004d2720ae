package domain

import (
	"encoding/json"
	"strings"
)

// PartyRef is an optional reference from a transaction to a Party.
// The zero value is NoParty, which stands for a self / cash transaction
// (rent, utilities, walk-in sales).
type PartyRef struct {
	id string
}

// NoParty is the reference used by transactions without a counterparty.
var NoParty = PartyRef{}

// PartyRefOf returns a reference to the party with the given id.
// An empty or blank id yields NoParty.
func PartyRefOf(partyID string) PartyRef {
	return PartyRef{id: strings.TrimSpace(partyID)}
}

// ID returns the referenced party id and whether a party is referenced at all.
func (r PartyRef) ID() (string, bool) {
	return r.id, r.id != ""
}

// IsNone reports whether the reference points at no party.
func (r PartyRef) IsNone() bool {
	return r.id == ""
}

// Refers reports whether the reference points at the given party id.
func (r PartyRef) Refers(partyID string) bool {
	return r.id != "" && r.id == partyID
}

// String returns the party id, or "" for NoParty.
func (r PartyRef) String() string {
	return r.id
}

// MarshalJSON encodes NoParty as null and a party reference as its id.
func (r PartyRef) MarshalJSON() ([]byte, error) {
	if r.IsNone() {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON accepts null, "" or a party id string.
func (r *PartyRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NoParty
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = PartyRefOf(id)
	return nil
}
