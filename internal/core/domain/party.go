package domain

import (
	"strings"

	"github.com/SscSPs/tallypro_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Display labels used when a transaction has no resolvable party.
const (
	SelfPartyLabel    = "Self"
	UnknownPartyLabel = "Walk-in"
)

// PartyType classifies a party.
type PartyType string

const (
	PartyCustomer PartyType = "CUSTOMER"
	PartySupplier PartyType = "SUPPLIER"
)

// IsValid reports whether t is a known party type.
func (t PartyType) IsValid() bool {
	return t == PartyCustomer || t == PartySupplier
}

// Party is a customer or supplier the business trades with.
//
// Only the opening balance is stored. The current balance is derived from
// the opening balance and the party's transactions (see
// accounting.ComputePartyBalance). Positive means the party owes the
// business ("to get"), negative means the business owes the party ("to give").
type Party struct {
	PartyID        string          `json:"partyID"`
	Name           string          `json:"name"`
	Type           PartyType       `json:"type"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	Address        string          `json:"address"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	AuditFields
}

// Validate checks the party invariants.
func (p Party) Validate() error {
	if strings.TrimSpace(p.PartyID) == "" {
		return apperrors.NewValidationError("party ID is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return apperrors.NewValidationError("party name is required")
	}
	if !p.Type.IsValid() {
		return apperrors.NewValidationError("unknown party type '%s'", p.Type)
	}
	return nil
}
