package dto

import (
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to add a party.
type CreatePartyRequest struct {
	Name           string           `json:"name" binding:"required,max=200"`
	Type           domain.PartyType `json:"type" binding:"omitempty,oneof=CUSTOMER SUPPLIER"` // Defaults to CUSTOMER
	Phone          string           `json:"phone" binding:"omitempty,max=20"`
	Email          string           `json:"email" binding:"omitempty,email"`
	Address        string           `json:"address" binding:"omitempty,max=500"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePartyRequest struct {
	Name           *string           `json:"name" binding:"omitempty,min=1,max=200"`
	Type           *domain.PartyType `json:"type" binding:"omitempty,oneof=CUSTOMER SUPPLIER"`
	Phone          *string           `json:"phone" binding:"omitempty,max=20"`
	Email          *string           `json:"email" binding:"omitempty,email"`
	Address        *string           `json:"address" binding:"omitempty,max=500"`
	OpeningBalance *decimal.Decimal  `json:"openingBalance"`
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	Search string `form:"search"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID          string           `json:"partyID"`
	Name             string           `json:"name"`
	Type             domain.PartyType `json:"type"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	Address          string           `json:"address"`
	OpeningBalance   decimal.Decimal  `json:"openingBalance"`
	Balance          decimal.Decimal  `json:"balance"`
	BalanceFormatted string           `json:"balanceFormatted"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}

// PartyTotalsResponse is the ledger summary: what the business is owed and what it owes.
type PartyTotalsResponse struct {
	ToGet           decimal.Decimal `json:"toGet"`
	ToGive          decimal.Decimal `json:"toGive"`
	ToGetFormatted  string          `json:"toGetFormatted"`
	ToGiveFormatted string          `json:"toGiveFormatted"`
}

// ToPartyResponse converts a party with its derived balance to a PartyResponse DTO
func ToPartyResponse(pb domain.PartyBalance) PartyResponse {
	return PartyResponse{
		PartyID:          pb.PartyID,
		Name:             pb.Name,
		Type:             pb.Type,
		Phone:            pb.Phone,
		Email:            pb.Email,
		Address:          pb.Address,
		OpeningBalance:   pb.OpeningBalance,
		Balance:          pb.Balance,
		BalanceFormatted: utils.FormatINR(pb.Balance),
		CreatedAt:        pb.CreatedAt,
		LastUpdatedAt:    pb.LastUpdatedAt,
	}
}

// ToListPartyResponse converts a slice of party balances to PartyResponse DTOs
func ToListPartyResponse(balances []domain.PartyBalance) []PartyResponse {
	res := make([]PartyResponse, len(balances))
	for i, pb := range balances {
		res[i] = ToPartyResponse(pb)
	}
	return res
}

// ToPartyTotalsResponse converts domain party totals to a DTO.
func ToPartyTotalsResponse(t domain.PartyTotals) PartyTotalsResponse {
	return PartyTotalsResponse{
		ToGet:           t.ToGet,
		ToGive:          t.ToGive,
		ToGetFormatted:  utils.FormatINR(t.ToGet),
		ToGiveFormatted: utils.FormatINR(t.ToGive),
	}
}
