package models

import "github.com/shopspring/decimal"

// Party is the row stored in the parties table.
type Party struct {
	PartyID        string          `db:"party_id"`
	Name           string          `db:"name"`
	PartyType      string          `db:"party_type"`
	Phone          string          `db:"phone"`
	Email          string          `db:"email"`
	Address        string          `db:"address"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	AuditFields
}
