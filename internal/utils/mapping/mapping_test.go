package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionMapping_PartyRef(t *testing.T) {
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	self := ToModelTransaction(domain.Transaction{TransactionID: "t3", Date: date, TransactionType: domain.Debit, Amount: decimal.NewFromInt(1500)})
	assert.Nil(t, self.PartyID)
	assert.True(t, ToDomainTransaction(self).Party.IsNone())

	withParty := ToModelTransaction(domain.Transaction{TransactionID: "t1", Date: date, Party: domain.PartyRefOf("p1"), TransactionType: domain.Credit, Amount: decimal.NewFromInt(4500)})
	require.NotNil(t, withParty.PartyID)
	assert.Equal(t, "p1", *withParty.PartyID)

	back := ToDomainTransaction(withParty)
	assert.True(t, back.Party.Refers("p1"))
	assert.Equal(t, "2025-01-05", back.DateString())
	assert.Equal(t, domain.Credit, back.TransactionType)
}

func TestPartyMapping(t *testing.T) {
	now := time.Now().UTC()
	party := domain.Party{
		PartyID:        "p2",
		Name:           "Suresh Suppliers",
		Type:           domain.PartySupplier,
		Phone:          "9123456789",
		OpeningBalance: decimal.NewFromInt(-8200),
		AuditFields:    domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	m := ToModelParty(party)
	assert.Equal(t, "SUPPLIER", m.PartyType)
	assert.Equal(t, party, ToDomainParty(m))
}

func TestStockMovementMapping(t *testing.T) {
	movement := domain.StockMovement{
		MovementID: "m1",
		ProductID:  "pr1",
		Date:       time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
		Direction:  domain.StockOut,
		Quantity:   decimal.NewFromInt(4),
	}

	m := ToModelStockMovement(movement)
	assert.Equal(t, "OUT", m.Direction)
	assert.Equal(t, movement, ToDomainStockMovement(m))
}
