package accounting

import (
	"sort"
	"strings"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyNames indexes party display names by id.
type PartyNames map[string]string

// NewPartyNames builds the name index for a party collection.
func NewPartyNames(parties []domain.Party) PartyNames {
	names := make(PartyNames, len(parties))
	for _, p := range parties {
		names[p.PartyID] = p.Name
	}
	return names
}

// Resolve returns the display name for a party reference. References to no
// party resolve to "Self"; dangling references resolve to "Walk-in".
func (n PartyNames) Resolve(ref domain.PartyRef) string {
	id, ok := ref.ID()
	if !ok {
		return domain.SelfPartyLabel
	}
	if name, found := n[id]; found {
		return name
	}
	return domain.UnknownPartyLabel
}

// newFilter compiles a ledger filter into a predicate over a transaction and
// its resolved party name.
func newFilter(filter domain.LedgerFilter) func(domain.Transaction, string) bool {
	search := strings.ToLower(strings.TrimSpace(filter.SearchText))
	prefix := strings.TrimSpace(filter.DatePrefix)

	return func(txn domain.Transaction, partyName string) bool {
		if prefix != "" && !strings.HasPrefix(txn.DateString(), prefix) {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(txn.Category), search) ||
			strings.Contains(strings.ToLower(partyName), search)
	}
}

// BuildLedger filters the transactions, orders them by date and attaches a
// running balance seeded at zero (credit adds, debit subtracts).
//
// Transactions sharing a date keep their input order. The inputs are not
// modified and the result is never nil.
func BuildLedger(transactions []domain.Transaction, parties []domain.Party, filter domain.LedgerFilter) []domain.LedgerRow {
	names := NewPartyNames(parties)
	keep := newFilter(filter)

	rows := make([]domain.LedgerRow, 0, len(transactions))
	for _, txn := range transactions {
		if !countable(txn) {
			continue
		}
		name := names.Resolve(txn.Party)
		if !keep(txn, name) {
			continue
		}
		rows = append(rows, domain.LedgerRow{Transaction: txn, PartyName: name})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	running := decimal.Zero
	for i := range rows {
		credit, debit := SplitAmount(rows[i].Transaction)
		running = running.Add(credit).Sub(debit)
		rows[i].Credit = credit
		rows[i].Debit = debit
		rows[i].Balance = running
	}

	return rows
}
