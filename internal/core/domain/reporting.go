package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardStats are the headline KPIs of the dashboard.
type DashboardStats struct {
	CashIn        decimal.Decimal `json:"cashIn"`
	CashOut       decimal.Decimal `json:"cashOut"`
	Balance       decimal.Decimal `json:"balance"`
	LowStockCount int             `json:"lowStockCount"`
}

// MonthlyBucket accumulates revenue and expenses for one calendar month.
type MonthlyBucket struct {
	Period   string          `json:"period"` // YYYY-MM
	Label    string          `json:"label"`  // Short month name, e.g. "Jan"
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategoryTotal is the summed amount of DEBIT transactions in one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// PartyRevenue is the summed CREDIT amount received from one party.
type PartyRevenue struct {
	PartyID string          `json:"partyID"`
	Name    string          `json:"name"`
	Total   decimal.Decimal `json:"total"`
}

// PartyBalance pairs a party with its derived current balance.
type PartyBalance struct {
	Party
	Balance decimal.Decimal `json:"balance"`
}

// PartyTotals sums what the business is owed and what it owes across parties.
type PartyTotals struct {
	ToGet  decimal.Decimal `json:"toGet"`
	ToGive decimal.Decimal `json:"toGive"`
}

// ProductValue is a product with its sale-side valuation.
type ProductValue struct {
	Product
	Value decimal.Decimal `json:"value"`
}

// SummaryRow is one metric of the exportable report summary.
type SummaryRow struct {
	Metric string          `json:"metric"`
	Value  decimal.Decimal `json:"value"`
}

// ForecastPoint is one projected period.
type ForecastPoint struct {
	Period          string          `json:"period"`
	ProjectedAmount decimal.Decimal `json:"projectedAmount"`
}

// RecentTransaction is a dashboard list entry with its resolved party name.
type RecentTransaction struct {
	Transaction
	PartyName string `json:"partyName"`
}

// Dashboard bundles everything the dashboard view renders.
type Dashboard struct {
	Stats    DashboardStats      `json:"stats"`
	Monthly  []MonthlyBucket     `json:"monthly"`
	Expenses []CategoryTotal     `json:"expenses"`
	Recent   []RecentTransaction `json:"recent"`
}
