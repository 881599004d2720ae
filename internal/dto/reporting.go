package dto

import (
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	"github.com/SscSPs/tallypro_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse carries the KPI cards with display strings.
type DashboardStatsResponse struct {
	CashIn           decimal.Decimal `json:"cashIn"`
	CashOut          decimal.Decimal `json:"cashOut"`
	Balance          decimal.Decimal `json:"balance"`
	LowStockCount    int             `json:"lowStockCount"`
	CashInFormatted  string          `json:"cashInFormatted"`
	CashOutFormatted string          `json:"cashOutFormatted"`
	BalanceFormatted string          `json:"balanceFormatted"`
}

// RecentTransactionResponse is one entry of the dashboard's recent list.
type RecentTransactionResponse struct {
	TransactionResponse
	PartyName string `json:"partyName"`
}

// DashboardResponse represents the dashboard view.
type DashboardResponse struct {
	Stats    DashboardStatsResponse      `json:"stats"`
	Monthly  []domain.MonthlyBucket      `json:"monthly"`
	Expenses []domain.CategoryTotal      `json:"expenses"`
	Recent   []RecentTransactionResponse `json:"recent"`
}

// SummaryRowResponse is one metric of the report summary.
type SummaryRowResponse struct {
	Metric    string          `json:"metric"`
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
}

// ReportSummaryResponse represents the report summary cards.
type ReportSummaryResponse struct {
	Rows []SummaryRowResponse `json:"rows"`
}

// TopProductsParams defines query parameters for the top products report.
// A zero limit falls back to the configured default.
type TopProductsParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// TopProductResponse is a product ranked by sale value.
type TopProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
}

// ForecastResponse represents the projected revenue series.
type ForecastResponse struct {
	Points []domain.ForecastPoint `json:"points"`
}

// ToDashboardResponse converts the domain dashboard to its DTO.
func ToDashboardResponse(d domain.Dashboard) DashboardResponse {
	recent := make([]RecentTransactionResponse, len(d.Recent))
	for i, r := range d.Recent {
		recent[i] = RecentTransactionResponse{
			TransactionResponse: ToTransactionResponse(r.Transaction),
			PartyName:           r.PartyName,
		}
	}
	return DashboardResponse{
		Stats: DashboardStatsResponse{
			CashIn:           d.Stats.CashIn,
			CashOut:          d.Stats.CashOut,
			Balance:          d.Stats.Balance,
			LowStockCount:    d.Stats.LowStockCount,
			CashInFormatted:  utils.FormatINR(d.Stats.CashIn),
			CashOutFormatted: utils.FormatINR(d.Stats.CashOut),
			BalanceFormatted: utils.FormatINR(d.Stats.Balance),
		},
		Monthly:  d.Monthly,
		Expenses: d.Expenses,
		Recent:   recent,
	}
}

// ToReportSummaryResponse converts summary rows to the DTO.
func ToReportSummaryResponse(rows []domain.SummaryRow) ReportSummaryResponse {
	res := ReportSummaryResponse{Rows: make([]SummaryRowResponse, len(rows))}
	for i, r := range rows {
		res.Rows[i] = SummaryRowResponse{Metric: r.Metric, Value: r.Value, Formatted: utils.FormatINR(r.Value)}
	}
	return res
}

// ToTopProductsResponse converts ranked products to the DTO.
func ToTopProductsResponse(values []domain.ProductValue) []TopProductResponse {
	res := make([]TopProductResponse, len(values))
	for i, v := range values {
		res[i] = TopProductResponse{
			ProductID: v.ProductID,
			Name:      v.Name,
			SKU:       v.SKU,
			Quantity:  v.Quantity,
			Value:     v.Value,
		}
	}
	return res
}
