package accounting

import (
	"github.com/SscSPs/tallypro_backend/internal/core/domain"
)

// Report summary metric names, in export order.
const (
	MetricGrossSales     = "Gross Sales"
	MetricNetEarnings    = "Net Earnings"
	MetricTotalExpenses  = "Total Expenses"
	MetricInventoryValue = "Inventory Value"
)

// BuildReportSummary produces the flat metric rows used by the report export.
func BuildReportSummary(transactions []domain.Transaction, products []domain.Product) []domain.SummaryRow {
	stats := ComputeDashboardStats(transactions, products)

	return []domain.SummaryRow{
		{Metric: MetricGrossSales, Value: stats.CashIn},
		{Metric: MetricNetEarnings, Value: stats.Balance},
		{Metric: MetricTotalExpenses, Value: stats.CashOut},
		{Metric: MetricInventoryValue, Value: ComputeInventoryValue(products)},
	}
}
