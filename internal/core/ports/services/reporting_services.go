package services

import (
	"context"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
)

// DaybookSvc builds the chronological running-balance ledger.
type DaybookSvc interface {
	GetDaybook(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerRow, error)
}

// ReportingSvc serves the dashboard and the reports view.
type ReportingSvc interface {
	GetDashboard(ctx context.Context) (*domain.Dashboard, error)
	GetReportSummary(ctx context.Context) ([]domain.SummaryRow, error)

	// ExportReportSummaryCSV renders the report summary as a CSV document.
	ExportReportSummaryCSV(ctx context.Context) ([]byte, error)

	GetRevenueByParty(ctx context.Context) ([]domain.PartyRevenue, error)

	// GetTopProducts ranks products by sale value. limit <= 0 uses the configured default.
	GetTopProducts(ctx context.Context, limit int) ([]domain.ProductValue, error)

	GetForecast(ctx context.Context) ([]domain.ForecastPoint, error)
}
