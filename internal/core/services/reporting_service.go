package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SscSPs/tallypro_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/utils/accounting"
	"github.com/SscSPs/tallypro_backend/internal/utils/export"
	"github.com/SscSPs/tallypro_backend/internal/utils/forecast"
)

const (
	defaultTopProductsLimit = 5
	recentTransactionsLimit = 5
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	transactionRepo  portsrepo.TransactionReader
	partyRepo        portsrepo.PartyReader
	productRepo      portsrepo.ProductReader
	forecaster       forecast.Forecaster
	topProductsLimit int
}

// ReportingOption is a functional option for configuring the reporting service
type ReportingOption func(*reportingService)

// WithForecaster sets the revenue projection strategy.
func WithForecaster(f forecast.Forecaster) ReportingOption {
	return func(s *reportingService) {
		s.forecaster = f
	}
}

// WithTopProductsLimit sets the default size of the top products report.
func WithTopProductsLimit(n int) ReportingOption {
	return func(s *reportingService) {
		if n > 0 {
			s.topProductsLimit = n
		}
	}
}

// WithReportingBase applies shared service options such as the report cache.
func WithReportingBase(options ...ServiceOption) ReportingOption {
	return func(s *reportingService) {
		for _, option := range options {
			option(&s.BaseService)
		}
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	transactionRepo portsrepo.TransactionReader,
	partyRepo portsrepo.PartyReader,
	productRepo portsrepo.ProductReader,
	options ...ReportingOption,
) portssvc.ReportingSvc {
	svc := &reportingService{
		BaseService:      newBaseService(),
		transactionRepo:  transactionRepo,
		partyRepo:        partyRepo,
		productRepo:      productRepo,
		forecaster:       forecast.NewStaticForecaster(nil),
		topProductsLimit: defaultTopProductsLimit,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// cached returns the cached value for key, or computes, stores and returns it.
// The revision is read before compute loads any data, so a write committed
// during compute leaves the result under a revision later reads skip.
// Cache failures degrade to computing the value.
func cached[T any](ctx context.Context, s *reportingService, key string, compute func() (T, error)) (T, error) {
	if s.ReportCache == nil {
		return compute()
	}

	revision, err := s.ReportCache.Revision(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read report revision", slog.String("key", key))
		return compute()
	}

	if raw, found, err := s.ReportCache.Get(ctx, revision, key); err != nil {
		s.LogError(ctx, err, "Failed to read report cache", slog.String("key", key))
	} else if found {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			s.LogDebug(ctx, "Report served from cache", slog.String("key", key))
			return value, nil
		}
	}

	value, err := compute()
	if err != nil {
		return value, err
	}
	if raw, err := json.Marshal(value); err == nil {
		if err := s.ReportCache.Set(ctx, revision, key, raw); err != nil {
			s.LogError(ctx, err, "Failed to write report cache", slog.String("key", key))
		}
	}
	return value, nil
}

func (s *reportingService) transactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for report")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *reportingService) parties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListParties(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parties for report")
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}

func (s *reportingService) products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for report")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *reportingService) GetDashboard(ctx context.Context) (*domain.Dashboard, error) {
	dashboard, err := cached(ctx, s, "dashboard", func() (domain.Dashboard, error) {
		txns, err := s.transactions(ctx)
		if err != nil {
			return domain.Dashboard{}, err
		}
		products, err := s.products(ctx)
		if err != nil {
			return domain.Dashboard{}, err
		}
		parties, err := s.parties(ctx)
		if err != nil {
			return domain.Dashboard{}, err
		}

		names := accounting.NewPartyNames(parties)
		latest := accounting.RecentTransactions(txns, recentTransactionsLimit)
		recent := make([]domain.RecentTransaction, len(latest))
		for i, txn := range latest {
			recent[i] = domain.RecentTransaction{Transaction: txn, PartyName: names.Resolve(txn.Party)}
		}

		return domain.Dashboard{
			Stats:    accounting.ComputeDashboardStats(txns, products),
			Monthly:  accounting.ComputeMonthlyBuckets(txns),
			Expenses: accounting.ComputeExpenseDistribution(txns),
			Recent:   recent,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (s *reportingService) GetReportSummary(ctx context.Context) ([]domain.SummaryRow, error) {
	return cached(ctx, s, "summary", func() ([]domain.SummaryRow, error) {
		txns, err := s.transactions(ctx)
		if err != nil {
			return nil, err
		}
		products, err := s.products(ctx)
		if err != nil {
			return nil, err
		}
		return accounting.BuildReportSummary(txns, products), nil
	})
}

func (s *reportingService) ExportReportSummaryCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.GetReportSummary(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]export.Record, len(rows))
	for i, row := range rows {
		records[i] = export.Record{
			{Name: "Metric", Value: row.Metric},
			{Name: "Value", Value: row.Value.String()},
		}
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		s.LogError(ctx, err, "Failed to render report CSV")
		return nil, fmt.Errorf("failed to render report CSV: %w", err)
	}
	s.LogInfo(ctx, "Report summary exported", slog.Int("rows", len(rows)))
	return buf.Bytes(), nil
}

func (s *reportingService) GetRevenueByParty(ctx context.Context) ([]domain.PartyRevenue, error) {
	return cached(ctx, s, "revenue-by-party", func() ([]domain.PartyRevenue, error) {
		txns, err := s.transactions(ctx)
		if err != nil {
			return nil, err
		}
		parties, err := s.parties(ctx)
		if err != nil {
			return nil, err
		}
		return accounting.ComputeRevenueByParty(txns, parties), nil
	})
}

func (s *reportingService) GetTopProducts(ctx context.Context, limit int) ([]domain.ProductValue, error) {
	if limit <= 0 {
		limit = s.topProductsLimit
	}
	return cached(ctx, s, "top-products:"+strconv.Itoa(limit), func() ([]domain.ProductValue, error) {
		products, err := s.products(ctx)
		if err != nil {
			return nil, err
		}
		return accounting.ComputeTopProductsByValue(products, limit), nil
	})
}

func (s *reportingService) GetForecast(ctx context.Context) ([]domain.ForecastPoint, error) {
	return cached(ctx, s, "forecast", func() ([]domain.ForecastPoint, error) {
		txns, err := s.transactions(ctx)
		if err != nil {
			return nil, err
		}
		return s.forecaster.Project(accounting.ComputeMonthlyBuckets(txns)), nil
	})
}
