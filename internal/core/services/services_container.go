package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/tallypro_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tallypro_backend/internal/core/ports/services"
	"github.com/SscSPs/tallypro_backend/internal/platform/config"
	"github.com/SscSPs/tallypro_backend/internal/utils/forecast"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	var shared []ServiceOption
	if repos.ReportCache != nil {
		shared = append(shared, WithReportCache(repos.ReportCache))
	}

	forecaster, err := forecast.New(cfg.ForecastStrategy, cfg.ForecastHorizon)
	if err != nil {
		slog.Warn("Falling back to static forecast", slog.String("error", err.Error()))
		forecaster = forecast.NewStaticForecaster(nil)
	}

	return &portssvc.ServiceContainer{
		Party:       NewPartyService(repos.PartyRepo, repos.TransactionRepo, shared...),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.PartyRepo, shared...),
		Product:     NewProductService(repos.ProductRepo, shared...),
		Daybook:     NewDaybookService(repos.TransactionRepo, repos.PartyRepo, shared...),
		Reporting: NewReportingService(
			repos.TransactionRepo,
			repos.PartyRepo,
			repos.ProductRepo,
			WithForecaster(forecaster),
			WithTopProductsLimit(cfg.TopProductsLimit),
			WithReportingBase(shared...),
		),
	}
}
