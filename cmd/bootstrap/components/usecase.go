package components

import (
	"log/slog"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/pkg/clock"
	"parkpricer/internal/pkg/config"
	"parkpricer/internal/quoteclient"
	"parkpricer/internal/usecase/commands"
	"parkpricer/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(cfg config.Config) *pricing.SyntheticDemand {
			return pricing.NewSyntheticDemand(cfg.Pricing.DemandSeed)
		},
		fx.As(new(pricing.DemandSignal)),
	),
	pricing.NewCalculator,
	pricing.NewForecaster,
	// Remote-first quote path; empty UPSTREAM_PRICING_URL quotes locally.
	fx.Annotate(
		func(cfg config.Config, calc *pricing.Calculator, logger *slog.Logger) *quoteclient.Client {
			return quoteclient.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, calc, logger)
		},
		fx.As(new(queries.QuoteSource)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPricingQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRuleCommands,
	),
)
