package components

import (
	"parkpricer/internal/infra/readstore"
	"parkpricer/internal/infra/writerepo"
	"parkpricer/internal/usecase/commands"
	"parkpricer/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read-side store for queries
		fx.Annotate(
			readstore.NewRulesReadStore,
			fx.As(new(queries.RulesReadStore)),
		),
		// Write-side repository for commands
		fx.Annotate(
			writerepo.NewRuleRepository,
			fx.As(new(commands.RuleRepository)),
		),
	),
)
