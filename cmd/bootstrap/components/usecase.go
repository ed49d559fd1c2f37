package components

import (
	"savoria-api/internal/pkg/clock"
	"savoria-api/internal/usecase/commands"
	"savoria-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(pool *pgxpool.Pool) commands.TxBeginner { return pool },
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMenuQueries,
		queries.NewOfferQueries,
		queries.NewCartQueries,
		queries.NewOrderQueries,
	),
)
