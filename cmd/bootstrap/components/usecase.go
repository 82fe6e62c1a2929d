package components

import (
	"shopcompare/internal/usecase"
	"shopcompare/internal/usecase/catalog"
	"shopcompare/internal/usecase/commands"
	"shopcompare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCatalogModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCatalogModule = fx.Module("usecase/catalog",
	fx.Provide(
		catalog.NewProductSearch,
		catalog.NewDailyDeals,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		commands.NewWishlistCommands,
		commands.NewOrderCommands,
		commands.NewSearchHistoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWishlistQueries,
		queries.NewOrderQueries,
		queries.NewSearchHistoryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
