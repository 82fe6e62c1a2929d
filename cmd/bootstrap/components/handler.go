package components

import (
	"shopcompare/internal/handler"
	"shopcompare/internal/handler/api"
	"shopcompare/internal/handler/middleware"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/jwt"
	"shopcompare/internal/usecase"
	"shopcompare/internal/usecase/commands"
	"shopcompare/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		newAuthHandler,
		api.NewProductHandler,
		api.NewDealHandler,
		api.NewWishlistHandler,
		api.NewOrderHandler,
		newSearchHistoryHandler,
		newHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func newAuthHandler(uc usecase.AuthUseCase, cfg config.Config, jwtService *jwt.Service) *api.AuthHandler {
	return api.NewAuthHandler(uc, cfg.Cookie, jwtService.TokenDuration())
}

func newSearchHistoryHandler(cmds commands.SearchHistoryCommands, q queries.SearchHistoryQueries, cfg config.Config) *api.SearchHistoryHandler {
	return api.NewSearchHistoryHandler(cmds, q, cfg.Cookie)
}

func newHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	deal *api.DealHandler,
	wishlist *api.WishlistHandler,
	order *api.OrderHandler,
	history *api.SearchHistoryHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Product:       product,
		Deal:          deal,
		Wishlist:      wishlist,
		Order:         order,
		SearchHistory: history,
	}
}
