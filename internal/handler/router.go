package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shopcompare/internal/handler/api"
	"shopcompare/internal/handler/middleware"
	"shopcompare/internal/infra/metrics"
	"shopcompare/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Auth          *api.AuthHandler
	Product       *api.ProductHandler
	Deal          *api.DealHandler
	Wishlist      *api.WishlistHandler
	Order         *api.OrderHandler
	SearchHistory *api.SearchHistoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, store Pinger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, store, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(m.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, store Pinger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck(store))
	engine.GET("/metrics", m.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
		})

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		addRoutes(users, []route{
			{Method: http.MethodPut, Path: "/preferences", Handler: h.Auth.UpdatePreferences},
		})

		products := apiGroup.Group("/products")
		addRoutes(products, []route{
			{Method: http.MethodGet, Path: "/search", Handler: h.Product.Search},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
		})

		wishlist := apiGroup.Group("/wishlist")
		wishlist.Use(requireAuth)
		addRoutes(wishlist, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Wishlist.List},
			{Method: http.MethodPost, Path: "", Handler: h.Wishlist.Add},
			{Method: http.MethodDelete, Path: "/:productId", Handler: h.Wishlist.Remove},
		})

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		addRoutes(orders, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Order.List},
			{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
			{Method: http.MethodPut, Path: "/:orderId/refresh-status", Handler: h.Order.RefreshStatus},
			{Method: http.MethodDelete, Path: "/:orderId", Handler: h.Order.Delete},
		})

		search := apiGroup.Group("/search")
		search.Use(authMiddleware.OptionalAuth())
		addRoutes(search, []route{
			{Method: http.MethodPost, Path: "/history", Handler: h.SearchHistory.Record},
			{Method: http.MethodGet, Path: "/history", Handler: h.SearchHistory.List},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/deals", Handler: h.Deal.List},
		})
	}
}

// @Summary Health check
// @Description Check if the service and its store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "degraded",
				"message": "Store unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Service is healthy",
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
