package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"savoria-api/internal/handler/api"
	"savoria-api/internal/handler/middleware"
	"savoria-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, menuHandler *api.MenuHandler, offerHandler *api.OfferHandler, cartHandler *api.CartHandler, orderHandler *api.OrderHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, menuHandler, offerHandler, cartHandler, orderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.CustomerContext())
}

func setupRoutes(engine *gin.Engine, menuHandler *api.MenuHandler, offerHandler *api.OfferHandler, cartHandler *api.CartHandler, orderHandler *api.OrderHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		menu := apiGroup.Group("/menu")
		{
			addRoutes(menu, []route{
				{Method: http.MethodGet, Path: "", Handler: menuHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: menuHandler.Get},
				{Method: http.MethodGet, Path: "/:id/rewards", Handler: offerHandler.RewardsForItem},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/offers", Handler: offerHandler.ListActive},
			{Method: http.MethodPost, Path: "/cart/quote", Handler: cartHandler.Quote},
		})

		orders := apiGroup.Group("/orders")
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.PlaceOrder, Mw: []gin.HandlerFunc{middleware.RequireCustomer()}},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListOrders, Mw: []gin.HandlerFunc{middleware.RequireCustomer()}},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
