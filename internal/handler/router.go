package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"creator-booking/internal/domain/user"
	"creator-booking/internal/handler/api"
	"creator-booking/internal/handler/middleware"
	"creator-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Creator *api.CreatorHandler
	Booking *api.BookingHandler
	Receipt *api.ReceiptHandler
	Funds   *api.FundsHandler
	Admin   *api.AdminHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	registry *prometheus.Registry,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, registry, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		creators := apiGroup.Group("/creators")
		{
			addRoutes(creators, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Creator.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Creator.Register, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodPut, Path: "/me", Handler: h.Creator.UpdateMe, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Reserve, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodGet, Path: "/:id/active", Handler: h.Booking.IsActive, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/active-booking", Handler: h.Booking.ActiveBooking},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListUserBookings},
			})
		}

		receipts := apiGroup.Group("/receipts")
		receipts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(receipts, []route{
				{Method: http.MethodPost, Path: "/:id/transfer", Handler: h.Receipt.Transfer},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Receipt.Burn},
			})
		}

		funds := apiGroup.Group("/funds")
		funds.Use(authMiddleware.RequireAuth())
		{
			addRoutes(funds, []route{
				{Method: http.MethodPost, Path: "/approve", Handler: h.Funds.Approve},
				{Method: http.MethodGet, Path: "/balance", Handler: h.Funds.Balance},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/fee-rate", Handler: h.Admin.SetFeeRate},
				{Method: http.MethodPut, Path: "/platform-wallet", Handler: h.Admin.SetPlatformWallet},
				{Method: http.MethodPost, Path: "/funds/deposit", Handler: h.Funds.Deposit},
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
