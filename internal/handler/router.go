package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parking-reservation/internal/domain/auth"
	"parking-reservation/internal/handler/api"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterDeps struct {
	Logger       *middleware.Logger
	Auth         *middleware.AuthMiddleware
	RateLimiter  *middleware.RateLimiter
	SlotHandler  *api.SlotHandler
	AdminHandler *api.AdminHandler
}

// NewEngine returns a bare engine whose ClientIP honors forwarding headers
// only from cfg.TrustedProxies.
func NewEngine(cfg config.ServerConfig) (*gin.Engine, error) {
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	return engine, nil
}

func NewRouter(engine *gin.Engine, cfg config.Config, deps RouterDeps) {
	setupMiddleware(engine, cfg, deps.Logger)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{deps.Auth.RequireAuth(), deps.Auth.RequireRoleAtLeast(auth.RoleAdmin)}
	slots := deps.SlotHandler

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/slots"), []route{
			{Method: http.MethodGet, Path: "/total-slots", Handler: slots.GetTotalSlots},
			{Method: http.MethodPost, Path: "/set-total-slots", Handler: slots.SetTotalSlots, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/durations", Handler: slots.ListDurations},
			{Method: http.MethodPost, Path: "/reserve-slot", Handler: slots.ReserveSlot, Mw: []gin.HandlerFunc{deps.RateLimiter.Middleware()}},
			{Method: http.MethodGet, Path: "/reserved-slots", Handler: slots.ListReservedSlots},
			{Method: http.MethodDelete, Path: "/cancel-booking/:bookingId", Handler: slots.CancelBooking},
			{Method: http.MethodGet, Path: "/all-bookings", Handler: slots.ListAllBookings, Mw: adminOnly},
			{Method: http.MethodGet, Path: "/bookings/:username", Handler: slots.ListBookingsFor},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(adminOnly...)
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/reconcile", Handler: deps.AdminHandler.Reconcile},
		})
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
