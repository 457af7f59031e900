package components

import (
	"parking-reservation/internal/handler"
	"parking-reservation/internal/handler/api"
	"parking-reservation/internal/handler/middleware"
	"parking-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(RegisterRoutes),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}

type routeParams struct {
	fx.In

	Engine       *gin.Engine
	Config       config.Config
	Logger       *middleware.Logger
	Auth         *middleware.AuthMiddleware
	RateLimiter  *middleware.RateLimiter
	SlotHandler  *api.SlotHandler
	AdminHandler *api.AdminHandler
}

func RegisterRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config, handler.RouterDeps{
		Logger:       p.Logger,
		Auth:         p.Auth,
		RateLimiter:  p.RateLimiter,
		SlotHandler:  p.SlotHandler,
		AdminHandler: p.AdminHandler,
	})
}
