package components

import (
	"lead-capture/internal/handler"
	"lead-capture/internal/handler/api"
	"lead-capture/internal/handler/middleware"
	"lead-capture/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLeadHandler,
		func(cfg config.Config) *middleware.IPRateLimiter {
			return middleware.NewIPRateLimiter(cfg.RateLimit)
		},
	),
	fx.Invoke(handler.NewRouter),
)
