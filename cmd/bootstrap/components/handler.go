package components

import (
	"creator-booking/internal/handler"
	"creator-booking/internal/handler/api"
	"creator-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCreatorHandler,
		api.NewBookingHandler,
		api.NewReceiptHandler,
		api.NewFundsHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
