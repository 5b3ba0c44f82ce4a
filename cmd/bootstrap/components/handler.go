package components

import (
	"sauna-reservation/internal/handler"
	"sauna-reservation/internal/handler/api"
	"sauna-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewSharedReservationHandler,
		api.NewSaunaHandler,
		api.NewBoatHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
