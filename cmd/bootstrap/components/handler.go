package components

import (
	"mountworks/internal/handler"
	"mountworks/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewWorkerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
