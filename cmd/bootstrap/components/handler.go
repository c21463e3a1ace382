package components

import (
	"parkpricer/internal/handler"
	"parkpricer/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewAvailabilityHandler,
	),
	fx.Invoke(handler.NewRouter),
)
