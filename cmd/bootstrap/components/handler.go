package components

import (
	"venue-rsvp/internal/handler"
	"venue-rsvp/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRsvpHandler,
		api.NewCapacityHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
