package components

import (
	"venue-rsvp/internal/pkg/clock"
	"venue-rsvp/internal/usecase/commands"
	"venue-rsvp/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewRsvpUseCase,
		queries.NewRsvpQueries,
		queries.NewCapacityQueries,
	),
)
