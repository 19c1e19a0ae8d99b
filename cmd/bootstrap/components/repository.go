package components

import (
	"venue-rsvp/internal/infra/readstore"
	"venue-rsvp/internal/infra/repository"
	"venue-rsvp/internal/notifier"
	"venue-rsvp/internal/usecase/commands"
	"venue-rsvp/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Slot (capacity store)
		fx.Annotate(
			repository.NewSlotRepository,
			fx.As(new(commands.SlotRepository)),
		),
		// Rsvp
		fx.Annotate(
			repository.NewRsvpRepository,
			fx.As(new(commands.RsvpRepository)),
		),
		// Idempotency
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		// Notification (outbox: written by commands, drained by the notifier)
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(notifier.JobStore)),
		),
		// Read stores
		fx.Annotate(
			readstore.NewCapacityReadStore,
			fx.As(new(queries.CapacityReadStore)),
		),
		fx.Annotate(
			readstore.NewRsvpReadStore,
			fx.As(new(queries.RsvpReadStore)),
		),
	),
)
