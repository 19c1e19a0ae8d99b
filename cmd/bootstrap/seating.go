package bootstrap

import (
	"context"

	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/infra/db"
	"venue-rsvp/internal/infra/repository"
	"venue-rsvp/internal/pkg/config"

	"go.uber.org/fx"
)

// SeatingModule builds the slot registry from config and makes sure the
// backing rows exist before the server takes traffic.
var SeatingModule = fx.Module("seating",
	fx.Provide(
		NewSlotRegistry,
	),
	fx.Invoke(
		EnsureSeatingStorage,
	),
)

func NewSlotRegistry(cfg config.Config) (*seating.Registry, error) {
	return seating.NewRegistry(cfg.Seating.SlotLabels, cfg.Seating.SlotCapacity)
}

func EnsureSeatingStorage(conn db.DBTX, registry *seating.Registry) error {
	ctx := context.Background()
	if err := db.EnsureSchema(ctx, conn); err != nil {
		return err
	}
	return repository.NewSlotRepository(conn).Seed(ctx, registry)
}
