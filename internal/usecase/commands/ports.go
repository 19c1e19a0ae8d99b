package commands

import (
	"context"
	"time"

	"venue-rsvp/internal/domain/rsvp"
	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/infra/db"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotRepository interface {
	Find(ctx context.Context, conn db.DBTX, key string) (*seating.Snapshot, error)
	Allocate(ctx context.Context, tx db.DBTX, key string, partySize int) (int, error)
}

type RsvpRepository interface {
	Create(ctx context.Context, tx db.DBTX, entity *rsvp.Rsvp) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, key uuid.UUID, submitterEmail, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, submitterEmail string) (*queries.IdempotencyKeyView, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, submitterEmail string, resultRsvpID uuid.UUID) error
	ReleaseFailed(ctx context.Context, key uuid.UUID, submitterEmail string) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
