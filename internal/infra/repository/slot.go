package repository

import (
	"context"

	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// SlotRepository owns the authoritative booked counters.
type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(conn db.DBTX) *SlotRepository {
	return &SlotRepository{db: conn}
}

// Seed inserts the registry's slots with booked = 0, skipping rows that
// already exist. Capacity of existing rows is left untouched: the counter
// survives restarts.
func (r *SlotRepository) Seed(ctx context.Context, registry *seating.Registry) error {
	for _, def := range registry.Slots() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO seating_slots (key, label, capacity, booked, position)
			VALUES ($1, $2, $3, 0, $4)
			ON CONFLICT (key) DO NOTHING`,
			def.Key, def.Label, def.Capacity, def.Position,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to seed seating slot", err)
		}
	}
	return nil
}

func (r *SlotRepository) Find(ctx context.Context, conn db.DBTX, key string) (*seating.Snapshot, error) {
	var snap seating.Snapshot
	err := conn.QueryRow(ctx, `
		SELECT key, label, capacity, booked, position
		FROM seating_slots
		WHERE key = $1`,
		key,
	).Scan(&snap.Key, &snap.Label, &snap.Capacity, &snap.Booked, &snap.Position)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("seating slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find seating slot", err)
	}
	return &snap, nil
}

// Allocate admits a party of the given size against the slot, or rejects it
// without touching the counter. The check and the increment are a single
// conditional UPDATE, so concurrent allocations serialize on the row and
// booked can never exceed capacity.
func (r *SlotRepository) Allocate(ctx context.Context, tx db.DBTX, key string, partySize int) (int, error) {
	var newBooked int
	err := tx.QueryRow(ctx, `
		UPDATE seating_slots
		SET booked = booked + $2
		WHERE key = $1 AND booked + $2 <= capacity
		RETURNING booked`,
		key, partySize,
	).Scan(&newBooked)
	if err == nil {
		return newBooked, nil
	}
	if err != pgx.ErrNoRows {
		return 0, infra.WrapRepoErr("failed to allocate seating", err)
	}

	// No row matched: either the slot is unknown or the party does not fit.
	// Re-read to tell the two apart and to report remaining capacity.
	snap, findErr := r.Find(ctx, tx, key)
	if findErr != nil {
		return 0, findErr
	}
	return 0, infra.WrapRepoErr(
		"party does not fit in remaining capacity",
		&seating.CapacityError{SlotKey: snap.Key, Label: snap.Label, Remaining: snap.Remaining()},
		infra.KindCapacityExceeded,
	)
}

// ListAll returns every slot in display order.
func (r *SlotRepository) ListAll(ctx context.Context, conn db.DBTX) ([]seating.Snapshot, error) {
	rows, err := conn.Query(ctx, `
		SELECT key, label, capacity, booked, position
		FROM seating_slots
		ORDER BY position`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seating slots", err)
	}
	defer rows.Close()

	var snaps []seating.Snapshot
	for rows.Next() {
		var snap seating.Snapshot
		if err := rows.Scan(&snap.Key, &snap.Label, &snap.Capacity, &snap.Booked, &snap.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan seating slot", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate seating slots", err)
	}
	return snaps, nil
}
