package readstore

import (
	"context"

	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"
)

// CapacityReadStore serves the public polling widget. It reads the same
// rows the allocator writes, so a committed increment is visible on the
// next read.
type CapacityReadStore struct {
	db db.DBTX
}

func NewCapacityReadStore(conn db.DBTX) *CapacityReadStore {
	return &CapacityReadStore{db: conn}
}

func (r *CapacityReadStore) ListAll(ctx context.Context) ([]seating.Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT key, label, capacity, booked, position
		FROM seating_slots
		ORDER BY position`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list capacity", err)
	}
	defer rows.Close()

	var snaps []seating.Snapshot
	for rows.Next() {
		var snap seating.Snapshot
		if err := rows.Scan(&snap.Key, &snap.Label, &snap.Capacity, &snap.Booked, &snap.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan capacity row", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate capacity rows", err)
	}
	return snaps, nil
}
