package queries

import (
	"context"

	"venue-rsvp/internal/domain/seating"
)

// SlotView is one row of the public capacity board.
type SlotView struct {
	Key       string         `json:"key"`
	Label     string         `json:"label"`
	Capacity  int            `json:"capacity"`
	Booked    int            `json:"booked"`
	Remaining int            `json:"remaining"`
	Status    seating.Status `json:"status"`
}

type CapacityReadStore interface {
	ListAll(ctx context.Context) ([]seating.Snapshot, error)
}

type CapacityQueries interface {
	Board(ctx context.Context) ([]SlotView, error)
}

type capacityQueriesImpl struct {
	store CapacityReadStore
}

func NewCapacityQueries(store CapacityReadStore) CapacityQueries {
	return &capacityQueriesImpl{store: store}
}

// Board projects every slot into display form. Numbers may be stale the
// moment they are returned; the allocator never trusts them.
func (q *capacityQueriesImpl) Board(ctx context.Context) ([]SlotView, error) {
	snaps, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, len(snaps))
	for i, snap := range snaps {
		views[i] = FromSnapshot(snap)
	}
	return views, nil
}

func FromSnapshot(snap seating.Snapshot) SlotView {
	return SlotView{
		Key:       snap.Key,
		Label:     snap.Label,
		Capacity:  snap.Capacity,
		Booked:    snap.Booked,
		Remaining: snap.Remaining(),
		Status:    snap.Status(),
	}
}
