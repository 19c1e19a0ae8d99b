package queries

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRsvpNotFound = errs.New("rsvp not found")

type RsvpReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RsvpView, error)
	FindByCategoryFirstPage(ctx context.Context, category string, limit int32) ([]*RsvpListItem, error)
	FindByCategoryKeyset(ctx context.Context, category string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*RsvpListItem, error)
	CountByCategory(ctx context.Context) ([]CategorySummary, error)
}

type RsvpQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RsvpView, error)
	ListByCategory(ctx context.Context, category string, after *Cursor, limit int) ([]*RsvpListItem, *Cursor, error)
	Summary(ctx context.Context) ([]CategorySummary, error)
}

type rsvpQueriesImpl struct {
	store RsvpReadStore
}

func NewRsvpQueries(store RsvpReadStore) RsvpQueries {
	return &rsvpQueriesImpl{store: store}
}

func (q *rsvpQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RsvpView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRsvpNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *rsvpQueriesImpl) ListByCategory(ctx context.Context, category string, after *Cursor, limit int) ([]*RsvpListItem, *Cursor, error) {
	if limit <= 0 {
		limit = 50
	}

	var items []*RsvpListItem
	var err error
	if after == nil || after.After == "" {
		items, err = q.store.FindByCategoryFirstPage(ctx, category, int32(limit))
	} else {
		lastCreatedAt, lastID, decodeErr := decodeCursor(after.After)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		items, err = q.store.FindByCategoryKeyset(ctx, category, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == limit {
		last := items[len(items)-1]
		next = &Cursor{After: encodeCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

func (q *rsvpQueriesImpl) Summary(ctx context.Context) ([]CategorySummary, error) {
	return q.store.CountByCategory(ctx)
}

func encodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + "|" + id.String()
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(after string) (time.Time, uuid.UUID, error) {
	raw, err := base64.URLEncoding.DecodeString(after)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor")
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, errs.New("invalid cursor")
	}
	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor timestamp")
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor id")
	}
	return createdAt, id, nil
}
