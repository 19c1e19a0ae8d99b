package readstore

import (
	"context"
	"encoding/json"
	"time"

	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RsvpReadStore struct {
	db db.DBTX
}

func NewRsvpReadStore(conn db.DBTX) *RsvpReadStore {
	return &RsvpReadStore{db: conn}
}

func (r *RsvpReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RsvpView, error) {
	var (
		view       queries.RsvpView
		guestsJSON []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT r.id, r.category, r.name, r.email, r.phone, r.instagram,
			r.party_size, r.guests, r.slot_key, s.label, r.note, r.event_tag,
			r.submitted_at, r.created_at
		FROM rsvps r
		LEFT JOIN seating_slots s ON s.key = r.slot_key
		WHERE r.id = $1`,
		id,
	).Scan(&view.ID, &view.Category, &view.Name, &view.Email, &view.Phone, &view.Instagram,
		&view.PartySize, &guestsJSON, &view.SlotKey, &view.SlotLabel, &view.Note, &view.EventTag,
		&view.SubmittedAt, &view.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("rsvp not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rsvp by ID", err)
	}

	if err := json.Unmarshal(guestsJSON, &view.Guests); err != nil {
		return nil, infra.WrapRepoErr("failed to unmarshal guests", err)
	}
	return &view, nil
}

func (r *RsvpReadStore) FindByCategoryFirstPage(ctx context.Context, category string, limit int32) ([]*queries.RsvpListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.category, r.name, r.email, r.party_size, s.label,
			r.submitted_at, r.created_at
		FROM rsvps r
		LEFT JOIN seating_slots s ON s.key = r.slot_key
		WHERE r.category = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`,
		category, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rsvps first page", err)
	}
	return scanListItems(rows)
}

func (r *RsvpReadStore) FindByCategoryKeyset(ctx context.Context, category string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.RsvpListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.category, r.name, r.email, r.party_size, s.label,
			r.submitted_at, r.created_at
		FROM rsvps r
		LEFT JOIN seating_slots s ON s.key = r.slot_key
		WHERE r.category = $1 AND (r.created_at, r.id) < ($2, $3)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $4`,
		category, lastCreatedAt, lastID, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rsvps keyset", err)
	}
	return scanListItems(rows)
}

func (r *RsvpReadStore) CountByCategory(ctx context.Context) ([]queries.CategorySummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT category, COUNT(*), COALESCE(SUM(party_size), 0)
		FROM rsvps
		GROUP BY category
		ORDER BY category`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count rsvps by category", err)
	}
	defer rows.Close()

	var summaries []queries.CategorySummary
	for rows.Next() {
		var s queries.CategorySummary
		if err := rows.Scan(&s.Category, &s.Submissions, &s.TotalGuests); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category summary", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category summaries", err)
	}
	return summaries, nil
}

func scanListItems(rows pgx.Rows) ([]*queries.RsvpListItem, error) {
	defer rows.Close()

	var items []*queries.RsvpListItem
	for rows.Next() {
		var item queries.RsvpListItem
		if err := rows.Scan(&item.ID, &item.Category, &item.Name, &item.Email,
			&item.PartySize, &item.SlotLabel, &item.SubmittedAt, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rsvp list item", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rsvp list items", err)
	}
	return items, nil
}
