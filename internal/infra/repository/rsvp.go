package repository

import (
	"context"
	"encoding/json"

	domainrsvp "venue-rsvp/internal/domain/rsvp"
	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type RsvpRepository struct {
	db db.DBTX
}

func NewRsvpRepository(conn db.DBTX) *RsvpRepository {
	return &RsvpRepository{db: conn}
}

func (r *RsvpRepository) Create(ctx context.Context, tx db.DBTX, entity *domainrsvp.Rsvp) (uuid.UUID, error) {
	guests := entity.Guests()
	if guests == nil {
		guests = []domainrsvp.Guest{}
	}
	guestsJSON, err := json.Marshal(guests)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to marshal guests", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO rsvps (id, category, name, email, phone, instagram,
			party_size, guests, slot_key, note, event_tag, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entity.ID(),
		entity.Category().String(),
		entity.Name(),
		entity.Email().String(),
		entity.Phone(),
		entity.Instagram(),
		entity.PartySize().Int(),
		guestsJSON,
		entity.SlotKey(),
		entity.Note().String(),
		entity.EventTag(),
		entity.SubmittedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if isUniqueViolation(err, &pgErr) {
			return uuid.Nil, infra.WrapRepoErr("rsvp already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create rsvp", err)
	}
	return entity.ID(), nil
}
