package repository

import (
	"context"
	"time"

	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(conn db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: conn}
}

// TryInsert claims the key in 'processing' state. It reports false when the
// key already exists; the caller then reads it back to decide replay vs
// conflict.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, submitterEmail, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, submitter_email, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, submitter_email) DO NOTHING`,
		key, submitterEmail, endpoint, requestHash, expiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, submitterEmail string) (*queries.IdempotencyKeyView, error) {
	var rm queries.IdempotencyKeyView
	err := r.db.QueryRow(ctx, `
		SELECT key, submitter_email, endpoint, request_hash, status, result_rsvp_id, expires_at, created_at, updated_at
		FROM idempotency_keys
		WHERE key = $1 AND submitter_email = $2`,
		key, submitterEmail,
	).Scan(&rm.Key, &rm.SubmitterEmail, &rm.Endpoint, &rm.RequestHash, &rm.Status,
		&rm.ResultRsvpID, &rm.ExpiresAt, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	// Check if key has expired (treat as not found)
	if time.Now().After(rm.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return &rm, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, submitterEmail string, resultRsvpID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', result_rsvp_id = $3, updated_at = now()
		WHERE key = $1 AND submitter_email = $2`,
		key, submitterEmail, resultRsvpID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

// ReleaseFailed removes a processing key so the submitter can retry after a
// rejected or failed attempt without waiting for expiry.
func (r *IdempotencyRepository) ReleaseFailed(ctx context.Context, key uuid.UUID, submitterEmail string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM idempotency_keys
		WHERE key = $1 AND submitter_email = $2 AND status = 'processing'`,
		key, submitterEmail,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM idempotency_keys WHERE expires_at < now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
