package repository

import (
	"context"
	"time"

	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
)

// NotificationRepository is the transactional outbox for confirmation
// emails: jobs are written in the same transaction as the rsvp row and
// dispatched by the notifier after commit.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(conn db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: conn}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimPending marks up to limit due jobs as processing and returns them.
// SKIP LOCKED keeps concurrent dispatchers off each other's rows.
func (r *NotificationRepository) ClaimPending(ctx context.Context, limit int) ([]*queries.NotificationJobView, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE notification_jobs
		SET status = 'processing', attempts = attempts + 1, updated_at = now()
		WHERE id IN (
			SELECT id FROM notification_jobs
			WHERE status = 'pending' AND run_at <= now()
			ORDER BY run_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, topic, payload, run_at, attempts, status, last_error, created_at, updated_at`,
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []*queries.NotificationJobView
	for rows.Next() {
		var job queries.NotificationJobView
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt,
			&job.Attempts, &job.Status, &job.LastError, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notification_jobs
		SET status = 'sent', updated_at = now()
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE notification_jobs
		SET status = 'failed', last_error = $2, updated_at = now()
		WHERE id = $1`,
		id, lastError,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
