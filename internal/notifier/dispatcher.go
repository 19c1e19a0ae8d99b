package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"venue-rsvp/internal/pkg/config"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
)

// JobStore is the outbox surface the dispatcher drains.
type JobStore interface {
	ClaimPending(ctx context.Context, limit int) ([]*queries.NotificationJobView, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error
}

type confirmationPayload struct {
	RsvpID   uuid.UUID `json:"rsvp_id"`
	Category string    `json:"category"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
}

// Dispatcher drains committed notification jobs and hands them to the
// sender. Failures are recorded on the job and never reach the submitter;
// the allocation and the rsvp row stay committed regardless.
type Dispatcher struct {
	store  JobStore
	sender Sender
	cfg    config.MailerConfig
	logger *slog.Logger
	done   chan struct{}
}

func NewDispatcher(store JobStore, sender Sender, cfg config.MailerConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		store:  store,
		sender: sender,
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.done)

	interval := d.cfg.PollInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.DrainOnce(ctx)
		}
	}
}

// Wait blocks until Run has returned.
func (d *Dispatcher) Wait() {
	<-d.done
}

// DrainOnce claims one batch of due jobs and processes it.
func (d *Dispatcher) DrainOnce(ctx context.Context) {
	batch := d.cfg.BatchSize
	if batch <= 0 {
		batch = 10
	}

	jobs, err := d.store.ClaimPending(ctx, batch)
	if err != nil {
		d.logger.Error("failed to claim notification jobs", "error", err)
		return
	}

	for _, job := range jobs {
		d.process(ctx, job)
	}
}

func (d *Dispatcher) process(ctx context.Context, job *queries.NotificationJobView) {
	var payload confirmationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		d.logger.Error("invalid notification payload", "job_id", job.ID, "error", err)
		if markErr := d.store.MarkFailed(ctx, job.ID, "invalid payload: "+err.Error()); markErr != nil {
			d.logger.Error("failed to mark notification job failed", "job_id", job.ID, "error", markErr)
		}
		return
	}

	msg := Message{
		To:       payload.Email,
		Subject:  SubjectFor(payload.Category, d.cfg),
		Template: payload.Category,
		FromName: d.cfg.FromName,
		ReplyTo:  d.cfg.ReplyTo,
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		// Best-effort: log, record, move on. Never surfaces to the guest.
		d.logger.Warn("confirmation email failed",
			"job_id", job.ID,
			"rsvp_id", payload.RsvpID,
			"error", err)
		if markErr := d.store.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			d.logger.Error("failed to mark notification job failed", "job_id", job.ID, "error", markErr)
		}
		return
	}

	if err := d.store.MarkSent(ctx, job.ID); err != nil {
		d.logger.Error("failed to mark notification job sent", "job_id", job.ID, "error", err)
	}
}
