package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"venue-rsvp/internal/domain/rsvp"
	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/infra"
	"venue-rsvp/internal/infra/db"
	"venue-rsvp/internal/pkg/clock"
	"venue-rsvp/internal/pkg/errs"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSlotNotFound          = errs.New("seating slot not found")
	ErrCapacityExceeded      = errs.New("seating capacity exceeded")
	ErrInvalidSubmission     = errs.New("invalid submission")
	ErrDuplicateSubmission   = errs.New("duplicate submission with different payload")
	ErrIdempotencyInProgress = errs.New("submission is being processed")
	ErrStorageFailed         = errs.New("storage operation failed")
)

const submitEndpoint = "POST /api/rsvps"

// Guest mirrors one named additional attendee on the submission.
type GuestInput struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type CreateRsvpParams struct {
	Category   string       `json:"category"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Instagram  string       `json:"instagram"`
	PartySize  int          `json:"party_size"`
	Guests     []GuestInput `json:"guests"`
	DinnerSlot string       `json:"dinner_slot"`
	Note       string       `json:"note"`
	EventTag   string       `json:"event_tag"`
}

type CreateRsvpResult struct {
	Rsvp       *queries.RsvpView
	IsReplayed bool
}

type RsvpCommands interface {
	CreateRsvp(ctx context.Context, params CreateRsvpParams, idempotencyKey uuid.UUID) (*CreateRsvpResult, error)
}

type rsvpUseCaseImpl struct {
	registry         *seating.Registry
	slotRepo         SlotRepository
	rsvpRepo         RsvpRepository
	idempotencyRepo  IdempotencyRepository
	notificationRepo NotificationRepository
	rsvpQueries      queries.RsvpQueries
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewRsvpUseCase(
	registry *seating.Registry,
	slotRepo SlotRepository,
	rsvpRepo RsvpRepository,
	idempotencyRepo IdempotencyRepository,
	notificationRepo NotificationRepository,
	rsvpQueries queries.RsvpQueries,
	db *pgxpool.Pool,
	clock clock.Clock,
) RsvpCommands {
	return &rsvpUseCaseImpl{
		registry:         registry,
		slotRepo:         slotRepo,
		rsvpRepo:         rsvpRepo,
		idempotencyRepo:  idempotencyRepo,
		notificationRepo: notificationRepo,
		rsvpQueries:      rsvpQueries,
		db:               db,
		clock:            clock,
	}
}

func (u *rsvpUseCaseImpl) CreateRsvp(
	ctx context.Context,
	params CreateRsvpParams,
	idempotencyKey uuid.UUID,
) (*CreateRsvpResult, error) {
	entity, err := u.buildEntity(params)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrInvalidSubmission)
	}

	requestHash := calculateRequestHash(params)
	submitter := entity.Email().String()
	expiresAt := u.clock.Now().Add(24 * time.Hour)

	claimed, err := u.idempotencyRepo.TryInsert(ctx, idempotencyKey, submitter, submitEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	if !claimed {
		replayed, err := u.handleReplay(ctx, idempotencyKey, submitter, requestHash)
		if err != nil {
			return nil, err
		}
		return &CreateRsvpResult{Rsvp: replayed, IsReplayed: true}, nil
	}

	view, err := u.executeSubmission(ctx, entity, idempotencyKey, submitter)
	if err != nil {
		// Free the key so a corrected resubmission is not locked out.
		if releaseErr := u.idempotencyRepo.ReleaseFailed(ctx, idempotencyKey, submitter); releaseErr != nil {
			slog.Warn("failed to release idempotency key", "error", releaseErr)
		}
		return nil, err
	}
	return &CreateRsvpResult{Rsvp: view, IsReplayed: false}, nil
}

// handleReplay resolves a reused idempotency key: a completed submission
// with the same payload is replayed, anything else is a conflict.
func (u *rsvpUseCaseImpl) handleReplay(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	submitter, requestHash string,
) (*queries.RsvpView, error) {
	existing, err := u.idempotencyRepo.Get(ctx, idempotencyKey, submitter)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	if existing.RequestHash != requestHash {
		return nil, ErrDuplicateSubmission
	}

	switch existing.Status {
	case "completed":
		if existing.ResultRsvpID == nil {
			return nil, errs.New("completed submission missing result rsvp ID")
		}
		return u.rsvpQueries.GetByID(ctx, *existing.ResultRsvpID)

	case "processing":
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (u *rsvpUseCaseImpl) buildEntity(params CreateRsvpParams) (*rsvp.Rsvp, error) {
	category, err := rsvp.NewCategory(params.Category)
	if err != nil {
		return nil, err
	}

	email, err := rsvp.NewEmail(params.Email)
	if err != nil {
		return nil, err
	}

	partySize, err := rsvp.NewPartySize(params.PartySize)
	if err != nil {
		return nil, err
	}

	guests := make([]rsvp.Guest, 0, len(params.Guests))
	for _, g := range params.Guests {
		guest, err := rsvp.NewGuest(g.Name, g.Email, g.Phone, g.Instagram)
		if err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}

	var slotKey *string
	if category.IncludesDinner() {
		if strings.TrimSpace(params.DinnerSlot) == "" {
			return nil, rsvp.ErrSlotRequired
		}
		// The public widget still submits the display label; both the label
		// and the stable key resolve through the registry.
		def, ok := u.registry.Resolve(params.DinnerSlot)
		if !ok {
			return nil, ErrSlotNotFound
		}
		key := def.Key
		slotKey = &key
	}

	return rsvp.NewRsvp(
		category,
		params.Name,
		email,
		params.Phone,
		params.Instagram,
		partySize,
		guests,
		slotKey,
		rsvp.NewNote(params.Note),
		params.EventTag,
		u.clock.Now(),
	)
}

// executeSubmission runs allocation, the rsvp insert, the outbox write and
// the idempotency completion as one transaction. The rsvp row exists iff
// the allocation (when required) committed with it.
func (u *rsvpUseCaseImpl) executeSubmission(
	ctx context.Context,
	entity *rsvp.Rsvp,
	idempotencyKey uuid.UUID,
	submitter string,
) (*queries.RsvpView, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if entity.RequiresAllocation() {
		newBooked, allocErr := u.slotRepo.Allocate(ctx, tx, *entity.SlotKey(), entity.PartySize().Int())
		if allocErr != nil {
			switch {
			case infra.IsKind(allocErr, infra.KindNotFound):
				return nil, errs.Mark(allocErr, ErrSlotNotFound)
			case infra.IsKind(allocErr, infra.KindCapacityExceeded):
				return nil, errs.Mark(allocErr, ErrCapacityExceeded)
			default:
				return nil, errs.Mark(allocErr, ErrStorageFailed)
			}
		}
		slog.Info("seating allocated",
			"slot", *entity.SlotKey(),
			"party_size", entity.PartySize().Int(),
			"booked", newBooked)
	}

	rsvpID, err := u.rsvpRepo.Create(ctx, tx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	if err := u.createConfirmationJob(ctx, tx, entity, rsvpID); err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	if err := u.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, submitter, rsvpID); err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrStorageFailed)
	}

	// Read-after-write: serve the committed view from the read store.
	view, err := u.rsvpQueries.GetByID(ctx, rsvpID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailed)
	}
	return view, nil
}

func (u *rsvpUseCaseImpl) createConfirmationJob(
	ctx context.Context,
	tx db.DBTX,
	entity *rsvp.Rsvp,
	rsvpID uuid.UUID,
) error {
	payload, err := json.Marshal(map[string]any{
		"rsvp_id":  rsvpID,
		"category": entity.Category().String(),
		"name":     entity.Name(),
		"email":    entity.Email().String(),
	})
	if err != nil {
		return err
	}
	return u.notificationRepo.CreateJob(ctx, tx, "email", "rsvp_confirmed", payload, u.clock.Now())
}

func calculateRequestHash(params CreateRsvpParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
