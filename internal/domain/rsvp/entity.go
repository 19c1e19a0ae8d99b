package rsvp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSlotRequired    = errors.New("dinner category requires a seating slot")
	ErrSlotNotAllowed  = errors.New("category does not include a dinner seating")
	ErrInvalidEventTag = errors.New("event tag must not be empty")
)

// Rsvp is one submission. Created once; never mutated or deleted.
type Rsvp struct {
	id          uuid.UUID
	category    Category
	name        string
	email       Email
	phone       string
	instagram   string
	partySize   PartySize
	guests      []Guest
	slotKey     *string
	note        Note
	eventTag    string
	submittedAt time.Time
}

func NewRsvp(
	category Category,
	name string,
	email Email,
	phone, instagram string,
	partySize PartySize,
	guests []Guest,
	slotKey *string,
	note Note,
	eventTag string,
	submittedAt time.Time,
) (*Rsvp, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	eventTag = strings.TrimSpace(eventTag)
	if eventTag == "" {
		return nil, ErrInvalidEventTag
	}

	// The party is the primary guest plus everyone named alongside them.
	if len(guests) > 0 && partySize.Int() != len(guests)+1 {
		return nil, ErrGuestCountMismatch
	}

	if category.IncludesDinner() {
		if slotKey == nil || strings.TrimSpace(*slotKey) == "" {
			return nil, ErrSlotRequired
		}
	} else if slotKey != nil {
		return nil, ErrSlotNotAllowed
	}

	return &Rsvp{
		id:          uuid.New(),
		category:    category,
		name:        name,
		email:       email,
		phone:       strings.TrimSpace(phone),
		instagram:   normalizeInstagram(instagram),
		partySize:   partySize,
		guests:      guests,
		slotKey:     slotKey,
		note:        note,
		eventTag:    eventTag,
		submittedAt: submittedAt,
	}, nil
}

func ReconstructRsvp(
	id uuid.UUID,
	category Category,
	name string,
	email Email,
	phone, instagram string,
	partySize PartySize,
	guests []Guest,
	slotKey *string,
	note Note,
	eventTag string,
	submittedAt time.Time,
) *Rsvp {
	return &Rsvp{
		id:          id,
		category:    category,
		name:        name,
		email:       email,
		phone:       phone,
		instagram:   instagram,
		partySize:   partySize,
		guests:      guests,
		slotKey:     slotKey,
		note:        note,
		eventTag:    eventTag,
		submittedAt: submittedAt,
	}
}

func (r *Rsvp) RequiresAllocation() bool {
	return r.category.IncludesDinner()
}

func (r *Rsvp) ID() uuid.UUID          { return r.id }
func (r *Rsvp) Category() Category     { return r.category }
func (r *Rsvp) Name() string           { return r.name }
func (r *Rsvp) Email() Email           { return r.email }
func (r *Rsvp) Phone() string          { return r.phone }
func (r *Rsvp) Instagram() string      { return r.instagram }
func (r *Rsvp) PartySize() PartySize   { return r.partySize }
func (r *Rsvp) Guests() []Guest        { return r.guests }
func (r *Rsvp) SlotKey() *string       { return r.slotKey }
func (r *Rsvp) Note() Note             { return r.note }
func (r *Rsvp) EventTag() string       { return r.eventTag }
func (r *Rsvp) SubmittedAt() time.Time { return r.submittedAt }
