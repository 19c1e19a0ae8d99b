package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RsvpView struct {
	ID          uuid.UUID   `json:"id"`
	Category    string      `json:"category"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Instagram   string      `json:"instagram"`
	PartySize   int         `json:"party_size"`
	Guests      []GuestView `json:"guests"`
	SlotKey     *string     `json:"slot_key,omitempty"`
	SlotLabel   *string     `json:"slot_label,omitempty"`
	Note        string      `json:"note"`
	EventTag    string      `json:"event_tag"`
	SubmittedAt time.Time   `json:"submitted_at"`
	CreatedAt   time.Time   `json:"created_at"`
}

type GuestView struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type RsvpListItem struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PartySize   int       `json:"party_size"`
	SlotLabel   *string   `json:"slot_label,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategorySummary backs the admin dashboard counters.
type CategorySummary struct {
	Category    string `json:"category"`
	Submissions int    `json:"submissions"`
	TotalGuests int    `json:"total_guests"`
}

type IdempotencyKeyView struct {
	Key            uuid.UUID  `json:"key"`
	SubmitterEmail string     `json:"submitter_email"`
	Endpoint       string     `json:"endpoint"`
	RequestHash    string     `json:"request_hash"`
	Status         string     `json:"status"`
	ResultRsvpID   *uuid.UUID `json:"result_rsvp_id,omitempty"`
	ExpiresAt      time.Time  `json:"expires_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Cursor struct {
	After string
}
