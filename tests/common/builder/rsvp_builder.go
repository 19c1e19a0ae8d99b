//go:build unit || e2e

package builder

import (
	"time"

	domrsvp "venue-rsvp/internal/domain/rsvp"
	reqdto "venue-rsvp/internal/handler/dto/request"
	"venue-rsvp/internal/usecase/commands"
	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
)

type RsvpBuilder struct {
	Category   string
	Name       string
	Email      string
	Phone      string
	Instagram  string
	PartySize  int
	Guests     []domrsvp.Guest
	DinnerSlot string
	SlotKey    string
	SlotLabel  string
	Note       string
	EventTag   string
	CreatedAt  time.Time
}

func NewRsvpBuilder() *RsvpBuilder {
	now := time.Now()
	return &RsvpBuilder{
		Category:   "vip_dinner",
		Name:       "Jordan Avery",
		Email:      "jordan@example.com",
		Phone:      "905-555-0101",
		Instagram:  "jordanavery",
		PartySize:  2,
		Guests:     []domrsvp.Guest{{Name: "Casey Morgan"}},
		DinnerSlot: "6:00 PM",
		SlotKey:    "18-00",
		SlotLabel:  "6:00 PM",
		Note:       "Window table if possible",
		EventTag:   "ladies_night",
		CreatedAt:  now,
	}
}

func (b *RsvpBuilder) With(mutate func(*RsvpBuilder)) *RsvpBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *RsvpBuilder) BuildDomain() (*domrsvp.Rsvp, error) {
	category, err := domrsvp.NewCategory(b.Category)
	if err != nil {
		return nil, err
	}
	email, err := domrsvp.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	partySize, err := domrsvp.NewPartySize(b.PartySize)
	if err != nil {
		return nil, err
	}

	var slotKey *string
	if b.SlotKey != "" {
		key := b.SlotKey
		slotKey = &key
	}

	return domrsvp.NewRsvp(
		category,
		b.Name,
		email,
		b.Phone,
		b.Instagram,
		partySize,
		b.Guests,
		slotKey,
		domrsvp.NewNote(b.Note),
		b.EventTag,
		b.CreatedAt,
	)
}

func (b *RsvpBuilder) BuildCreateRequestDTO() reqdto.CreateRsvpRequest {
	guests := make([]reqdto.GuestPayload, len(b.Guests))
	for i, g := range b.Guests {
		guests[i] = reqdto.GuestPayload{
			Name:      g.Name,
			Email:     g.Email,
			Phone:     g.Phone,
			Instagram: g.Instagram,
		}
	}
	return reqdto.CreateRsvpRequest{
		Category:   b.Category,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Instagram:  b.Instagram,
		PartySize:  b.PartySize,
		Guests:     guests,
		DinnerSlot: b.DinnerSlot,
		Note:       b.Note,
		EventTag:   b.EventTag,
	}
}

func (b *RsvpBuilder) BuildParams() commands.CreateRsvpParams {
	guests := make([]commands.GuestInput, len(b.Guests))
	for i, g := range b.Guests {
		guests[i] = commands.GuestInput{
			Name:      g.Name,
			Email:     g.Email,
			Phone:     g.Phone,
			Instagram: g.Instagram,
		}
	}
	return commands.CreateRsvpParams{
		Category:   b.Category,
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		Instagram:  b.Instagram,
		PartySize:  b.PartySize,
		Guests:     guests,
		DinnerSlot: b.DinnerSlot,
		Note:       b.Note,
		EventTag:   b.EventTag,
	}
}

func (b *RsvpBuilder) BuildViewQuery() *queries.RsvpView {
	guests := make([]queries.GuestView, len(b.Guests))
	for i, g := range b.Guests {
		guests[i] = queries.GuestView{
			Name:      g.Name,
			Email:     g.Email,
			Phone:     g.Phone,
			Instagram: g.Instagram,
		}
	}

	var slotKey, slotLabel *string
	if b.SlotKey != "" {
		key := b.SlotKey
		label := b.SlotLabel
		slotKey = &key
		slotLabel = &label
	}

	return &queries.RsvpView{
		ID:          uuid.New(),
		Category:    b.Category,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Instagram:   b.Instagram,
		PartySize:   b.PartySize,
		Guests:      guests,
		SlotKey:     slotKey,
		SlotLabel:   slotLabel,
		Note:        b.Note,
		EventTag:    b.EventTag,
		SubmittedAt: b.CreatedAt,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *RsvpBuilder) BuildListItem() *queries.RsvpListItem {
	var slotLabel *string
	if b.SlotKey != "" {
		label := b.SlotLabel
		slotLabel = &label
	}
	return &queries.RsvpListItem{
		ID:          uuid.New(),
		Category:    b.Category,
		Name:        b.Name,
		Email:       b.Email,
		PartySize:   b.PartySize,
		SlotLabel:   slotLabel,
		SubmittedAt: b.CreatedAt,
		CreatedAt:   b.CreatedAt,
	}
}

// Fluent builder methods
func (b *RsvpBuilder) WithCategory(category string) *RsvpBuilder {
	b.Category = category
	return b
}

func (b *RsvpBuilder) WithName(name string) *RsvpBuilder {
	b.Name = name
	return b
}

func (b *RsvpBuilder) WithEmail(email string) *RsvpBuilder {
	b.Email = email
	return b
}

func (b *RsvpBuilder) WithPartySize(size int) *RsvpBuilder {
	b.PartySize = size
	return b
}

func (b *RsvpBuilder) WithGuests(guests ...domrsvp.Guest) *RsvpBuilder {
	b.Guests = guests
	return b
}

func (b *RsvpBuilder) WithDinnerSlot(slot string) *RsvpBuilder {
	b.DinnerSlot = slot
	return b
}

func (b *RsvpBuilder) WithSlot(key, label string) *RsvpBuilder {
	b.SlotKey = key
	b.SlotLabel = label
	return b
}

func (b *RsvpBuilder) WithNote(note string) *RsvpBuilder {
	b.Note = note
	return b
}

func (b *RsvpBuilder) WithEventTag(tag string) *RsvpBuilder {
	b.EventTag = tag
	return b
}

func (b *RsvpBuilder) WithCreatedAt(createdAt time.Time) *RsvpBuilder {
	b.CreatedAt = createdAt
	return b
}

// AsLateNight drops the dinner seating entirely; late night submissions
// never touch the capacity allocator.
func (b *RsvpBuilder) AsLateNight() *RsvpBuilder {
	b.Category = "late_night"
	b.DinnerSlot = ""
	b.SlotKey = ""
	b.SlotLabel = ""
	return b
}

func (b *RsvpBuilder) AsSpecialGuest() *RsvpBuilder {
	b.Category = "special_guest"
	return b
}

func (b *RsvpBuilder) AsSolo() *RsvpBuilder {
	b.PartySize = 1
	b.Guests = nil
	return b
}
