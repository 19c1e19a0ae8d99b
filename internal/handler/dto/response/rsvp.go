package response

import (
	"time"

	"venue-rsvp/internal/usecase/queries"

	"github.com/google/uuid"
)

type RsvpResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Instagram   string          `json:"instagram,omitempty"`
	PartySize   int             `json:"partySize"`
	Guests      []GuestResponse `json:"guests"`
	SlotKey     *string         `json:"slotKey,omitempty"`
	SlotLabel   *string         `json:"dinnerTime,omitempty"`
	Note        string          `json:"note,omitempty"`
	EventTag    string          `json:"eventType"`
	SubmittedAt time.Time       `json:"submittedAt"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type GuestResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type RsvpListResponse struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PartySize   int       `json:"partySize"`
	SlotLabel   *string   `json:"dinnerTime,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RsvpListPage struct {
	Items      []*RsvpListResponse `json:"items"`
	NextCursor *string             `json:"nextCursor,omitempty"`
}

type SummaryResponse struct {
	Categories []queries.CategorySummary `json:"categories"`
}

func FromRsvpView(rm *queries.RsvpView) *RsvpResponse {
	guests := make([]GuestResponse, len(rm.Guests))
	for i, g := range rm.Guests {
		guests[i] = GuestResponse{
			Name:      g.Name,
			Email:     g.Email,
			Phone:     g.Phone,
			Instagram: g.Instagram,
		}
	}
	return &RsvpResponse{
		ID:          rm.ID,
		Category:    rm.Category,
		Name:        rm.Name,
		Email:       rm.Email,
		Phone:       rm.Phone,
		Instagram:   rm.Instagram,
		PartySize:   rm.PartySize,
		Guests:      guests,
		SlotKey:     rm.SlotKey,
		SlotLabel:   rm.SlotLabel,
		Note:        rm.Note,
		EventTag:    rm.EventTag,
		SubmittedAt: rm.SubmittedAt,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromRsvpListItem(rm *queries.RsvpListItem) *RsvpListResponse {
	return &RsvpListResponse{
		ID:          rm.ID,
		Category:    rm.Category,
		Name:        rm.Name,
		Email:       rm.Email,
		PartySize:   rm.PartySize,
		SlotLabel:   rm.SlotLabel,
		SubmittedAt: rm.SubmittedAt,
		CreatedAt:   rm.CreatedAt,
	}
}
