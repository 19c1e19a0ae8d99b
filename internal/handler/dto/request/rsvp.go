package request

import (
	"strings"

	"venue-rsvp/internal/usecase/commands"
)

type GuestPayload struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type CreateRsvpRequest struct {
	Category   string         `json:"category" binding:"required"`
	Name       string         `json:"name" binding:"required"`
	Email      string         `json:"email" binding:"required"`
	Phone      string         `json:"phone,omitempty"`
	Instagram  string         `json:"instagram,omitempty"`
	PartySize  int            `json:"party_size" binding:"required,min=1"`
	Guests     []GuestPayload `json:"guests,omitempty" binding:"omitempty,dive"`
	DinnerSlot string         `json:"dinner_slot,omitempty"`
	Note       string         `json:"note,omitempty"`
	EventTag   string         `json:"event_tag" binding:"required"`
}

func (r CreateRsvpRequest) ToParams() commands.CreateRsvpParams {
	guests := make([]commands.GuestInput, len(r.Guests))
	for i, g := range r.Guests {
		guests[i] = commands.GuestInput{
			Name:      g.Name,
			Email:     g.Email,
			Phone:     g.Phone,
			Instagram: g.Instagram,
		}
	}
	return commands.CreateRsvpParams{
		Category:   strings.TrimSpace(r.Category),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Instagram:  r.Instagram,
		PartySize:  r.PartySize,
		Guests:     guests,
		DinnerSlot: strings.TrimSpace(r.DinnerSlot),
		Note:       r.Note,
		EventTag:   r.EventTag,
	}
}
