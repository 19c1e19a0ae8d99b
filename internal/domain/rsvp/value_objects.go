package rsvp

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidName      = errors.New("invalid guest name")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPartySize = errors.New("invalid party size")
	ErrGuestCountMismatch = errors.New("party size does not match named guests")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(value)
	if value == "" || !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(value)}, nil
}

func (e Email) String() string {
	return e.value
}

// PartySize covers the primary guest plus any named additional guests.
type PartySize struct {
	value int
}

func NewPartySize(value int) (PartySize, error) {
	if value < 1 {
		return PartySize{}, ErrInvalidPartySize
	}
	return PartySize{value: value}, nil
}

func (p PartySize) Int() int {
	return p.value
}

// Guest is one named additional attendee; contact fields are optional.
type Guest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

func NewGuest(name, email, phone, instagram string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, ErrInvalidName
	}
	return Guest{
		Name:      name,
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Instagram: normalizeInstagram(instagram),
	}, nil
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}

// normalizeInstagram strips a leading @ so handles are stored bare.
func normalizeInstagram(handle string) string {
	return strings.TrimPrefix(strings.TrimSpace(handle), "@")
}
