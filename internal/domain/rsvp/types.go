package rsvp

import "errors"

var ErrInvalidCategory = errors.New("invalid rsvp category")

// Category determines which store partition and email template apply.
type Category string

const (
	CategoryLateNight    Category = "late_night"
	CategoryVIPDinner    Category = "vip_dinner"
	CategorySpecialGuest Category = "special_guest"
)

func NewCategory(value string) (Category, error) {
	switch Category(value) {
	case CategoryLateNight, CategoryVIPDinner, CategorySpecialGuest:
		return Category(value), nil
	default:
		return "", ErrInvalidCategory
	}
}

// IncludesDinner reports whether submissions in this category reserve a
// dinner seating and therefore go through the capacity allocator.
func (c Category) IncludesDinner() bool {
	return c == CategoryVIPDinner || c == CategorySpecialGuest
}

func (c Category) String() string {
	return string(c)
}
