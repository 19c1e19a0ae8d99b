package seating

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyLabel       = errors.New("slot label must not be empty")
	ErrDuplicateSlot    = errors.New("duplicate slot label")
	ErrInvalidCapacity  = errors.New("slot capacity must be positive")
	ErrInvalidPartySize = errors.New("party size must be positive")
)

// SlotDef is one bookable dinner seating. Key is the stable storage
// identifier; Label is the display string shown to guests ("6:00 PM").
type SlotDef struct {
	Key      string
	Label    string
	Capacity int
	Position int
}

// Registry is the closed set of valid slots, built once at boot and
// immutable afterwards.
type Registry struct {
	slots []SlotDef
	byKey map[string]SlotDef
}

func NewRegistry(labels []string, capacity int) (*Registry, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	r := &Registry{byKey: make(map[string]SlotDef, len(labels))}
	for i, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, ErrEmptyLabel
		}
		def := SlotDef{
			Key:      KeyForLabel(label),
			Label:    label,
			Capacity: capacity,
			Position: i,
		}
		if _, exists := r.byKey[def.Key]; exists {
			return nil, ErrDuplicateSlot
		}
		r.byKey[def.Key] = def
		r.slots = append(r.slots, def)
	}
	return r, nil
}

// Slots returns the definitions in display order.
func (r *Registry) Slots() []SlotDef {
	out := make([]SlotDef, len(r.slots))
	copy(out, r.slots)
	return out
}

func (r *Registry) Find(key string) (SlotDef, bool) {
	def, ok := r.byKey[key]
	return def, ok
}

// Resolve accepts either a stable key or a display label. The public forms
// still submit the label, so both identities must resolve to the same slot.
func (r *Registry) Resolve(keyOrLabel string) (SlotDef, bool) {
	if def, ok := r.byKey[keyOrLabel]; ok {
		return def, true
	}
	return r.Find(KeyForLabel(keyOrLabel))
}

// KeyForLabel derives a stable 24h key from a clock-style label:
// "6:00 PM" -> "18-00". Labels that do not parse as a clock time fall back
// to a lowercased slug so unknown strings still resolve consistently.
func KeyForLabel(label string) string {
	label = strings.TrimSpace(label)
	if t, err := time.Parse("3:04 PM", label); err == nil {
		return t.Format("15-04")
	}
	slug := strings.ToLower(label)
	slug = strings.ReplaceAll(slug, ":", "-")
	return strings.ReplaceAll(slug, " ", "-")
}

type Status string

const (
	StatusAvailable  Status = "available"
	StatusAlmostFull Status = "almost_full"
	StatusFull       Status = "full"
)

// almostFullRatio is the fill ratio at which a slot starts showing as
// almost full on the public widget.
const almostFullRatio = 0.8

// Snapshot is a point-in-time read of one slot. It is stale the moment it
// is produced; admission decisions never consult it.
type Snapshot struct {
	Key      string
	Label    string
	Capacity int
	Booked   int
	Position int
}

func (s Snapshot) Remaining() int {
	remaining := s.Capacity - s.Booked
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s Snapshot) Status() Status {
	if s.Capacity <= 0 || s.Booked >= s.Capacity {
		return StatusFull
	}
	if float64(s.Booked)/float64(s.Capacity) >= almostFullRatio {
		return StatusAlmostFull
	}
	return StatusAvailable
}

// Fits reports whether a party of the given size can be admitted against
// this snapshot. The authoritative check happens in the store; this exists
// for pre-validation and for tests of the admission policy.
func (s Snapshot) Fits(partySize int) error {
	if partySize <= 0 {
		return ErrInvalidPartySize
	}
	if partySize > s.Remaining() {
		return ErrCapacityExceeded
	}
	return nil
}

var ErrCapacityExceeded = errors.New("party size exceeds remaining capacity")

// CapacityError is a rejection that carries the remaining headroom so the
// caller can present it ("only N spots remain").
type CapacityError struct {
	SlotKey   string
	Label     string
	Remaining int
}

func (e *CapacityError) Error() string {
	return "party size exceeds remaining capacity for slot " + e.SlotKey
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
