package response

import (
	"venue-rsvp/internal/usecase/queries"
)

// CapacityResponse keeps the label-keyed map shape the public polling
// widget consumes, alongside an ordered slot list for newer clients.
type CapacityResponse struct {
	Status   string                  `json:"status"`
	Capacity map[string]CapacityCell `json:"capacity"`
	Slots    []queries.SlotView      `json:"slots"`
}

type CapacityCell struct {
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"`
}

func FromSlotViews(views []queries.SlotView) *CapacityResponse {
	capacity := make(map[string]CapacityCell, len(views))
	for _, v := range views {
		capacity[v.Label] = CapacityCell{
			Capacity:  v.Capacity,
			Booked:    v.Booked,
			Remaining: v.Remaining,
			Status:    string(v.Status),
		}
	}
	return &CapacityResponse{
		Status:   "success",
		Capacity: capacity,
		Slots:    views,
	}
}
