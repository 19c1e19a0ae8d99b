//go:build e2e

package rsvp_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"venue-rsvp/internal/handler/dto/response"
	"venue-rsvp/tests/common/builder"
	"venue-rsvp/tests/common/dbtest"
	"venue-rsvp/tests/common/httptest"
	"venue-rsvp/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	rsvpsURL    = "/api/rsvps"
	capacityURL = "/api/capacity"
	adminURL    = "/api/admin/rsvps"
	summaryURL  = "/api/admin/summary"
)

type RsvpSuite struct {
	e2e.SharedSuite
}

func (s *RsvpSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRsvpSuite(t *testing.T) {
	suite.Run(t, new(RsvpSuite))
}

// =============================================================================
// TestSubmitRsvp - submission API tests
// =============================================================================

func (s *RsvpSuite) TestSubmitRsvp() {
	s.Run("Normal case: vip dinner submission allocates seating", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code, "Should create rsvp successfully")

		var created response.RsvpResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		require.Equal(t, 2, dbtest.SlotBooked(t, s.DB, "18-00"), "party of two must occupy two seats")

		// Fetch detail and assert
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, rsvpsURL+"/"+created.ID.String(), nil, "")
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.RsvpResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &actual)
		require.NoError(t, err)

		slotKey := "18-00"
		slotLabel := "6:00 PM"
		expected := response.RsvpResponse{
			Category:  "vip_dinner",
			Name:      "Jordan Avery",
			Email:     "jordan@example.com",
			Phone:     "905-555-0101",
			Instagram: "jordanavery",
			PartySize: 2,
			Guests:    []response.GuestResponse{{Name: "Casey Morgan"}},
			SlotKey:   &slotKey,
			SlotLabel: &slotLabel,
			Note:      "Window table if possible",
			EventTag:  "ladies_night",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.RsvpResponse{}, "ID", "SubmittedAt", "CreatedAt"),
		}
		require.Empty(t, cmp.Diff(expected, actual, opts...))
	})

	s.Run("Normal case: late night submission skips the allocator", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().AsLateNight().WithPartySize(4).WithGuests().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)

		for _, key := range []string{"18-00", "18-15", "18-30"} {
			require.Zero(t, dbtest.SlotBooked(t, s.DB, key), "late night must not touch slot %s", key)
		}
	})

	s.Run("Normal case: slots resolve by stable key as well as label", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().WithDinnerSlot("18-15").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)

		require.Equal(t, 2, dbtest.SlotBooked(t, s.DB, "18-15"))
	})

	s.Run("Error case: unknown seating time is rejected without persisting", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().WithDinnerSlot("9:00 PM").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusNotFound, w.Code)

		require.Zero(t, dbtest.CountRsvps(t, s.DB, ""))
	})

	s.Run("Error case: dinner submission without a seating time", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().WithDinnerSlot("").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: unknown category", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().WithCategory("walk_in").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: party size disagrees with named guests", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().WithPartySize(5).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusBadRequest, w.Code)

		require.Zero(t, dbtest.CountRsvps(t, s.DB, ""))
	})
}

// =============================================================================
// TestIdempotency - duplicate submission handling
// =============================================================================

func (s *RsvpSuite) TestIdempotency() {
	s.Run("Normal case: same key and payload replays the stored rsvp", func() {
		t := s.T()

		key := uuid.NewString()
		reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, key)
		require.Equal(t, http.StatusCreated, first.Code)
		var firstRes response.RsvpResponse
		require.NoError(t, httptest.DecodeResponseBody(t, first.Body, &firstRes))

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, key)
		require.Equal(t, http.StatusOK, second.Code, "replay must not create a second rsvp")
		var secondRes response.RsvpResponse
		require.NoError(t, httptest.DecodeResponseBody(t, second.Body, &secondRes))

		require.Equal(t, firstRes.ID, secondRes.ID)
		require.Equal(t, 1, dbtest.CountRsvps(t, s.DB, ""))
		require.Equal(t, 2, dbtest.SlotBooked(t, s.DB, "18-00"), "replay must not double-book seats")
	})

	s.Run("Error case: same key with a different payload conflicts", func() {
		t := s.T()

		key := uuid.NewString()
		reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, key)
		require.Equal(t, http.StatusCreated, first.Code)

		mutated := builder.NewRsvpBuilder().WithNote("Changed my mind").BuildCreateRequestDTO()
		second := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, mutated, key)
		require.Equal(t, http.StatusConflict, second.Code)

		require.Equal(t, 1, dbtest.CountRsvps(t, s.DB, ""))
	})

	s.Run("Normal case: a failed submission frees its key for retry", func() {
		t := s.T()

		dbtest.SetSlotBooked(t, s.DB, "18-00", 19)

		key := uuid.NewString()
		reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()

		rejected := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, key)
		require.Equal(t, http.StatusConflict, rejected.Code, "party of two cannot fit into one seat")

		// Seats opened up; the same key must be able to try again.
		dbtest.SetSlotBooked(t, s.DB, "18-00", 0)

		retried := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, key)
		require.Equal(t, http.StatusCreated, retried.Code)
	})
}

// =============================================================================
// TestCapacityLimits - allocator rejection behavior
// =============================================================================

func (s *RsvpSuite) TestCapacityLimits() {
	s.Run("Error case: rejection reports the remaining spots", func() {
		t := s.T()

		dbtest.SetSlotBooked(t, s.DB, "18-00", 15)

		reqBody := builder.NewRsvpBuilder().AsSolo().WithPartySize(6).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusConflict, w.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, float64(5), body["remaining"])
		require.Equal(t, "6:00 PM", body["slot"])

		require.Equal(t, 15, dbtest.SlotBooked(t, s.DB, "18-00"), "rejected submission must not consume seats")
		require.Zero(t, dbtest.CountRsvps(t, s.DB, ""), "rejected submission must not be stored")
	})

	s.Run("Normal case: exact fill closes the slot", func() {
		t := s.T()

		dbtest.SetSlotBooked(t, s.DB, "18-00", 18)

		fill := builder.NewRsvpBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, fill, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code, "a party matching the remainder exactly must be admitted")
		require.Equal(t, 20, dbtest.SlotBooked(t, s.DB, "18-00"))

		cw := httptest.PerformRequest(t, s.Router, http.MethodGet, capacityURL, nil, "")
		require.Equal(t, http.StatusOK, cw.Code)
		var board response.CapacityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &board))
		require.Equal(t, "full", board.Capacity["6:00 PM"].Status)
		require.Zero(t, board.Capacity["6:00 PM"].Remaining)

		// One more guest cannot squeeze in.
		overflow := builder.NewRsvpBuilder().AsSolo().WithEmail("overflow@example.com").BuildCreateRequestDTO()
		ow := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, overflow, uuid.NewString())
		require.Equal(t, http.StatusConflict, ow.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, ow.Body, &body))
		require.Equal(t, float64(0), body["remaining"])
	})

	s.Run("Normal case: a full slot does not block its neighbors", func() {
		t := s.T()

		dbtest.SetSlotBooked(t, s.DB, "18-00", 20)

		reqBody := builder.NewRsvpBuilder().WithDinnerSlot("6:15 PM").BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, 2, dbtest.SlotBooked(t, s.DB, "18-15"))
	})
}

// =============================================================================
// TestConcurrentAllocation - races for the last seats
// =============================================================================

func (s *RsvpSuite) TestConcurrentAllocation() {
	s.Run("Normal case: two rivals for the last seats admit exactly one", func() {
		t := s.T()

		dbtest.SetSlotBooked(t, s.DB, "18-00", 5)

		codes := make([]int, 2)
		var wg sync.WaitGroup
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				reqBody := builder.NewRsvpBuilder().
					AsSolo().
					WithPartySize(15).
					WithEmail(fmt.Sprintf("rival%d@example.com", i)).
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, rejected := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				rejected++
			}
		}
		require.Equal(t, 1, created, "exactly one rival fits into the 15 remaining seats")
		require.Equal(t, 1, rejected)
		require.Equal(t, 20, dbtest.SlotBooked(t, s.DB, "18-00"))
	})

	s.Run("Normal case: parallel singles never overbook", func() {
		t := s.T()

		const attempts = 100
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range codes {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				reqBody := builder.NewRsvpBuilder().
					AsSolo().
					WithDinnerSlot("6:30 PM").
					WithEmail(fmt.Sprintf("guest%d@example.com", i)).
					BuildCreateRequestDTO()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, rejected := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				rejected++
			}
		}
		require.Equal(t, 20, created, "admissions must stop exactly at capacity")
		require.Equal(t, attempts-20, rejected)
		require.Equal(t, 20, dbtest.SlotBooked(t, s.DB, "18-30"))
		require.Equal(t, 20, dbtest.CountRsvps(t, s.DB, "vip_dinner"))
	})
}

// =============================================================================
// TestConfirmationNotification - outbox to dispatcher flow
// =============================================================================

func (s *RsvpSuite) TestConfirmationNotification() {
	s.Run("Normal case: a committed rsvp produces a sent confirmation job", func() {
		t := s.T()

		reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusCreated, w.Code)

		require.True(t, dbtest.WaitForNotificationStatus(t, s.DB, "sent", 3*time.Second),
			"dispatcher should pick up and send the confirmation job")
	})

	s.Run("Error case: a rejected rsvp leaves no job behind", func() {
		t := s.T()

		dbtest.SetSlotBooked(t, s.DB, "18-00", 20)

		reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
		require.Equal(t, http.StatusConflict, w.Code)

		var count int
		require.NoError(t, s.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM notification_jobs").Scan(&count))
		require.Zero(t, count)
	})
}

// =============================================================================
// TestAdminRead - listing and summary over stored submissions
// =============================================================================

func (s *RsvpSuite) TestAdminRead() {
	s.Run("Normal case: category listing pages through with a cursor", func() {
		t := s.T()

		for i := range 3 {
			reqBody := builder.NewRsvpBuilder().
				AsLateNight().
				AsSolo().
				WithEmail(fmt.Sprintf("guest%d@example.com", i)).
				WithName(fmt.Sprintf("Guest %d", i)).
				BuildCreateRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, reqBody, uuid.NewString())
			require.Equal(t, http.StatusCreated, w.Code)
		}

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"?category=late_night&limit=2", nil, "")
		require.Equal(t, http.StatusOK, lw.Code)
		var firstPage response.RsvpListPage
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &firstPage))
		require.Len(t, firstPage.Items, 2)
		require.NotNil(t, firstPage.NextCursor)

		nw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"?category=late_night&limit=2&after="+*firstPage.NextCursor, nil, "")
		require.Equal(t, http.StatusOK, nw.Code)
		var secondPage response.RsvpListPage
		require.NoError(t, httptest.DecodeResponseBody(t, nw.Body, &secondPage))
		require.Len(t, secondPage.Items, 1)

		// No row appears on both pages.
		seen := map[uuid.UUID]bool{}
		for _, item := range append(firstPage.Items, secondPage.Items...) {
			require.False(t, seen[item.ID], "row %s duplicated across pages", item.ID)
			seen[item.ID] = true
		}
	})

	s.Run("Normal case: summary aggregates submissions and guests", func() {
		t := s.T()

		dinner := builder.NewRsvpBuilder().BuildCreateRequestDTO()
		require.Equal(t, http.StatusCreated,
			httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, dinner, uuid.NewString()).Code)

		late := builder.NewRsvpBuilder().AsLateNight().AsSolo().WithEmail("solo@example.com").BuildCreateRequestDTO()
		require.Equal(t, http.StatusCreated,
			httptest.PerformRequest(t, s.Router, http.MethodPost, rsvpsURL, late, uuid.NewString()).Code)

		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, summaryURL, nil, "")
		require.Equal(t, http.StatusOK, sw.Code)
		var summary response.SummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &summary))

		totals := map[string][2]int{}
		for _, c := range summary.Categories {
			totals[c.Category] = [2]int{c.Submissions, c.TotalGuests}
		}
		require.Equal(t, [2]int{1, 2}, totals["vip_dinner"])
		require.Equal(t, [2]int{1, 1}, totals["late_night"])
	})
}
