//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/handler/api"
	resdto "venue-rsvp/internal/handler/dto/response"
	"venue-rsvp/internal/usecase/queries"
	"venue-rsvp/tests/common/httptest"
	queriesmock "venue-rsvp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CapacityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCapacityQueries
	handler     *api.CapacityHandler
}

func (s *CapacityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCapacityQueries(s.mockCtrl)
	s.handler = api.NewCapacityHandler(s.mockQueries)

	s.router.GET("/api/capacity", s.handler.Board)
}

func (s *CapacityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCapacityHandlerSuite(t *testing.T) {
	suite.Run(t, new(CapacityHandlerTestSuite))
}

func (s *CapacityHandlerTestSuite) TestBoard() {
	url := "/api/capacity"

	views := []queries.SlotView{
		{Key: "18-00", Label: "6:00 PM", Capacity: 20, Booked: 4, Remaining: 16, Status: seating.StatusAvailable},
		{Key: "18-15", Label: "6:15 PM", Capacity: 20, Booked: 16, Remaining: 4, Status: seating.StatusAlmostFull},
		{Key: "18-30", Label: "6:30 PM", Capacity: 20, Booked: 20, Remaining: 0, Status: seating.StatusFull},
	}

	s.Run("success: returns the capacity board keyed by label", func() {
		s.mockQueries.EXPECT().Board(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("success", response.Status)
		s.Len(response.Slots, 3)
		s.Len(response.Capacity, 3)

		cell, ok := response.Capacity["6:15 PM"]
		s.True(ok)
		s.Equal(20, cell.Capacity)
		s.Equal(16, cell.Booked)
		s.Equal(4, cell.Remaining)
		s.Equal("almost_full", cell.Status)

		s.Equal("full", string(response.Slots[2].Status))
	})

	s.Run("success: empty board", func() {
		s.mockQueries.EXPECT().Board(gomock.Any()).
			Return([]queries.SlotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.CapacityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("success", response.Status)
		s.Empty(response.Slots)
	})

	s.Run("error: 503 Service Unavailable when the store is unreachable", func() {
		s.mockQueries.EXPECT().Board(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "please try again")
	})
}
