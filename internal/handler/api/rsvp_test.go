//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"venue-rsvp/internal/domain/seating"
	"venue-rsvp/internal/handler/api"
	resdto "venue-rsvp/internal/handler/dto/response"
	"venue-rsvp/internal/usecase/commands"
	"venue-rsvp/internal/usecase/queries"
	"venue-rsvp/tests/common/builder"
	"venue-rsvp/tests/common/httptest"
	"venue-rsvp/tests/common/testutil"
	commandsmock "venue-rsvp/tests/mock/commands"
	queriesmock "venue-rsvp/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RsvpHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRsvpCommands
	mockQueries  *queriesmock.MockRsvpQueries
	handler      *api.RsvpHandler
}

func (s *RsvpHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRsvpCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRsvpQueries(s.mockCtrl)
	s.handler = api.NewRsvpHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/rsvps", s.handler.Create)
	s.router.GET("/api/rsvps/:id", s.handler.Get)
}

func (s *RsvpHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRsvpHandlerSuite(t *testing.T) {
	suite.Run(t, new(RsvpHandlerTestSuite))
}

type testCaseRsvp struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *RsvpHandlerTestSuite) TestCreate() {
	url := "/api/rsvps"
	idempotencyKey := uuid.NewString()

	reqBody := builder.NewRsvpBuilder().BuildCreateRequestDTO()
	returnView := builder.NewRsvpBuilder().BuildViewQuery()

	s.Run("success: returns 201 Created for a fresh submission", func() {
		s.mockCommands.EXPECT().CreateRsvp(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateRsvpResult{Rsvp: returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyKey)

		var response resdto.RsvpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Category, response.Category)
		s.Equal(returnView.PartySize, response.PartySize)
	})

	s.Run("success: returns 200 OK for a replayed submission", func() {
		s.mockCommands.EXPECT().CreateRsvp(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateRsvpResult{Rsvp: returnView, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyKey)

		var response resdto.RsvpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request without Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key header is required")
	})

	s.Run("error: 400 Bad Request for malformed idempotency key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseRsvp{
			{name: "missing field: category (required)", mutate: testutil.Field("category", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: party_size (required)", mutate: testutil.Field("party_size", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: event_tag (required)", mutate: testutil.Field("event_tag", nil), expectCode: http.StatusBadRequest},
			{name: "party_size below minimum", mutate: testutil.Field("party_size", 0), expectCode: http.StatusBadRequest},
			{name: "guest without name", mutate: testutil.Field("guests", []map[string]any{{"email": "x@example.com"}}), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, idempotencyKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 Conflict with remaining spots when capacity is exceeded", func() {
		capErr := &seating.CapacityError{SlotKey: "18-00", Label: "6:00 PM", Remaining: 3}
		s.mockCommands.EXPECT().CreateRsvp(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, capErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyKey)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Not enough spots remain")

		var body map[string]any
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(float64(3), body["remaining"])
		s.Equal("6:00 PM", body["slot"])
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "seating slot not found",
				commandsError:  commands.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Seating time not found",
			},
			{
				name:           "duplicate submission",
				commandsError:  commands.ErrDuplicateSubmission,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Duplicate submission",
			},
			{
				name:           "submission still processing",
				commandsError:  commands.ErrIdempotencyInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "currently being processed",
			},
			{
				name:           "invalid submission details",
				commandsError:  commands.ErrInvalidSubmission,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid submission details",
			},
			{
				name:           "storage unavailable",
				commandsError:  commands.ErrStorageFailed,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "please try again",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRsvp(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyKey)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *RsvpHandlerTestSuite) TestGet() {
	rsvpID := uuid.New()
	url := "/api/rsvps/" + rsvpID.String()

	returnView := builder.NewRsvpBuilder().BuildViewQuery()
	returnView.ID = rsvpID

	s.Run("success: returns 200 OK with RsvpResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rsvpID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.RsvpResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rsvpID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.Email, response.Email)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rsvps/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid RSVP ID")
	})

	s.Run("error: 404 Not Found for missing rsvp", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rsvpID).
			Return(nil, queries.ErrRsvpNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "RSVP not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rsvpID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
