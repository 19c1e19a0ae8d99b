package api

import (
	"errors"
	"net/http"

	"venue-rsvp/internal/domain/seating"
	reqdto "venue-rsvp/internal/handler/dto/request"
	resdto "venue-rsvp/internal/handler/dto/response"
	"venue-rsvp/internal/handler/httperr"
	"venue-rsvp/internal/usecase/commands"
	"venue-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RsvpHandler struct {
	rsvpCommands commands.RsvpCommands
	rsvpQueries  queries.RsvpQueries
}

func NewRsvpHandler(rsvpCommands commands.RsvpCommands, rsvpQueries queries.RsvpQueries) *RsvpHandler {
	return &RsvpHandler{
		rsvpCommands: rsvpCommands,
		rsvpQueries:  rsvpQueries,
	}
}

// @Summary Submit RSVP
// @Description Submit an RSVP; dinner categories reserve a seating slot
// @Tags rsvps
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateRsvpRequest true "RSVP submission"
// @Success 200 {object} resdto.RsvpResponse "replayed submission"
// @Success 201 {object} resdto.RsvpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/rsvps [post]
func (h *RsvpHandler) Create(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, err.Error())
		return
	}

	var req reqdto.CreateRsvpRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.rsvpCommands.CreateRsvp(c.Request.Context(), req.ToParams(), idempotencyKey)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRsvpView(result.Rsvp))
}

func (h *RsvpHandler) respondCreateError(c *gin.Context, err error) {
	var capErr *seating.CapacityError
	switch {
	case errors.As(err, &capErr):
		httperr.AbortWithFields(c, http.StatusConflict, err,
			"Not enough spots remain for this seating time", gin.H{
				"remaining": capErr.Remaining,
				"slot":      capErr.Label,
			})
	case errors.Is(err, commands.ErrSlotNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Seating time not found")
	case errors.Is(err, commands.ErrDuplicateSubmission):
		httperr.Abort(c, http.StatusConflict, err, "Duplicate submission with different details")
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		httperr.Abort(c, http.StatusConflict, err, "Submission is currently being processed")
	case errors.Is(err, commands.ErrInvalidSubmission):
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid submission details")
	case errors.Is(err, commands.ErrStorageFailed):
		httperr.Abort(c, http.StatusServiceUnavailable, err, "Temporary problem saving your RSVP, please try again")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

// @Summary Get RSVP
// @Description Get a submitted RSVP by ID
// @Tags rsvps
// @Produce json
// @Param id path string true "RSVP ID"
// @Success 200 {object} resdto.RsvpResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/rsvps/{id} [get]
func (h *RsvpHandler) Get(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid RSVP ID format")
		return
	}

	view, err := h.rsvpQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRsvpNotFound) {
			httperr.Abort(c, http.StatusNotFound, err, "RSVP not found")
			return
		}
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRsvpView(view))
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
