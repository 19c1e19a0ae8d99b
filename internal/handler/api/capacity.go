package api

import (
	"net/http"

	resdto "venue-rsvp/internal/handler/dto/response"
	"venue-rsvp/internal/handler/httperr"
	"venue-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CapacityHandler struct {
	capacityQueries queries.CapacityQueries
}

func NewCapacityHandler(capacityQueries queries.CapacityQueries) *CapacityHandler {
	return &CapacityHandler{capacityQueries: capacityQueries}
}

// @Summary Seating capacity
// @Description Current booked counts per dinner seating time
// @Tags capacity
// @Produce json
// @Success 200 {object} resdto.CapacityResponse
// @Failure 503 {object} httperr.Response
// @Router /api/capacity [get]
func (h *CapacityHandler) Board(c *gin.Context) {
	views, err := h.capacityQueries.Board(c.Request.Context())
	if err != nil {
		httperr.AbortWithFields(c, http.StatusServiceUnavailable, err,
			"Temporary problem reading capacity, please try again", gin.H{
				"status": "error",
			})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}
