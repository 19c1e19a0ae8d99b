package api

import (
	"net/http"
	"strconv"

	resdto "venue-rsvp/internal/handler/dto/response"
	"venue-rsvp/internal/handler/httperr"
	"venue-rsvp/internal/pkg/errs"
	"venue-rsvp/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the read-back view. The source admin page is
// unauthenticated; so is this.
type AdminHandler struct {
	rsvpQueries queries.RsvpQueries
}

func NewAdminHandler(rsvpQueries queries.RsvpQueries) *AdminHandler {
	return &AdminHandler{rsvpQueries: rsvpQueries}
}

// @Summary List RSVPs
// @Description Category-filtered RSVP listing for the admin view
// @Tags admin
// @Produce json
// @Param category query string true "RSVP category"
// @Param after query string false "Keyset cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RsvpListPage
// @Failure 400 {object} httperr.Response
// @Router /api/admin/rsvps [get]
func (h *AdminHandler) ListRsvps(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		httperr.Abort(c, http.StatusBadRequest,
			errs.New("missing category"), "category query parameter is required")
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 200 {
			httperr.Abort(c, http.StatusBadRequest,
				errs.Newf("bad limit %q", limitStr), "limit must be an integer between 1 and 200")
			return
		}
		limit = parsed
	}

	var after *queries.Cursor
	if afterStr := c.Query("after"); afterStr != "" {
		after = &queries.Cursor{After: afterStr}
	}

	items, next, err := h.rsvpQueries.ListByCategory(c.Request.Context(), category, after, limit)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	page := &resdto.RsvpListPage{
		Items: make([]*resdto.RsvpListResponse, len(items)),
	}
	for i, item := range items {
		page.Items[i] = resdto.FromRsvpListItem(item)
	}
	if next != nil {
		page.NextCursor = &next.After
	}

	c.JSON(http.StatusOK, page)
}

// @Summary RSVP summary
// @Description Per-category submission and guest totals
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.SummaryResponse
// @Router /api/admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	summaries, err := h.rsvpQueries.Summary(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.SummaryResponse{Categories: summaries})
}
