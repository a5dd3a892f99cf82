package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daehyun-dev/lineup-api/internal/dto"
	appErrors "github.com/daehyun-dev/lineup-api/pkg/errors"
	"github.com/daehyun-dev/lineup-api/pkg/response"
)

type geographyService interface {
	AreaOf(venue string) string
	TravelMinutes(from, to string) int
}

// GeographyHandler exposes the venue/area and travel-time lookups.
type GeographyHandler struct {
	service geographyService
}

// NewGeographyHandler constructs the handler.
func NewGeographyHandler(svc geographyService) *GeographyHandler {
	return &GeographyHandler{service: svc}
}

// Area godoc
// @Summary Resolve the area a venue belongs to
// @Description Unknown venues resolve to the "Unknown" area rather than an error.
// @Tags Geography
// @Produce json
// @Param venue path string true "Venue name"
// @Success 200 {object} response.Envelope
// @Router /geography/venues/{venue}/area [get]
func (h *GeographyHandler) Area(c *gin.Context) {
	venue := c.Param("venue")
	response.JSON(c, http.StatusOK, dto.VenueAreaResponse{
		Venue: venue,
		Area:  h.service.AreaOf(venue),
	})
}

// TravelTime godoc
// @Summary Travel buffer in minutes between two venues
// @Tags Geography
// @Produce json
// @Param from query string true "Origin venue"
// @Param to query string true "Destination venue"
// @Success 200 {object} response.Envelope
// @Router /geography/travel-time [get]
func (h *GeographyHandler) TravelTime(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "from and to venues are required"))
		return
	}
	response.JSON(c, http.StatusOK, dto.TravelTimeResponse{
		From:     from,
		To:       to,
		FromArea: h.service.AreaOf(from),
		ToArea:   h.service.AreaOf(to),
		Minutes:  h.service.TravelMinutes(from, to),
	})
}
