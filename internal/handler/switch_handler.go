package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daehyun-dev/lineup-api/internal/dto"
	appErrors "github.com/daehyun-dev/lineup-api/pkg/errors"
	"github.com/daehyun-dev/lineup-api/pkg/response"
)

type switchService interface {
	CheckSwitch(ctx context.Context, id string, req dto.SwitchCheckRequest) (*dto.SwitchCheckResponse, error)
	Replacements(ctx context.Context, id string, req dto.ReplacementsRequest) (*dto.ReplacementsResponse, error)
	Cascade(ctx context.Context, id string, req dto.CascadeRequest) (*dto.CascadeResponse, error)
}

// SwitchHandler exposes the conflict checker and replacement searches.
type SwitchHandler struct {
	service switchService
}

// NewSwitchHandler constructs the handler.
func NewSwitchHandler(svc switchService) *SwitchHandler {
	return &SwitchHandler{service: svc}
}

// CheckSwitch godoc
// @Summary Check whether a DJ can move to a target slot
// @Description A rejected move is a 200 response with allowed=false and a user-facing reason, not an error.
// @Tags Switches
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body dto.SwitchCheckRequest true "Switch payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/{id}/switch-check [post]
func (h *SwitchHandler) CheckSwitch(c *gin.Context) {
	var req dto.SwitchCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid switch payload"))
		return
	}
	result, err := h.service.CheckSwitch(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Replacements godoc
// @Summary List DJs who can directly take a vacant slot
// @Tags Switches
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body dto.ReplacementsRequest true "Replacement query"
// @Success 200 {object} response.Envelope
// @Router /schedules/{id}/replacements [post]
func (h *SwitchHandler) Replacements(c *gin.Context) {
	var req dto.ReplacementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid replacements payload"))
		return
	}
	result, err := h.service.Replacements(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Cascade godoc
// @Summary Search multi-hop replacement chains for a vacant slot
// @Description An empty suggestion list means no replacement exists at any depth; that is a normal outcome.
// @Tags Switches
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body dto.CascadeRequest true "Cascade query"
// @Success 200 {object} response.Envelope
// @Router /schedules/{id}/replacements/cascade [post]
func (h *SwitchHandler) Cascade(c *gin.Context) {
	var req dto.CascadeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid cascade payload"))
		return
	}
	result, err := h.service.Cascade(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
