package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daehyun-dev/lineup-api/internal/dto"
	appErrors "github.com/daehyun-dev/lineup-api/pkg/errors"
	"github.com/daehyun-dev/lineup-api/pkg/export"
	"github.com/daehyun-dev/lineup-api/pkg/response"
)

type scheduleService interface {
	Submit(ctx context.Context, req dto.SubmitScheduleRequest) (*dto.SubmitScheduleResponse, error)
	Get(ctx context.Context, id string) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id string) error
	RemoveDJ(ctx context.Context, id string, req dto.AbsenceRequest) (*dto.AbsenceResponse, error)
	Assign(ctx context.Context, id string, req dto.AssignmentRequest) (*dto.AssignmentResponse, error)
	ExportDataset(ctx context.Context, id string) (export.Dataset, string, error)
}

// ScheduleHandler exposes schedule session endpoints.
type ScheduleHandler struct {
	service scheduleService
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc scheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		service: svc,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
	}
}

// Submit godoc
// @Summary Parse and store a pasted schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param payload body dto.SubmitScheduleRequest true "Schedule text"
// @Success 201 {object} response.Envelope
// @Router /schedules [post]
func (h *ScheduleHandler) Submit(c *gin.Context) {
	var req dto.SubmitScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	result, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Get godoc
// @Summary Fetch a stored schedule
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Envelope
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Delete godoc
// @Summary Drop a schedule session
// @Tags Schedules
// @Param id path string true "Schedule ID"
// @Success 204
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// RemoveDJ godoc
// @Summary Vacate a DJ's slots for one day and suggest replacements
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body dto.AbsenceRequest true "Absence payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/{id}/absences [post]
func (h *ScheduleHandler) RemoveDJ(c *gin.Context) {
	var req dto.AbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid absence payload"))
		return
	}
	result, err := h.service.RemoveDJ(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Assign godoc
// @Summary Reassign an existing slot to another DJ
// @Tags Schedules
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param payload body dto.AssignmentRequest true "Assignment payload"
// @Success 200 {object} response.Envelope
// @Router /schedules/{id}/assignments [post]
func (h *ScheduleHandler) Assign(c *gin.Context) {
	var req dto.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	result, err := h.service.Assign(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Export godoc
// @Summary Export a schedule as CSV or PDF
// @Tags Schedules
// @Produce octet-stream
// @Param id path string true "Schedule ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /schedules/{id}/export [get]
func (h *ScheduleHandler) Export(c *gin.Context) {
	dataset, title, err := h.service.ExportDataset(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		payload, err := h.csv.Render(dataset)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "lineup.csv"))
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.pdf.Render(dataset, title)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "lineup.pdf"))
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}
