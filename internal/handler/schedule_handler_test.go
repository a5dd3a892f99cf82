package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/daehyun-dev/lineup-api/internal/dto"
	appErrors "github.com/daehyun-dev/lineup-api/pkg/errors"
	"github.com/daehyun-dev/lineup-api/pkg/export"
)

type scheduleServiceMock struct {
	submitResp *dto.SubmitScheduleResponse
	getResp    *dto.ScheduleResponse
	absResp    *dto.AbsenceResponse
	assignResp *dto.AssignmentResponse
	dataset    export.Dataset
	title      string
	err        error
}

func (m *scheduleServiceMock) Submit(ctx context.Context, req dto.SubmitScheduleRequest) (*dto.SubmitScheduleResponse, error) {
	return m.submitResp, m.err
}

func (m *scheduleServiceMock) Get(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	return m.getResp, m.err
}

func (m *scheduleServiceMock) Delete(ctx context.Context, id string) error {
	return m.err
}

func (m *scheduleServiceMock) RemoveDJ(ctx context.Context, id string, req dto.AbsenceRequest) (*dto.AbsenceResponse, error) {
	return m.absResp, m.err
}

func (m *scheduleServiceMock) Assign(ctx context.Context, id string, req dto.AssignmentRequest) (*dto.AssignmentResponse, error) {
	return m.assignResp, m.err
}

func (m *scheduleServiceMock) ExportDataset(ctx context.Context, id string) (export.Dataset, string, error) {
	return m.dataset, m.title, m.err
}

func TestScheduleHandlerSubmit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{
		submitResp: &dto.SubmitScheduleResponse{ScheduleID: "abc", Venues: 2, Slots: 3},
	})

	w, c := postJSON(t, "/schedules", dto.SubmitScheduleRequest{Text: "Day and Night (금):\n22:00-23:00 illi"})

	handler.Submit(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"scheduleId":"abc"`)
}

func TestScheduleHandlerSubmitBadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/schedules", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Submit(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{err: appErrors.ErrNotFound})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/schedules/missing", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/schedules/abc", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Delete(c)
	// c.Status alone does not reach the recorder outside a running engine.
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestScheduleHandlerRemoveDJ(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{
		absResp: &dto.AbsenceResponse{
			DJ:  "Illi",
			Day: "Friday",
			Removed: []dto.RemovedSlot{
				{Venue: "Day and Night", Start: "22:00", End: "23:30", Candidates: []string{"Xiid"}},
			},
		},
	})

	w, c := postJSON(t, "/schedules/abc/absences", dto.AbsenceRequest{DJ: "illi", Day: "금"})

	handler.RemoveDJ(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Xiid")
}

func TestScheduleHandlerAssignRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{
		assignResp: &dto.AssignmentResponse{Applied: false, Reason: "Overlap with Caleb's set"},
	})

	w, c := postJSON(t, "/schedules/abc/assignments", dto.AssignmentRequest{
		DJ:   "caleb",
		Slot: dto.SlotPayload{Venue: "Day and Night", Start: "23:30", End: "01:00"},
	})

	handler.Assign(c)

	// A rule rejection is still a 200; the verdict travels in the body.
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"applied":false`)
}

func TestScheduleHandlerExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{
		dataset: export.Dataset{
			Headers: []string{"Venue", "DJ"},
			Rows:    []map[string]string{{"Venue": "Day and Night", "DJ": "Illi"}},
		},
		title: "DJ Lineup abc",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/schedules/abc/export?format=csv", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), "Day and Night,Illi")
}

func TestScheduleHandlerExportBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewScheduleHandler(&scheduleServiceMock{title: "DJ Lineup"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/schedules/abc/export?format=xml", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Export(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
