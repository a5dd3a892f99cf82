package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type geographyServiceMock struct{}

func (geographyServiceMock) AreaOf(venue string) string {
	if venue == "Day and Night" {
		return "Itaewon"
	}
	return "Unknown"
}

func (geographyServiceMock) TravelMinutes(from, to string) int { return 30 }

func TestGeographyHandlerArea(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewGeographyHandler(geographyServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/geography/venues/Day%20and%20Night/area", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "venue", Value: "Day and Night"}}

	handler.Area(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Itaewon")
}

func TestGeographyHandlerTravelTime(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewGeographyHandler(geographyServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/geography/travel-time?from=Day+and+Night&to=Code+Lounge", nil)
	c.Request = req

	handler.TravelTime(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"minutes":30`)
}

func TestGeographyHandlerTravelTimeMissingParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewGeographyHandler(geographyServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/geography/travel-time?from=Day+and+Night", nil)
	c.Request = req

	handler.TravelTime(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
