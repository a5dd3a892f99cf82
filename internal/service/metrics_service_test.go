package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

func TestMetricsSnapshot(t *testing.T) {
	metrics := NewMetricsService()

	metrics.ObserveHTTPRequest("POST", "/schedules", 201, 10*time.Millisecond)
	metrics.ObserveHTTPRequest("GET", "/schedules/abc", 200, 20*time.Millisecond)
	metrics.ObserveConflictCheck(true, "none")
	metrics.ObserveConflictCheck(false, "overlap")
	metrics.ObserveReplacementSearch("direct", time.Millisecond)
	metrics.ObserveCascadeDepth(2)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(2), snapshot.RequestsTotal)
	assert.InDelta(t, 15.0, snapshot.AverageRequestDurationMs, 0.01)
	assert.Equal(t, uint64(2), snapshot.ConflictChecksTotal)
	assert.Equal(t, uint64(1), snapshot.ConflictRejections)
	assert.Equal(t, uint64(1), snapshot.ReplacementSearches)
	assert.False(t, snapshot.GeneratedAt.IsZero())
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *MetricsService

	metrics.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	metrics.ObserveConflictCheck(false, "overlap")
	metrics.ObserveReplacementSearch("cascade", time.Millisecond)
	metrics.ObserveCascadeDepth(1)

	assert.Equal(t, models.EngineSnapshot{}, metrics.Snapshot())
	assert.NotNil(t, metrics.Handler())
}
