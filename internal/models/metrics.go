package models

import "time"

// EngineSnapshot is a lightweight aggregate of runtime metrics exposed as
// JSON next to the Prometheus endpoint.
type EngineSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	ConflictChecksTotal      uint64    `json:"conflict_checks_total"`
	ConflictRejections       uint64    `json:"conflict_rejections"`
	ReplacementSearches      uint64    `json:"replacement_searches"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
