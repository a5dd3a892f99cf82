package service

import (
	"fmt"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

// Rule labels for conflict-check outcomes, used for metrics.
const (
	ruleNone       = "none"
	ruleOverlap    = "overlap"
	ruleBackToBack = "back_to_back"
	ruleTravel     = "travel_buffer"
)

// ConflictService decides whether a DJ can legally occupy a target slot
// given their existing commitments. It is pure: no state beyond the
// geography tables, no mutation of the roster.
type ConflictService struct {
	geo     *GeographyService
	metrics *MetricsService
}

// NewConflictService wires the checker.
func NewConflictService(geo *GeographyService, metrics *MetricsService) *ConflictService {
	return &ConflictService{geo: geo, metrics: metrics}
}

// CanMove reports whether dj may occupy target, optionally vacating source.
// The returned reason is user-facing and empty when the move is allowed.
//
// Rules, in order: overlap (half-open interval intersection), back-to-back
// (under a minute of slack in either order — adjacent slots pass the
// overlap test but are physically infeasible), and travel buffer (the gap
// between venues must cover the direction-correct travel minutes).
func (s *ConflictService) CanMove(dj string, source *models.Slot, target models.Slot, roster models.Roster) (bool, string) {
	allowed, reason, rule := s.check(dj, source, target, roster)
	s.metrics.ObserveConflictCheck(allowed, rule)
	return allowed, reason
}

func (s *ConflictService) check(dj string, source *models.Slot, target models.Slot, roster models.Roster) (bool, string, string) {
	remaining := make([]models.Commitment, 0, len(roster[dj]))
	for _, e := range roster[dj] {
		// Commitments on another day never conflict.
		if target.Day != "" && e.Day != target.Day {
			continue
		}
		// The slot being vacated models a move, not an addition.
		if source != nil && e.SameInterval(*source) {
			continue
		}
		remaining = append(remaining, e)
	}

	for _, e := range remaining {
		if target.Overlaps(e.Slot) {
			reason := fmt.Sprintf("Overlap with %s's set at %s from %s to %s.", dj, e.Venue, e.Start, e.End)
			return false, reason, ruleOverlap
		}
	}

	for _, e := range remaining {
		// With minute granularity, a sub-minute gap means the slots touch.
		if target.Start == e.End {
			reason := fmt.Sprintf("Would be double-booked back-to-back with set at %s ending at %s", e.Venue, e.End)
			return false, reason, ruleBackToBack
		}
		if e.Start == target.End {
			reason := fmt.Sprintf("Would be double-booked back-to-back with set at %s starting at %s", e.Venue, e.Start)
			return false, reason, ruleBackToBack
		}

		if e.End <= target.Start {
			buffer := s.geo.TravelMinutes(e.Venue, target.Venue)
			if int(target.Start-e.End) < buffer {
				reason := fmt.Sprintf("Not enough travel time from %s (%s) to %s (%s) (needs %d min).",
					e.Venue, s.geo.AreaOf(e.Venue), target.Venue, s.geo.AreaOf(target.Venue), buffer)
				return false, reason, ruleTravel
			}
		}
		if e.Start >= target.End {
			buffer := s.geo.TravelMinutes(target.Venue, e.Venue)
			if int(e.Start-target.End) < buffer {
				reason := fmt.Sprintf("Not enough travel time from %s (%s) to %s (%s) (needs %d min).",
					target.Venue, s.geo.AreaOf(target.Venue), e.Venue, s.geo.AreaOf(e.Venue), buffer)
				return false, reason, ruleTravel
			}
		}
	}

	return true, "", ruleNone
}
