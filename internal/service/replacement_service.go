package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/daehyun-dev/lineup-api/internal/dto"
	"github.com/daehyun-dev/lineup-api/internal/models"
)

// ReplacementService finds DJs who can legally take a vacant slot, either
// directly or through a chain of reassignments.
type ReplacementService struct {
	conflicts *ConflictService
	geo       *GeographyService
	metrics   *MetricsService
	logger    *zap.Logger

	pool []string
}

// NewReplacementService wires the search over the conflict checker. pool
// lists standby DJs considered available regardless of roster contents.
func NewReplacementService(conflicts *ConflictService, geo *GeographyService, pool []string, metrics *MetricsService, logger *zap.Logger) *ReplacementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReplacementService{
		conflicts: conflicts,
		geo:       geo,
		metrics:   metrics,
		logger:    logger,
		pool:      pool,
	}
}

// FindCandidates returns every DJ who can legally take target: pool members
// first in configured order, then the remaining roster members in sorted
// name order. The result is freshly allocated and stable across calls on an
// unmodified roster.
func (s *ReplacementService) FindCandidates(target models.Slot, roster models.Roster) []string {
	start := time.Now()
	candidates := make([]string, 0, len(s.pool)+len(roster))
	seen := make(map[string]struct{}, len(s.pool)+len(roster))

	for _, dj := range s.pool {
		seen[dj] = struct{}{}
		if ok, _ := s.conflicts.CanMove(dj, nil, target, roster); ok {
			candidates = append(candidates, dj)
		}
	}
	for _, dj := range roster.Names() {
		if _, dup := seen[dj]; dup {
			continue
		}
		if ok, _ := s.conflicts.CanMove(dj, nil, target, roster); ok {
			candidates = append(candidates, dj)
		}
	}

	s.metrics.ObserveReplacementSearch("direct", time.Since(start))
	return candidates
}

// Annotate decorates candidate names with where each DJ plays immediately
// before the target slot, so dispatchers can judge the hand-off at a glance.
func (s *ReplacementService) Annotate(candidates []string, target models.Slot, roster models.Roster) []dto.ReplacementCandidate {
	annotated := make([]dto.ReplacementCandidate, 0, len(candidates))
	targetArea := s.geo.AreaOf(target.Venue)
	for _, dj := range candidates {
		info := dto.ReplacementCandidate{DJ: dj, TargetArea: targetArea}
		if prev, ok := lastSetBefore(roster[dj], target); ok {
			info.CurrentVenue = prev.Venue
			info.CurrentArea = s.geo.AreaOf(prev.Venue)
			info.TravelMinutes = s.geo.TravelMinutes(prev.Venue, target.Venue)
		}
		annotated = append(annotated, info)
	}
	return annotated
}

// lastSetBefore picks the commitment ending latest at or before the target
// start on the target's day.
func lastSetBefore(commitments []models.Commitment, target models.Slot) (models.Commitment, bool) {
	var best models.Commitment
	found := false
	for _, e := range commitments {
		if target.Day != "" && e.Day != target.Day {
			continue
		}
		if e.End > target.Start {
			continue
		}
		if !found || e.End > best.End {
			best = e
			found = true
		}
	}
	return best, found
}

// FindCascaded performs the depth-first multi-hop search. Direct pool and
// free hits are yielded first; then, for every DJ d who could take target
// by vacating one of their own sets e, the search recurses on e to find who
// backfills it. excluded and chain grow strictly on each descent and are
// bounded by the roster, so the search always terminates; a DJ already in
// chain is never moved twice. An empty result is a normal outcome.
func (s *ReplacementService) FindCascaded(target models.Slot, roster models.Roster, excluded map[string]struct{}, chain []string) []models.CascadeCandidate {
	if excluded == nil {
		excluded = make(map[string]struct{})
	}
	s.metrics.ObserveCascadeDepth(len(chain))
	if len(chain) == 0 {
		defer func(start time.Time) {
			s.metrics.ObserveReplacementSearch("cascade", time.Since(start))
		}(time.Now())
	}

	var results []models.CascadeCandidate

	inPool := make(map[string]struct{}, len(s.pool))
	for _, dj := range s.pool {
		inPool[dj] = struct{}{}
		if _, skip := excluded[dj]; skip {
			continue
		}
		if ok, _ := s.conflicts.CanMove(dj, nil, target, roster); ok {
			results = append(results, models.CascadeCandidate{DJ: dj, Source: models.SourcePool})
		}
	}

	for _, dj := range roster.Names() {
		if _, skip := excluded[dj]; skip {
			continue
		}
		if _, pooled := inPool[dj]; pooled {
			continue
		}
		if ok, _ := s.conflicts.CanMove(dj, nil, target, roster); ok {
			results = append(results, models.CascadeCandidate{DJ: dj, Source: models.SourceFree})
		}
	}

	for _, d := range roster.Names() {
		if _, skip := excluded[d]; skip {
			continue
		}
		if contains(chain, d) {
			continue
		}
		for _, e := range roster[d] {
			if target.Day != "" && e.Day != target.Day {
				continue
			}
			vacated := e.Slot
			if ok, _ := s.conflicts.CanMove(d, &vacated, target, roster); !ok {
				continue
			}

			subExcluded := make(map[string]struct{}, len(excluded)+1)
			for name := range excluded {
				subExcluded[name] = struct{}{}
			}
			subExcluded[d] = struct{}{}
			subChain := append(append([]string(nil), chain...), d)

			for _, sub := range s.FindCascaded(vacated, roster, subExcluded, subChain) {
				results = append(results, models.CascadeCandidate{
					DJ:     d,
					Source: models.SourceCascade,
					Bumped: sub.DJ,
					Chain:  subChain,
				})
			}
		}
	}

	return results
}

func contains(chain []string, name string) bool {
	for _, entry := range chain {
		if entry == name {
			return true
		}
	}
	return false
}
