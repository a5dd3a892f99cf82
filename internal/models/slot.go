package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// minutesPerDay is the normalization offset for slots that run past midnight.
const minutesPerDay = 24 * 60

// earlyMorningCutoff splits a club night from the next day: a set starting
// before 06:00 belongs to the labelled night, not the following morning.
const earlyMorningCutoff = 6 * 60

// ClockMinutes is a time of day expressed as minutes since the start of the
// day. Values above 1439 denote times past midnight within the same club
// night (e.g. a Friday set ending 01:00 Saturday is 1500).
type ClockMinutes int

// ParseClock parses an "HH:MM" string into ClockMinutes.
func ParseClock(raw string) (ClockMinutes, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", raw)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock value %q", raw)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid minute in clock value %q", raw)
	}
	return ClockMinutes(hours*60 + mins), nil
}

// String renders the clock value back to "HH:MM", wrapping past-midnight
// values onto the 24-hour dial.
func (c ClockMinutes) String() string {
	m := int(c) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Slot is a venue-scoped, day-scoped half-open time interval [Start, End).
// Day may be empty when the schedule carries no day labels.
type Slot struct {
	Venue string       `json:"venue"`
	Day   string       `json:"day,omitempty"`
	Start ClockMinutes `json:"start"`
	End   ClockMinutes `json:"end"`
}

// NewSlot builds a Slot from "HH:MM" boundaries. Times are anchored to the
// labelled night: a start before the early-morning cutoff is shifted by a
// full day (a Friday 00:30 set is late Friday night, not Friday morning),
// and an end at or before the start wraps past midnight the same way. This
// keeps a 23:00-01:00 set and a 00:30-02:00 set on the same night
// comparable with plain interval arithmetic.
func NewSlot(venue, day, start, end string) (Slot, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Slot{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Slot{}, err
	}
	if s < earlyMorningCutoff {
		s += minutesPerDay
		e += minutesPerDay
	}
	if e <= s {
		e += minutesPerDay
	}
	return Slot{Venue: venue, Day: day, Start: s, End: e}, nil
}

// Overlaps reports whether two half-open intervals intersect. Venue and day
// are not consulted; callers scope the comparison first.
func (s Slot) Overlaps(other Slot) bool {
	return !(s.End <= other.Start || s.Start >= other.End)
}

// SameInterval reports structural identity of venue and time boundaries.
// The day label is deliberately ignored, matching how a vacated source slot
// is excluded from conflict checks.
func (s Slot) SameInterval(other Slot) bool {
	return s.Venue == other.Venue && s.Start == other.Start && s.End == other.End
}

// Window formats the slot interval for user-facing messages.
func (s Slot) Window() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Commitment binds a Slot to the DJ occupying it.
type Commitment struct {
	Slot
	DJ string `json:"dj"`
}

// ScheduleSlot is one parsed entry of a venue's schedule, the unit the
// parser produces and the store keeps as source of truth.
type ScheduleSlot struct {
	DJ         string `json:"dj"`
	Day        string `json:"day,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end"`
	AutoFilled bool   `json:"autoFilled,omitempty"`
}

// VenueSchedules maps venue name to its slot list. It is the mutable source
// of truth; the Roster is always re-derived from it after an edit.
type VenueSchedules map[string][]ScheduleSlot

// Roster maps DJ name to that DJ's commitments. It is a read-only
// projection of VenueSchedules and must never be patched in place.
type Roster map[string][]Commitment

// BuildRoster derives the per-DJ commitment view from venue schedules.
// Slots that fail to parse are skipped rather than failing the projection.
func BuildRoster(schedules VenueSchedules) Roster {
	roster := make(Roster)
	for venue, slots := range schedules {
		for _, entry := range slots {
			slot, err := NewSlot(venue, entry.Day, entry.Start, entry.End)
			if err != nil {
				continue
			}
			roster[entry.DJ] = append(roster[entry.DJ], Commitment{Slot: slot, DJ: entry.DJ})
		}
	}
	return roster
}

// Names returns the roster's DJ names in sorted order for stable iteration.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SourceKind labels how a replacement candidate becomes available.
type SourceKind string

const (
	// SourcePool marks standby DJs with no scheduled commitments.
	SourcePool SourceKind = "pool"
	// SourceFree marks scheduled DJs who are free during the target slot.
	SourceFree SourceKind = "free"
	// SourceCascade marks DJs freed up by a chain of reassignments.
	SourceCascade SourceKind = "cascade"
)

// CascadeCandidate is one result of the cascaded replacement search.
// For cascade hits, Bumped is the DJ who backfills the candidate's vacated
// slot and Chain lists the DJs already moved earlier in the search branch.
type CascadeCandidate struct {
	DJ     string     `json:"dj"`
	Source SourceKind `json:"source"`
	Bumped string     `json:"bumped,omitempty"`
	Chain  []string   `json:"chain,omitempty"`
}
