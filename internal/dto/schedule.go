package dto

import "github.com/daehyun-dev/lineup-api/internal/models"

// SubmitScheduleRequest carries the pasted schedule text.
type SubmitScheduleRequest struct {
	Text string `json:"text" validate:"required"`
}

// SubmitScheduleResponse summarises the parsed schedule session.
type SubmitScheduleResponse struct {
	ScheduleID string   `json:"scheduleId"`
	Venues     int      `json:"venues"`
	Slots      int      `json:"slots"`
	Days       []string `json:"days,omitempty"`
	DJs        []string `json:"djs,omitempty"`
}

// ScheduleResponse returns the stored venue→slots structure.
type ScheduleResponse struct {
	ScheduleID string                `json:"scheduleId"`
	Venues     models.VenueSchedules `json:"venues"`
}

// SlotPayload is the wire form of a slot with "HH:MM" boundaries.
type SlotPayload struct {
	Venue string `json:"venue" validate:"required"`
	Day   string `json:"day,omitempty"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// AbsenceRequest removes every slot a DJ holds on one day.
type AbsenceRequest struct {
	DJ  string `json:"dj" validate:"required"`
	Day string `json:"day" validate:"required"`
}

// RemovedSlot is one vacated slot with its replacement suggestions.
type RemovedSlot struct {
	Venue      string   `json:"venue"`
	Day        string   `json:"day,omitempty"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Candidates []string `json:"candidates"`
}

// AbsenceResponse lists what was vacated and who could cover each slot.
type AbsenceResponse struct {
	DJ      string        `json:"dj"`
	Day     string        `json:"day"`
	Removed []RemovedSlot `json:"removed"`
}

// AssignmentRequest reassigns an existing slot to a new DJ.
type AssignmentRequest struct {
	Slot SlotPayload `json:"slot" validate:"required"`
	DJ   string      `json:"dj" validate:"required"`
}

// AssignmentResponse reports whether the reassignment was applied. A
// rule rejection is a normal response, not an error.
type AssignmentResponse struct {
	Applied bool   `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}
