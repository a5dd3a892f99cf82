package dto

import "github.com/daehyun-dev/lineup-api/internal/models"

// SwitchCheckRequest asks whether a DJ can move to a target slot,
// optionally vacating a source slot they currently hold.
type SwitchCheckRequest struct {
	DJ     string       `json:"dj" validate:"required"`
	Source *SlotPayload `json:"source,omitempty"`
	Target SlotPayload  `json:"target" validate:"required"`
}

// ReplacementCandidate is a candidate DJ annotated with where they play
// right before the target slot. CurrentVenue is empty for DJs with no
// earlier set that day.
type ReplacementCandidate struct {
	DJ            string `json:"dj"`
	CurrentVenue  string `json:"currentVenue,omitempty"`
	CurrentArea   string `json:"currentArea,omitempty"`
	TargetArea    string `json:"targetArea"`
	TravelMinutes int    `json:"travelMinutes,omitempty"`
}

// SwitchCheckResponse carries the verdict plus other DJs who could take the
// same slot. Reason is user-facing and verbatim from the checker.
type SwitchCheckResponse struct {
	Allowed      bool                   `json:"allowed"`
	Reason       string                 `json:"reason,omitempty"`
	Alternatives []ReplacementCandidate `json:"alternatives,omitempty"`
}

// ReplacementsRequest searches direct candidates for a vacant slot.
type ReplacementsRequest struct {
	Target    SlotPayload `json:"target" validate:"required"`
	ExcludeDJ string      `json:"excludeDj,omitempty"`
}

// ReplacementsResponse lists candidates in search order.
type ReplacementsResponse struct {
	Candidates []ReplacementCandidate `json:"candidates"`
}

// CascadeRequest searches multi-hop replacement chains for a vacant slot.
type CascadeRequest struct {
	Target  SlotPayload `json:"target" validate:"required"`
	Exclude []string    `json:"exclude,omitempty"`
}

// CascadeResponse lists direct hits followed by cascaded chains. Empty
// means no replacement exists at any depth, which is a normal outcome.
type CascadeResponse struct {
	Suggestions []models.CascadeCandidate `json:"suggestions"`
}
