package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daehyun-dev/lineup-api/internal/dto"
	"github.com/daehyun-dev/lineup-api/internal/models"
	"github.com/daehyun-dev/lineup-api/internal/repository"
	appErrors "github.com/daehyun-dev/lineup-api/pkg/errors"
	"github.com/daehyun-dev/lineup-api/pkg/export"
)

// ScheduleService orchestrates schedule sessions: parsing submissions,
// validating switches, backfilling absences and reassigning slots. Every
// mutation goes through the store's venue→slots source of truth; the
// per-DJ roster is re-derived afterwards, never patched.
type ScheduleService struct {
	store        *repository.ScheduleStore
	parser       *ParserService
	conflicts    *ConflictService
	replacements *ReplacementService
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewScheduleService wires the schedule orchestration.
func NewScheduleService(
	store *repository.ScheduleStore,
	parser *ParserService,
	conflicts *ConflictService,
	replacements *ReplacementService,
	validate *validator.Validate,
	logger *zap.Logger,
) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		store:        store,
		parser:       parser,
		conflicts:    conflicts,
		replacements: replacements,
		validator:    validate,
		logger:       logger,
	}
}

// Submit parses schedule text into a new session.
func (s *ScheduleService) Submit(ctx context.Context, req dto.SubmitScheduleRequest) (*dto.SubmitScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}

	venues := s.parser.Parse(req.Text)
	if len(venues) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no venues or slots could be parsed from the schedule text")
	}

	session := repository.ScheduleSession{ID: uuid.NewString(), Venues: venues}
	s.store.Save(session)

	roster := models.BuildRoster(venues)
	slots := 0
	daySet := make(map[string]struct{})
	for _, venueSlots := range venues {
		slots += len(venueSlots)
		for _, slot := range venueSlots {
			if slot.Day != "" {
				daySet[slot.Day] = struct{}{}
			}
		}
	}
	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)

	s.logger.Info("schedule submitted",
		zap.String("schedule_id", session.ID),
		zap.Int("venues", len(venues)),
		zap.Int("slots", slots))

	return &dto.SubmitScheduleResponse{
		ScheduleID: session.ID,
		Venues:     len(venues),
		Slots:      slots,
		Days:       days,
		DJs:        roster.Names(),
	}, nil
}

// Get returns the stored schedule for a session.
func (s *ScheduleService) Get(ctx context.Context, id string) (*dto.ScheduleResponse, error) {
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleResponse{ScheduleID: session.ID, Venues: session.Venues}, nil
}

// Delete drops a schedule session.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if _, err := s.session(id); err != nil {
		return err
	}
	s.store.Delete(id)
	return nil
}

// CheckSwitch decides whether a DJ may move to the target slot and, either
// way, lists other DJs who could take it instead.
func (s *ScheduleService) CheckSwitch(ctx context.Context, id string, req dto.SwitchCheckRequest) (*dto.SwitchCheckResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid switch payload")
	}
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	target, err := slotFromPayload(req.Target)
	if err != nil {
		return nil, err
	}
	var source *models.Slot
	if req.Source != nil {
		parsed, err := slotFromPayload(*req.Source)
		if err != nil {
			return nil, err
		}
		source = &parsed
	}

	dj := titleCase(req.DJ)
	roster := models.BuildRoster(session.Venues)
	allowed, reason := s.conflicts.CanMove(dj, source, target, roster)

	// Suggest the other DJs regardless of the verdict; the requester never
	// appears in their own suggestion list.
	candidates := exclude(s.replacements.FindCandidates(target, roster), dj)
	alternatives := s.replacements.Annotate(candidates, target, roster)

	return &dto.SwitchCheckResponse{Allowed: allowed, Reason: reason, Alternatives: alternatives}, nil
}

// Replacements lists DJs who can directly take a vacant slot.
func (s *ScheduleService) Replacements(ctx context.Context, id string, req dto.ReplacementsRequest) (*dto.ReplacementsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid replacements payload")
	}
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	target, err := slotFromPayload(req.Target)
	if err != nil {
		return nil, err
	}

	roster := models.BuildRoster(session.Venues)
	candidates := s.replacements.FindCandidates(target, roster)
	if req.ExcludeDJ != "" {
		candidates = exclude(candidates, titleCase(req.ExcludeDJ))
	}
	return &dto.ReplacementsResponse{Candidates: s.replacements.Annotate(candidates, target, roster)}, nil
}

// Cascade runs the multi-hop replacement search for a vacant slot.
func (s *ScheduleService) Cascade(ctx context.Context, id string, req dto.CascadeRequest) (*dto.CascadeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid cascade payload")
	}
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	target, err := slotFromPayload(req.Target)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(req.Exclude))
	for _, dj := range req.Exclude {
		excluded[titleCase(dj)] = struct{}{}
	}

	roster := models.BuildRoster(session.Venues)
	suggestions := s.replacements.FindCascaded(target, roster, excluded, nil)
	if suggestions == nil {
		suggestions = []models.CascadeCandidate{}
	}
	return &dto.CascadeResponse{Suggestions: suggestions}, nil
}

// RemoveDJ vacates every slot the DJ holds on the given day and suggests
// replacements for each vacated slot against the rebuilt roster.
func (s *ScheduleService) RemoveDJ(ctx context.Context, id string, req dto.AbsenceRequest) (*dto.AbsenceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid absence payload")
	}

	dj := titleCase(req.DJ)
	day := normalizeDay(req.Day)
	var removed []dto.RemovedSlot

	ok := s.store.Update(id, func(venues models.VenueSchedules) models.VenueSchedules {
		for venue, slots := range venues {
			kept := slots[:0]
			for _, slot := range slots {
				if slot.DJ == dj && slot.Day == day {
					removed = append(removed, dto.RemovedSlot{
						Venue: venue,
						Day:   slot.Day,
						Start: slot.Start,
						End:   slot.End,
					})
					continue
				}
				kept = append(kept, slot)
			}
			venues[venue] = kept
		}
		return venues
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found or expired")
	}

	sort.Slice(removed, func(i, j int) bool {
		if removed[i].Venue == removed[j].Venue {
			return removed[i].Start < removed[j].Start
		}
		return removed[i].Venue < removed[j].Venue
	})

	session, err := s.session(id)
	if err != nil {
		return nil, err
	}
	roster := models.BuildRoster(session.Venues)

	for i, vacated := range removed {
		slot, err := models.NewSlot(vacated.Venue, vacated.Day, vacated.Start, vacated.End)
		if err != nil {
			continue
		}
		removed[i].Candidates = exclude(s.replacements.FindCandidates(slot, roster), dj)
	}

	s.logger.Info("dj removed for day",
		zap.String("schedule_id", id),
		zap.String("dj", dj),
		zap.String("day", day),
		zap.Int("slots_vacated", len(removed)))

	if removed == nil {
		removed = []dto.RemovedSlot{}
	}
	return &dto.AbsenceResponse{DJ: dj, Day: day, Removed: removed}, nil
}

// Assign puts a new DJ on an existing slot after a conflict check. A rule
// rejection comes back as Applied=false with the checker's reason.
func (s *ScheduleService) Assign(ctx context.Context, id string, req dto.AssignmentRequest) (*dto.AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	session, err := s.session(id)
	if err != nil {
		return nil, err
	}

	target, err := slotFromPayload(req.Slot)
	if err != nil {
		return nil, err
	}

	dj := titleCase(req.DJ)
	roster := models.BuildRoster(session.Venues)
	allowed, reason := s.conflicts.CanMove(dj, nil, target, roster)
	if !allowed {
		return &dto.AssignmentResponse{Applied: false, Reason: reason}, nil
	}

	found := false
	ok := s.store.Update(id, func(venues models.VenueSchedules) models.VenueSchedules {
		slots := venues[req.Slot.Venue]
		for i, slot := range slots {
			// Match on parsed intervals; stored times may lack a leading
			// zero ("9:00") the request spells out.
			stored, err := models.NewSlot(req.Slot.Venue, slot.Day, slot.Start, slot.End)
			if err != nil || slot.Day != target.Day || !stored.SameInterval(target) {
				continue
			}
			slots[i].DJ = dj
			slots[i].AutoFilled = true
			found = true
			break
		}
		venues[req.Slot.Venue] = slots
		return venues
	})
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found or expired")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no slot %s-%s at %s", req.Slot.Start, req.Slot.End, req.Slot.Venue))
	}

	s.logger.Info("slot reassigned",
		zap.String("schedule_id", id),
		zap.String("dj", dj),
		zap.String("venue", req.Slot.Venue))

	return &dto.AssignmentResponse{Applied: true}, nil
}

// ExportDataset flattens a schedule into the tabular shape the CSV and PDF
// exporters consume. Substituted slots carry a note so the hand-off summary
// survives the export.
func (s *ScheduleService) ExportDataset(ctx context.Context, id string) (export.Dataset, string, error) {
	session, err := s.session(id)
	if err != nil {
		return export.Dataset{}, "", err
	}

	dataset := export.Dataset{Headers: []string{"Venue", "Day", "Start", "End", "DJ", "Note"}}
	venueNames := make([]string, 0, len(session.Venues))
	for venue := range session.Venues {
		venueNames = append(venueNames, venue)
	}
	sort.Strings(venueNames)

	for _, venue := range venueNames {
		slots := append([]models.ScheduleSlot(nil), session.Venues[venue]...)
		sort.Slice(slots, func(i, j int) bool {
			if slots[i].Day == slots[j].Day {
				return slots[i].Start < slots[j].Start
			}
			return slots[i].Day < slots[j].Day
		})
		for _, slot := range slots {
			note := ""
			if slot.AutoFilled {
				note = "substitute"
			}
			dataset.Rows = append(dataset.Rows, map[string]string{
				"Venue": venue,
				"Day":   slot.Day,
				"Start": slot.Start,
				"End":   slot.End,
				"DJ":    slot.DJ,
				"Note":  note,
			})
		}
	}

	title := "DJ Lineup"
	if len(id) >= 8 {
		title = fmt.Sprintf("DJ Lineup %s", id[:8])
	}
	return dataset, title, nil
}

func (s *ScheduleService) session(id string) (repository.ScheduleSession, error) {
	if id == "" {
		return repository.ScheduleSession{}, appErrors.Clone(appErrors.ErrValidation, "schedule id is required")
	}
	session, ok := s.store.Get(id)
	if !ok {
		return repository.ScheduleSession{}, appErrors.Clone(appErrors.ErrNotFound, "schedule not found or expired")
	}
	return session, nil
}

func slotFromPayload(payload dto.SlotPayload) (models.Slot, error) {
	slot, err := models.NewSlot(payload.Venue, normalizeDay(payload.Day), payload.Start, payload.End)
	if err != nil {
		return models.Slot{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot boundaries")
	}
	return slot, nil
}

func exclude(candidates []string, dj string) []string {
	filtered := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate != dj {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}
