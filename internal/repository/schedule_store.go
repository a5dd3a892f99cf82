package repository

import (
	"sync"
	"time"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

// ScheduleSession is one submitted schedule: the venue→slots source of
// truth plus bookkeeping. The per-DJ roster is never stored; it is
// re-derived from Venues after every edit.
type ScheduleSession struct {
	ID        string
	Venues    models.VenueSchedules
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleStore keeps schedule sessions in memory with a TTL. Expired
// sessions are dropped lazily on access. This is session state, not
// persistence: a restart forgets everything by design.
type ScheduleStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]ScheduleSession
}

// NewScheduleStore builds a store evicting sessions idle longer than ttl.
func NewScheduleStore(ttl time.Duration) *ScheduleStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &ScheduleStore{
		ttl:   ttl,
		items: make(map[string]ScheduleSession),
	}
}

// Save stores a session under its ID, stamping creation time.
func (s *ScheduleStore) Save(session ScheduleSession) {
	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[session.ID] = session
}

// Get returns a deep copy of the session so callers can read it without
// holding the store lock or observing later edits.
func (s *ScheduleStore) Get(id string) (ScheduleSession, bool) {
	s.mu.RLock()
	session, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return ScheduleSession{}, false
	}
	if time.Since(session.UpdatedAt) > s.ttl {
		s.Delete(id)
		return ScheduleSession{}, false
	}
	session.Venues = copyVenues(session.Venues)
	return session, true
}

// Update applies mutate to the session's venue schedules under the store
// lock and refreshes the idle timer. It reports whether the session existed.
func (s *ScheduleStore) Update(id string, mutate func(models.VenueSchedules) models.VenueSchedules) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.items[id]
	if !ok {
		return false
	}
	if time.Since(session.UpdatedAt) > s.ttl {
		delete(s.items, id)
		return false
	}
	session.Venues = mutate(copyVenues(session.Venues))
	session.UpdatedAt = time.Now()
	s.items[id] = session
	return true
}

// Delete removes a session.
func (s *ScheduleStore) Delete(id string) {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
}

func copyVenues(venues models.VenueSchedules) models.VenueSchedules {
	copied := make(models.VenueSchedules, len(venues))
	for venue, slots := range venues {
		copied[venue] = append([]models.ScheduleSlot(nil), slots...)
	}
	return copied
}
