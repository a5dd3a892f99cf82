package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

func sampleVenues() models.VenueSchedules {
	return models.VenueSchedules{
		"Day and Night": {
			{DJ: "Illi", Day: "Friday", Start: "22:00", End: "23:30"},
		},
	}
}

func TestScheduleStoreSaveAndGet(t *testing.T) {
	store := NewScheduleStore(time.Hour)
	store.Save(ScheduleSession{ID: "abc", Venues: sampleVenues()})

	session, ok := store.Get("abc")
	require.True(t, ok)
	assert.Equal(t, "abc", session.ID)
	assert.False(t, session.CreatedAt.IsZero())
	require.Len(t, session.Venues["Day and Night"], 1)

	// The returned copy is detached from the stored session.
	session.Venues["Day and Night"][0].DJ = "Mutated"
	again, ok := store.Get("abc")
	require.True(t, ok)
	assert.Equal(t, "Illi", again.Venues["Day and Night"][0].DJ)
}

func TestScheduleStoreGetMissing(t *testing.T) {
	store := NewScheduleStore(time.Hour)
	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestScheduleStoreExpiry(t *testing.T) {
	store := NewScheduleStore(time.Millisecond)
	store.Save(ScheduleSession{ID: "abc", Venues: sampleVenues()})

	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get("abc")
	assert.False(t, ok)

	updated := store.Update("abc", func(v models.VenueSchedules) models.VenueSchedules { return v })
	assert.False(t, updated, "expired sessions cannot be updated")
}

func TestScheduleStoreUpdate(t *testing.T) {
	store := NewScheduleStore(time.Hour)
	store.Save(ScheduleSession{ID: "abc", Venues: sampleVenues()})

	ok := store.Update("abc", func(venues models.VenueSchedules) models.VenueSchedules {
		venues["Day and Night"][0].DJ = "Caleb"
		return venues
	})
	require.True(t, ok)

	session, ok := store.Get("abc")
	require.True(t, ok)
	assert.Equal(t, "Caleb", session.Venues["Day and Night"][0].DJ)

	assert.False(t, store.Update("missing", func(v models.VenueSchedules) models.VenueSchedules { return v }))
}

func TestScheduleStoreDelete(t *testing.T) {
	store := NewScheduleStore(time.Hour)
	store.Save(ScheduleSession{ID: "abc", Venues: sampleVenues()})
	store.Delete("abc")

	_, ok := store.Get("abc")
	assert.False(t, ok)
}
