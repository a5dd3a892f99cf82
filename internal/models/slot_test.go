package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	value, err := ParseClock("23:45")
	require.NoError(t, err)
	assert.Equal(t, ClockMinutes(23*60+45), value)

	for _, raw := range []string{"", "23", "24:00", "12:60", "ab:cd"} {
		_, err := ParseClock(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestNewSlotNormalizesPastMidnight(t *testing.T) {
	slot, err := NewSlot("Code Lounge", "Friday", "23:00", "01:00")
	require.NoError(t, err)
	assert.Equal(t, ClockMinutes(23*60), slot.Start)
	assert.Equal(t, ClockMinutes(25*60), slot.End)
	assert.Equal(t, "23:00", slot.Start.String())
	assert.Equal(t, "01:00", slot.End.String())
}

func TestNewSlotAnchorsEarlyMorningToSameNight(t *testing.T) {
	slot, err := NewSlot("Stay Lounge", "Friday", "00:30", "02:00")
	require.NoError(t, err)
	assert.Equal(t, ClockMinutes(24*60+30), slot.Start)
	assert.Equal(t, ClockMinutes(26*60), slot.End)
	assert.Equal(t, "00:30", slot.Start.String())
	assert.Equal(t, "02:00", slot.End.String())
}

func TestSlotOverlaps(t *testing.T) {
	base, err := NewSlot("Day and Night", "Friday", "22:00", "23:30")
	require.NoError(t, err)

	overlapping, err := NewSlot("Code Lounge", "Friday", "23:00", "00:00")
	require.NoError(t, err)
	assert.True(t, base.Overlaps(overlapping))

	// Half-open intervals: touching slots do not overlap.
	adjacent, err := NewSlot("Code Lounge", "Friday", "23:30", "00:30")
	require.NoError(t, err)
	assert.False(t, base.Overlaps(adjacent))

	crossMidnight, err := NewSlot("Stay Lounge", "Friday", "23:00", "01:00")
	require.NoError(t, err)
	late, err := NewSlot("Stay Lounge", "Friday", "00:30", "02:00")
	require.NoError(t, err)
	assert.True(t, crossMidnight.Overlaps(late))
}

func TestBuildRoster(t *testing.T) {
	schedules := VenueSchedules{
		"Day and Night": {
			{DJ: "Illi", Day: "Friday", Start: "22:00", End: "23:30"},
			{DJ: "Caleb", Day: "Friday", Start: "23:30", End: "00:45"},
		},
		"Code Lounge": {
			{DJ: "Illi", Day: "Friday", Start: "00:00", End: "01:00"},
			{DJ: "Broken", Day: "Friday", Start: "xx:00", End: "01:00"},
		},
	}

	roster := BuildRoster(schedules)
	assert.Len(t, roster["Illi"], 2)
	assert.Len(t, roster["Caleb"], 1)
	assert.NotContains(t, roster, "Broken", "unparseable slots are skipped")
	assert.Equal(t, []string{"Caleb", "Illi"}, roster.Names())
}
