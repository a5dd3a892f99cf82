package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daehyun-dev/lineup-api/internal/models"
)

func TestParseSchedule(t *testing.T) {
	parser := NewParserService(nil)

	text := `Day and Night (금):
22:00-23:30 illi
23:30-01:00 big ma

Code Lounge (Friday):
22:00-00:00 caleb
`

	schedules := parser.Parse(text)
	require.Len(t, schedules, 2)

	dayAndNight := schedules["Day and Night"]
	require.Len(t, dayAndNight, 2)
	assert.Equal(t, models.ScheduleSlot{DJ: "Illi", Day: "Friday", Start: "22:00", End: "23:30"}, dayAndNight[0])
	assert.Equal(t, "Big Ma", dayAndNight[1].DJ, "DJ names are title-cased for roster identity")

	codeLounge := schedules["Code Lounge"]
	require.Len(t, codeLounge, 1)
	assert.Equal(t, "Caleb", codeLounge[0].DJ)
	assert.Equal(t, "Friday", codeLounge[0].Day)
}

func TestParseBareHeaders(t *testing.T) {
	parser := NewParserService(nil)

	text := `주말 Stay Lounge:
20:00-22:00 hana
`

	schedules := parser.Parse(text)
	require.Contains(t, schedules, "Stay Lounge")
	slots := schedules["Stay Lounge"]
	require.Len(t, slots, 1)
	assert.Equal(t, "Weekend", slots[0].Day)
	assert.Equal(t, "Hana", slots[0].DJ)
}

func TestParseStripsEmoji(t *testing.T) {
	parser := NewParserService(nil)

	text := "🔥 Day and Night (토): 🔥\n22:00-23:00 illi 🎧\n"

	schedules := parser.Parse(text)
	require.Contains(t, schedules, "Day and Night")
	slots := schedules["Day and Night"]
	require.Len(t, slots, 1)
	assert.Equal(t, "Saturday", slots[0].Day)
	assert.Equal(t, "Illi", slots[0].DJ)
}

func TestParseSkipsGarbage(t *testing.T) {
	parser := NewParserService(nil)

	text := `random chatter
Day and Night (일):
not a slot line
22:00-23:00 illi
`

	schedules := parser.Parse(text)
	require.Len(t, schedules, 1)
	require.Len(t, schedules["Day and Night"], 1)
	assert.Equal(t, "Sunday", schedules["Day and Night"][0].Day)
}

func TestParseSlotBeforeHeaderIgnored(t *testing.T) {
	parser := NewParserService(nil)

	schedules := parser.Parse("22:00-23:00 illi\n")
	assert.Empty(t, schedules)
}

func TestNormalizeDay(t *testing.T) {
	assert.Equal(t, "Friday", normalizeDay("금"))
	assert.Equal(t, "Weekend", normalizeDay("주말"))
	assert.Equal(t, "Friday", normalizeDay("FRIDAY"))
	assert.Equal(t, "Friday", normalizeDay(" friday "))
	assert.Equal(t, "", normalizeDay(""))
}
