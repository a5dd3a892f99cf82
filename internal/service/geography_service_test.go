package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daehyun-dev/lineup-api/pkg/config"
)

// testGeography mirrors the built-in Seoul layout so conflict and
// replacement tests run against the same travel tables the service ships.
func testGeography() *GeographyService {
	return NewGeographyService(config.GeographyConfig{
		DefaultTravelMinutes: 30,
		IntraAreaMinutes:     5,
		VenueAreas: map[string]string{
			"Day and Night": "Itaewon",
			"Code Lounge":   "Apgujeong",
			"A.P. Lounge":   "Apgujeong",
		},
		AreaTravel: []config.TravelPair{
			{From: "Itaewon", To: "Apgujeong", Minutes: 30},
		},
		VenueTravel: []config.TravelPair{
			{From: "Code Lounge", To: "Day and Night", Minutes: 10},
			{From: "Code Lounge", To: "Stay Lounge", Minutes: 15},
			{From: "Day and Night", To: "Stay Lounge", Minutes: 20},
		},
	})
}

func TestGeographyAreaOf(t *testing.T) {
	geo := testGeography()

	assert.Equal(t, "Itaewon", geo.AreaOf("Day and Night"))
	assert.Equal(t, "Apgujeong", geo.AreaOf("A.P. Lounge"))
	assert.Equal(t, UnknownArea, geo.AreaOf("Stay Lounge"))
	assert.Equal(t, UnknownArea, geo.AreaOf("Nonexistent"))
}

func TestGeographyTravelMinutes(t *testing.T) {
	geo := testGeography()

	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"venue pair beats area pair", "Code Lounge", "Day and Night", 10},
		{"venue pair is symmetric", "Day and Night", "Code Lounge", 10},
		{"venue pair for unmapped venue", "Stay Lounge", "Day and Night", 20},
		{"area pair fallback", "A.P. Lounge", "Day and Night", 30},
		{"intra-area fallback", "Code Lounge", "A.P. Lounge", 5},
		{"default for unknown pair", "Stay Lounge", "A.P. Lounge", 30},
		{"default for two unknown venues", "Somewhere", "Elsewhere", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.TravelMinutes(tt.from, tt.to))
		})
	}
}

func TestGeographyDefaultFloor(t *testing.T) {
	geo := NewGeographyService(config.GeographyConfig{})
	assert.Equal(t, 30, geo.TravelMinutes("A", "B"))
}
