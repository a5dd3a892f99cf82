package service

import (
	"github.com/daehyun-dev/lineup-api/pkg/config"
)

// UnknownArea is the sentinel area for venues missing from the layout.
const UnknownArea = "Unknown"

type travelKey struct {
	From string
	To   string
}

// GeographyService answers venue→area and travel-time lookups. It is
// immutable after construction; both travel tables are symmetrized here so
// no package-level state ever gets patched at runtime.
type GeographyService struct {
	venueAreas     map[string]string
	venuePairs     map[travelKey]int
	areaPairs      map[travelKey]int
	intraMinutes   int
	defaultMinutes int
}

// NewGeographyService builds the lookup tables from configuration.
func NewGeographyService(cfg config.GeographyConfig) *GeographyService {
	g := &GeographyService{
		venueAreas:     make(map[string]string, len(cfg.VenueAreas)),
		venuePairs:     make(map[travelKey]int, 2*len(cfg.VenueTravel)),
		areaPairs:      make(map[travelKey]int, 2*len(cfg.AreaTravel)),
		intraMinutes:   cfg.IntraAreaMinutes,
		defaultMinutes: cfg.DefaultTravelMinutes,
	}
	if g.defaultMinutes <= 0 {
		g.defaultMinutes = 30
	}
	for venue, area := range cfg.VenueAreas {
		g.venueAreas[venue] = area
	}
	for _, pair := range cfg.VenueTravel {
		g.venuePairs[travelKey{pair.From, pair.To}] = pair.Minutes
		g.venuePairs[travelKey{pair.To, pair.From}] = pair.Minutes
	}
	for _, pair := range cfg.AreaTravel {
		g.areaPairs[travelKey{pair.From, pair.To}] = pair.Minutes
		g.areaPairs[travelKey{pair.To, pair.From}] = pair.Minutes
	}
	return g
}

// AreaOf returns the area a venue belongs to. Unknown venues map to the
// Unknown sentinel rather than an error.
func (g *GeographyService) AreaOf(venue string) string {
	if area, ok := g.venueAreas[venue]; ok {
		return area
	}
	return UnknownArea
}

// TravelMinutes returns the travel buffer required between two venues:
// exact venue pair first, then the area pair, then the fixed default.
func (g *GeographyService) TravelMinutes(from, to string) int {
	if minutes, ok := g.venuePairs[travelKey{from, to}]; ok {
		return minutes
	}
	fromArea := g.AreaOf(from)
	toArea := g.AreaOf(to)
	if minutes, ok := g.areaPairs[travelKey{fromArea, toArea}]; ok {
		return minutes
	}
	if fromArea == toArea && fromArea != UnknownArea && g.intraMinutes > 0 {
		return g.intraMinutes
	}
	return g.defaultMinutes
}
