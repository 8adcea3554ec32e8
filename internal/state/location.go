package state

import "starbelt/server/internal/catalog"

// LocationType classifies a world location for economy pricing.
type LocationType string

const (
	LocationPlanet  LocationType = "planet"
	LocationStation LocationType = "station"
	LocationOrbital LocationType = "orbital_platform"
	LocationMoon    LocationType = "moon"
	LocationBelt    LocationType = "belt"
)

// Service names a facility a location offers to visiting ships.
type Service string

const (
	ServiceMine  Service = "mine"
	ServiceTrade Service = "trade"
)

// OreOffering declares that a location yields an ore kind at a relative
// richness. Multiplier is always >= 0.
type OreOffering struct {
	Ore        catalog.OreID
	Multiplier float64
}

// Location is a visitable point in the universe.
type Location struct {
	Key       string
	Name      string
	Type      LocationType
	Services  []Service
	Offerings []OreOffering
}

// HasService reports whether the location offers the named service.
func (l *Location) HasService(service Service) bool {
	if l == nil {
		return false
	}
	for _, s := range l.Services {
		if s == service {
			return true
		}
	}
	return false
}

// OfferingFor returns the yield multiplier for an ore kind, if offered.
func (l *Location) OfferingFor(ore catalog.OreID) (float64, bool) {
	if l == nil {
		return 0, false
	}
	for _, offering := range l.Offerings {
		if offering.Ore == ore {
			return offering.Multiplier, true
		}
	}
	return 0, false
}

// Minable reports whether ships can run extraction here at all.
func (l *Location) Minable() bool {
	return l.HasService(ServiceMine) && len(l.Offerings) > 0
}
