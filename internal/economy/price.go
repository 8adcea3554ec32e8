package economy

import (
	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

// commerceSkillRate is the per-point price lift from the best commerce
// skill aboard: +0.5% per level.
const commerceSkillRate = 0.005

var locationTypeMultipliers = map[state.LocationType]float64{
	state.LocationPlanet:  1.1,
	state.LocationStation: 1.0,
	state.LocationOrbital: 0.85,
	state.LocationMoon:    0.9,
}

// defaultLocationTypeMultiplier covers belts and anything uncatalogued.
const defaultLocationTypeMultiplier = 0.8

// LocationTypeMultiplier returns the fixed price multiplier for a location
// type.
func LocationTypeMultiplier(locType state.LocationType) float64 {
	if mult, ok := locationTypeMultipliers[locType]; ok {
		return mult
	}
	return defaultLocationTypeMultiplier
}

// SellPrice computes the per-unit sale price of an ore kind at a location,
// before the fleet aura income multiplier.
func SellPrice(kind catalog.OreKind, locType state.LocationType, commerceSkill int, poolSellBonus float64) float64 {
	return kind.BaseValue *
		LocationTypeMultiplier(locType) *
		(1 + commerceSkillRate*float64(commerceSkill)) *
		(1 + poolSellBonus)
}
