package state

import "starbelt/server/internal/catalog"

// Fleet groups the player's ships and the shared credit ledger.
type Fleet struct {
	Ships   []*Ship
	Credits float64
}

// ShipByID finds a fleet member by identifier.
func (f *Fleet) ShipByID(id string) *Ship {
	if f == nil {
		return nil
	}
	for _, ship := range f.Ships {
		if ship.ID == id {
			return ship
		}
	}
	return nil
}

// TotalOre sums a given ore kind across every ship in the fleet.
func (f *Fleet) TotalOre(ore catalog.OreID) int {
	if f == nil {
		return 0
	}
	total := 0
	for _, ship := range f.Ships {
		total += ship.OreQuantity(ore)
	}
	return total
}

// ShipsAt returns the fleet members currently at the given location.
func (f *Fleet) ShipsAt(locationKey string) []*Ship {
	if f == nil {
		return nil
	}
	var present []*Ship
	for _, ship := range f.Ships {
		if ship.LocationKey == locationKey {
			present = append(present, ship)
		}
	}
	return present
}
