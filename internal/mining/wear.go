package mining

import "starbelt/server/internal/state"

// BaseWear is the degradation added to each claimed instance per tick.
const BaseWear = 0.005

// applyWear degrades every equipment instance claimed during the tick.
// Degradation clamps to [0,100]; fully degraded equipment keeps operating
// at halved effectiveness rather than shutting down.
func applyWear(claimed map[string]*state.EquipmentInstance, poolWearReduction float64) {
	if poolWearReduction < 0 {
		poolWearReduction = 0
	}
	if poolWearReduction > 1 {
		poolWearReduction = 1
	}
	wear := BaseWear * (1 - poolWearReduction)
	for _, inst := range claimed {
		inst.Degradation += wear
		if inst.Degradation > 100 {
			inst.Degradation = 100
		}
		if inst.Degradation < 0 {
			inst.Degradation = 0
		}
	}
}
