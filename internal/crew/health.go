package crew

// minEfficiency keeps a barely-alive crew member productive enough that
// efficiency stays strictly positive.
const minEfficiency = 0.25

// Health implements the crew-health collaborator.
type Health struct{}

// HealthEfficiency maps health in [0,100] to a work-rate multiplier in
// (0,1]. Full health works at 1.0; losses scale the remainder linearly
// down to the floor.
func (Health) HealthEfficiency(health float64) float64 {
	if health >= 100 {
		return 1
	}
	if health < 0 {
		health = 0
	}
	return minEfficiency + (1-minEfficiency)*health/100
}
