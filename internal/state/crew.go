package state

import "github.com/google/uuid"

// Skill names a trainable crew aptitude.
type Skill string

const (
	SkillMining   Skill = "mining"
	SkillCommerce Skill = "commerce"
	SkillCommand  Skill = "command"
)

// Role names a shipboard duty a crew member can be assigned to.
type Role string

const (
	RoleMiningOps Role = "mining_ops"
	RoleCommand   Role = "command"
	RoleIdle      Role = "idle"
)

// Trait is a personality tag that feeds modifier lookups.
type Trait string

// CrewMember is a hired hand aboard a ship. Health lives in [0,100].
type CrewMember struct {
	ID     string
	Name   string
	Skills map[Skill]int
	Traits []Trait
	Health float64
	Role   Role
}

// NewCrewMember creates a crew member with a fresh identifier and full
// health.
func NewCrewMember(name string, skills map[Skill]int, traits ...Trait) *CrewMember {
	if skills == nil {
		skills = make(map[Skill]int)
	}
	return &CrewMember{
		ID:     uuid.NewString(),
		Name:   name,
		Skills: skills,
		Traits: traits,
		Health: 100,
		Role:   RoleIdle,
	}
}

// Skill returns the crew member's level in a skill, 0 when untrained.
func (c *CrewMember) Skill(skill Skill) int {
	if c == nil {
		return 0
	}
	return c.Skills[skill]
}

// HasTrait reports whether the crew member carries the given trait.
func (c *CrewMember) HasTrait(trait Trait) bool {
	if c == nil {
		return false
	}
	for _, t := range c.Traits {
		if t == trait {
			return true
		}
	}
	return false
}
