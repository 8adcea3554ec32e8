package mastery

import (
	"math"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

// MaxTrackLevel caps every per-subject mastery track.
const MaxTrackLevel = 10

// defaultSubjects sizes a pool when the caller cannot report how many
// subjects the skill spans.
const defaultSubjects = 8

type trackKey struct {
	skill   state.Skill
	subject string
}

type track struct {
	xp    float64
	level int
}

type pool struct {
	totalLevels int
	denominator int
}

func (p *pool) completion() float64 {
	if p == nil || p.denominator <= 0 {
		return 0
	}
	completion := float64(p.totalLevels) / float64(p.denominator)
	return math.Min(1, completion)
}

// checkpoint grants fixed bonuses once a pool reaches its completion
// threshold. The highest reached checkpoint wins; bonuses do not stack.
type checkpoint struct {
	threshold     float64
	yieldBonus    float64
	doubleChance  float64
	wearReduction float64
	sellBonus     float64
}

var checkpoints = []checkpoint{
	{threshold: 0.25, yieldBonus: 0.02, doubleChance: 0, wearReduction: 0.10, sellBonus: 0.02},
	{threshold: 0.50, yieldBonus: 0.05, doubleChance: 0.05, wearReduction: 0.10, sellBonus: 0.04},
	{threshold: 0.75, yieldBonus: 0.08, doubleChance: 0.05, wearReduction: 0.25, sellBonus: 0.07},
	{threshold: 1.00, yieldBonus: 0.12, doubleChance: 0.10, wearReduction: 0.25, sellBonus: 0.10},
}

// System tracks per-crew mastery: an XP track per (skill, subject) and a
// skill-wide pool whose completion unlocks checkpoint bonuses. It runs
// inside the single-threaded tick, so it carries no locking.
type System struct {
	tracks map[string]map[trackKey]*track
	pools  map[string]map[state.Skill]*pool
}

// NewSystem constructs an empty mastery ledger.
func NewSystem() *System {
	return &System{
		tracks: make(map[string]map[trackKey]*track),
		pools:  make(map[string]map[state.Skill]*pool),
	}
}

// xpForLevel is the XP needed to climb out of the given level.
func xpForLevel(level int) float64 {
	return 20 * math.Pow(float64(level+1), 1.5)
}

// AwardXP adds XP to the crew member's (skill, subject) track and reports
// any level-up. XP scales gently with the awardee's skill level. A capped
// track absorbs no further XP.
func (s *System) AwardXP(crew *state.CrewMember, skill state.Skill, subject string, xp float64, skillLevel, subjectCount int) (bool, int) {
	if crew == nil || xp <= 0 {
		return false, 0
	}
	t := s.ensureTrack(crew.ID, skill, subject)
	p := s.ensurePool(crew.ID, skill, subjectCount)
	if t.level >= MaxTrackLevel {
		return false, t.level
	}

	t.xp += xp * (1 + float64(skillLevel)/200)

	leveled := false
	for t.level < MaxTrackLevel && t.xp >= xpForLevel(t.level) {
		t.xp -= xpForLevel(t.level)
		t.level++
		p.totalLevels++
		leveled = true
	}
	return leveled, t.level
}

// TrackLevel reports the current level of a (skill, subject) track.
func (s *System) TrackLevel(crew *state.CrewMember, skill state.Skill, subject string) int {
	if crew == nil {
		return 0
	}
	if t := s.tracks[crew.ID][trackKey{skill: skill, subject: subject}]; t != nil {
		return t.level
	}
	return 0
}

// PoolCompletion reports the crew member's pool progress for a skill in
// [0,1].
func (s *System) PoolCompletion(crew *state.CrewMember, skill state.Skill) float64 {
	if crew == nil {
		return 0
	}
	return s.pools[crew.ID][skill].completion()
}

// OreYieldBonus is the per-ore item-mastery yield fraction: +1% per track
// level.
func (s *System) OreYieldBonus(crew *state.CrewMember, ore catalog.OreID) float64 {
	return 0.01 * float64(s.TrackLevel(crew, state.SkillMining, string(ore)))
}

// PoolYieldBonus is the pool-wide yield fraction from the highest reached
// checkpoint.
func (s *System) PoolYieldBonus(crew *state.CrewMember, skill state.Skill) float64 {
	return s.reached(crew, skill).yieldBonus
}

// PoolDoubleChance is the double-extraction probability from the highest
// reached checkpoint.
func (s *System) PoolDoubleChance(crew *state.CrewMember, skill state.Skill) float64 {
	return s.reached(crew, skill).doubleChance
}

// PoolWearReduction is the equipment wear reduction from the highest
// reached checkpoint.
func (s *System) PoolWearReduction(crew *state.CrewMember, skill state.Skill) float64 {
	return s.reached(crew, skill).wearReduction
}

// PoolSellBonus is the commerce pool's sale price fraction.
func (s *System) PoolSellBonus(crew *state.CrewMember) float64 {
	return s.reached(crew, state.SkillCommerce).sellBonus
}

func (s *System) reached(crew *state.CrewMember, skill state.Skill) checkpoint {
	completion := s.PoolCompletion(crew, skill)
	var best checkpoint
	for _, cp := range checkpoints {
		if completion >= cp.threshold {
			best = cp
		}
	}
	return best
}

func (s *System) ensureTrack(crewID string, skill state.Skill, subject string) *track {
	byKey := s.tracks[crewID]
	if byKey == nil {
		byKey = make(map[trackKey]*track)
		s.tracks[crewID] = byKey
	}
	key := trackKey{skill: skill, subject: subject}
	t := byKey[key]
	if t == nil {
		t = &track{}
		byKey[key] = t
	}
	return t
}

func (s *System) ensurePool(crewID string, skill state.Skill, subjectCount int) *pool {
	bySkill := s.pools[crewID]
	if bySkill == nil {
		bySkill = make(map[state.Skill]*pool)
		s.pools[crewID] = bySkill
	}
	p := bySkill[skill]
	if p == nil {
		p = &pool{}
		bySkill[skill] = p
	}
	if subjectCount <= 0 {
		subjectCount = defaultSubjects
	}
	if denom := subjectCount * MaxTrackLevel; denom > p.denominator {
		p.denominator = denom
	}
	return p
}
