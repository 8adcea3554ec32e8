package mastery

import (
	"math"
	"testing"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

func testCrew() *state.CrewMember {
	return state.NewCrewMember("Trainee", map[state.Skill]int{state.SkillMining: 0})
}

func TestAwardXPLevelsUp(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	// Level 0 needs 20 * 1^1.5 = 20 XP.
	leveled, level := s.AwardXP(crew, state.SkillMining, "ironate", 19, 0, 6)
	if leveled || level != 0 {
		t.Fatalf("leveled early: leveled=%v level=%d", leveled, level)
	}
	leveled, level = s.AwardXP(crew, state.SkillMining, "ironate", 1, 0, 6)
	if !leveled || level != 1 {
		t.Fatalf("expected level 1, got leveled=%v level=%d", leveled, level)
	}
	if got := s.TrackLevel(crew, state.SkillMining, "ironate"); got != 1 {
		t.Fatalf("track level = %d, want 1", got)
	}
}

func TestAwardXPScalesWithSkillLevel(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	// At skill 200 every point counts double: 10 raw XP crosses the
	// 20 XP threshold for level 1.
	leveled, level := s.AwardXP(crew, state.SkillMining, "ironate", 10, 200, 6)
	if !leveled || level != 1 {
		t.Fatalf("expected doubled XP to level, got leveled=%v level=%d", leveled, level)
	}
}

func TestAwardXPMultiLevelInOneAward(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	// Levels 0 and 1 need 20 + 20*2^1.5 XP together.
	needed := 20 + 20*math.Pow(2, 1.5)
	leveled, level := s.AwardXP(crew, state.SkillMining, "ironate", needed, 0, 6)
	if !leveled || level != 2 {
		t.Fatalf("expected level 2, got leveled=%v level=%d", leveled, level)
	}
}

func TestAwardXPCapsAtMaxTrackLevel(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	leveled, level := s.AwardXP(crew, state.SkillMining, "ironate", 1e9, 0, 6)
	if !leveled || level != MaxTrackLevel {
		t.Fatalf("expected cap at %d, got leveled=%v level=%d", MaxTrackLevel, leveled, level)
	}

	// A capped track absorbs nothing further.
	leveled, level = s.AwardXP(crew, state.SkillMining, "ironate", 1e9, 0, 6)
	if leveled || level != MaxTrackLevel {
		t.Fatalf("capped track leveled again: leveled=%v level=%d", leveled, level)
	}
	if got := s.PoolCompletion(crew, state.SkillMining); math.Abs(got-float64(MaxTrackLevel)/60) > 1e-9 {
		t.Fatalf("pool completion = %v, want %v", got, float64(MaxTrackLevel)/60)
	}
}

func TestAwardXPIgnoresNilCrewAndNonPositiveXP(t *testing.T) {
	s := NewSystem()
	if leveled, _ := s.AwardXP(nil, state.SkillMining, "ironate", 50, 0, 6); leveled {
		t.Fatalf("nil crew leveled")
	}
	crew := testCrew()
	if leveled, _ := s.AwardXP(crew, state.SkillMining, "ironate", 0, 0, 6); leveled {
		t.Fatalf("zero XP leveled")
	}
	if got := s.TrackLevel(crew, state.SkillMining, "ironate"); got != 0 {
		t.Fatalf("track level = %d, want 0", got)
	}
}

func TestOreYieldBonusPerTrackLevel(t *testing.T) {
	s := NewSystem()
	crew := testCrew()
	s.AwardXP(crew, state.SkillMining, string(catalog.OreIronate), 1e9, 0, 6)

	want := 0.01 * float64(MaxTrackLevel)
	if got := s.OreYieldBonus(crew, catalog.OreIronate); got != want {
		t.Fatalf("ore yield bonus = %v, want %v", got, want)
	}
	if got := s.OreYieldBonus(crew, catalog.OreCupriteX); got != 0 {
		t.Fatalf("untrained ore carries a bonus: %v", got)
	}
}

func TestPoolCheckpoints(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	// Single-subject skill: the pool denominator is 10, so each track
	// level adds 10% completion.
	maxOut := func(subject string) {
		s.AwardXP(crew, state.SkillMining, subject, 1e9, 0, 1)
	}

	if got := s.PoolYieldBonus(crew, state.SkillMining); got != 0 {
		t.Fatalf("empty pool yields bonus %v", got)
	}

	maxOut("ironate")
	if got := s.PoolCompletion(crew, state.SkillMining); got != 1 {
		t.Fatalf("pool completion = %v, want 1", got)
	}
	if got := s.PoolYieldBonus(crew, state.SkillMining); got != 0.12 {
		t.Fatalf("pool yield bonus = %v, want 0.12", got)
	}
	if got := s.PoolDoubleChance(crew, state.SkillMining); got != 0.10 {
		t.Fatalf("pool double chance = %v, want 0.10", got)
	}
	if got := s.PoolWearReduction(crew, state.SkillMining); got != 0.25 {
		t.Fatalf("pool wear reduction = %v, want 0.25", got)
	}
}

func TestPoolCheckpointThresholds(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	// Two subjects: denominator 20, so a fully levelled track is 50%
	// completion.
	s.AwardXP(crew, state.SkillMining, "ironate", 1e9, 0, 2)
	if got := s.PoolCompletion(crew, state.SkillMining); got != 0.5 {
		t.Fatalf("pool completion = %v, want 0.5", got)
	}
	if got := s.PoolYieldBonus(crew, state.SkillMining); got != 0.05 {
		t.Fatalf("pool yield bonus at 50%% = %v, want 0.05", got)
	}
	if got := s.PoolDoubleChance(crew, state.SkillMining); got != 0.05 {
		t.Fatalf("pool double chance at 50%% = %v, want 0.05", got)
	}

	// Level the second track fully: 100% completion.
	s.AwardXP(crew, state.SkillMining, "cuprite_x", 1e9, 0, 2)
	if got := s.PoolWearReduction(crew, state.SkillMining); got != 0.25 {
		t.Fatalf("pool wear reduction at 100%% = %v, want 0.25", got)
	}
}

func TestPoolSellBonusComesFromCommercePool(t *testing.T) {
	s := NewSystem()
	crew := testCrew()

	s.AwardXP(crew, state.SkillCommerce, "meridian_station", 1e9, 0, 1)
	if got := s.PoolSellBonus(crew); got != 0.10 {
		t.Fatalf("sell bonus = %v, want 0.10", got)
	}
	if got := s.PoolYieldBonus(crew, state.SkillMining); got != 0 {
		t.Fatalf("commerce training leaked into the mining pool: %v", got)
	}
}

func TestTracksAreIsolatedPerCrewMember(t *testing.T) {
	s := NewSystem()
	a := testCrew()
	b := testCrew()

	s.AwardXP(a, state.SkillMining, "ironate", 1e9, 0, 1)
	if got := s.TrackLevel(b, state.SkillMining, "ironate"); got != 0 {
		t.Fatalf("crew B inherited crew A's track level %d", got)
	}
	if got := s.PoolCompletion(b, state.SkillMining); got != 0 {
		t.Fatalf("crew B inherited pool completion %v", got)
	}
}
