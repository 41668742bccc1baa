package main

import (
	"fmt"
	"testing"

	"duel_ai/internal/catalog"
	"duel_ai/internal/combat"
	"duel_ai/internal/config"
	"duel_ai/internal/util"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	power := func(v int) *int { return &v }
	moves := &config.MovesConfig{Moves: []config.MoveDef{
		{Name: "Tackle", Type: "Normal", Power: power(40)},
		{Name: "Ember", Type: "Fire", Power: power(40)},
		{Name: "Bubble", Type: "Water", Power: power(40)},
		{Name: "Vine Whip", Type: "Grass", Power: power(45)},
	}}
	types := []string{"Fire", "Water", "Grass"}
	dex := &config.PokedexConfig{}
	for i := 1; i <= 7; i++ {
		dex.Entries = append(dex.Entries, config.DexEntry{
			ID: i, Name: config.DexName(fmt.Sprintf("mon%d", i)), Types: []string{types[i%3]},
			Base: config.BaseStats{HP: 40 + i, Attack: 60, Defense: 50, SpAttack: 60, SpDefense: 50, Speed: 50 + i},
		})
	}
	cat, err := catalog.Build(moves, dex, catalog.Options{}, util.New(1))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return cat
}

func testSim() config.SimConfig {
	sim := config.DefaultSim()
	sim.SearchDepth = 1
	sim.MatchesPerTeam = 2
	sim.Scenarios = []config.ScenarioSpec{
		{Name: "First", Team: []string{"mon1", "mon2", "mon3", "mon4", "mon5", "mon6"}},
		{Name: "Second", Team: []string{"mon2", "mon3", "mon4", "mon5", "mon6", "mon7"}},
	}
	return sim
}

func TestBuildJobs(t *testing.T) {
	jobs, err := buildJobs(testCatalog(t), testSim(), util.New(1))
	if err != nil {
		t.Fatalf("buildJobs: %v", err)
	}
	if len(jobs) != 4 {
		t.Fatalf("jobs = %d, want 4", len(jobs))
	}
	for i, j := range jobs {
		if j.gameID != i+1 {
			t.Fatalf("job %d has id %d", i, j.gameID)
		}
	}
	if jobs[1].scenario != "First" || jobs[2].scenario != "Second" || jobs[2].roster[0].Name != "mon2" {
		t.Fatalf("jobs = %+v", jobs)
	}

	random := testSim()
	random.Scenarios = nil
	jobs, err = buildJobs(testCatalog(t), random, util.New(1))
	if err != nil || len(jobs) != 2 || jobs[0].scenario != "Random" {
		t.Fatalf("random jobs = %v, %v", jobs, err)
	}

	bad := testSim()
	bad.Scenarios[0].Team[5] = "Mewtwo"
	if _, err := buildJobs(testCatalog(t), bad, util.New(1)); err == nil {
		t.Fatalf("unknown team member should fail")
	}
}

func TestPlayIsReproducible(t *testing.T) {
	cat := testCatalog(t)
	sim := testSim()
	jobs, err := buildJobs(cat, sim, util.New(1))
	if err != nil {
		t.Fatalf("buildJobs: %v", err)
	}
	eng := combat.NewEngine(nil, combat.TieBreakRandom)

	first, err := play(*eng, sim, jobs[0], 99, true)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if first.Outcome == combat.Continue {
		t.Fatalf("match did not finish")
	}
	if len(first.Events) == 0 {
		t.Fatalf("no events recorded")
	}
	again, err := play(*eng, sim, jobs[0], 99, false)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if again.Turns != first.Turns || again.Result != first.Result || again.Sides[0].Switches != first.Sides[0].Switches {
		t.Fatalf("replay differs: %+v vs %+v", again, first)
	}
}
