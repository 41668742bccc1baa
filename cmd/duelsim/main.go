package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"duel_ai/internal/ai"
	"duel_ai/internal/catalog"
	"duel_ai/internal/combat"
	"duel_ai/internal/config"
	"duel_ai/internal/logging"
	"duel_ai/internal/report"
	"duel_ai/internal/util"
)

const (
	greedyName = "Greedy"
	searchName = "Search"
)

type job struct {
	gameID   int
	scenario string
	roster   combat.Roster
}

func main() {
	var cfgDir, mode, out, csvPath string
	var seed int64
	var depth, n, workers int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&mode, "mode", "single", "single or batch")
	flag.StringVar(&out, "out", "out.json", "match file (single) or summary file (batch)")
	flag.StringVar(&csvPath, "csv", "results.csv", "per-game CSV (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&depth, "depth", 0, "search depth, overrides sim.yaml")
	flag.IntVar(&n, "n", 0, "matches per scenario, overrides sim.yaml")
	flag.IntVar(&workers, "workers", 0, "parallel matches, overrides sim.yaml")
	flag.BoolVar(&saveLog, "log", true, "record the event log in single mode")
	flag.Parse()

	bundle, err := config.LoadAll(cfgDir)
	if err != nil {
		logging.Fatal("load config", err, logging.Fields{"dir": cfgDir})
	}
	sim := *bundle.Sim
	if depth > 0 {
		sim.SearchDepth = depth
	}
	if n > 0 {
		sim.MatchesPerTeam = n
	}
	if workers > 0 {
		sim.Workers = workers
	}

	cat, err := catalog.FromBundle(bundle, util.New(seed))
	if err != nil {
		logging.Fatal("build catalog", err, nil)
	}
	eng := combat.NewEngine(catalog.TypeChart(bundle.Types), combat.TieBreakRandom)
	eng.Resolver.Level = cat.Level

	jobs, err := buildJobs(cat, sim, util.New(seed))
	if err != nil {
		logging.Fatal("build teams", err, nil)
	}

	switch mode {
	case "single":
		runSingle(*eng, sim, jobs[0], uint64(seed), saveLog, out)
	case "batch":
		runBatch(*eng, sim, jobs, uint64(seed), out, csvPath)
	default:
		logging.Fatal("unknown mode", fmt.Errorf("mode %q", mode), nil)
	}
}

// buildJobs lays out every game of the batch. Without configured scenarios
// a single random team is used.
func buildJobs(cat *catalog.Catalog, sim config.SimConfig, rng combat.Rand) ([]job, error) {
	type scenario struct {
		name   string
		roster combat.Roster
	}
	var scenarios []scenario
	for _, sc := range sim.Scenarios {
		r, err := cat.Team(sc.Team...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		scenarios = append(scenarios, scenario{sc.Name, r})
	}
	if len(scenarios) == 0 {
		r, err := cat.RandomTeam(rng)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario{"Random", r})
	}

	perTeam := max(sim.MatchesPerTeam, 1)
	var jobs []job
	for _, sc := range scenarios {
		for range perTeam {
			jobs = append(jobs, job{gameID: len(jobs) + 1, scenario: sc.name, roster: sc.roster})
		}
	}
	return jobs, nil
}

// play runs one mirror match. Every random stream of the game derives from
// the game seed, so a game replays the same way on any worker.
func play(eng combat.Engine, sim config.SimConfig, j job, gameSeed uint64, record bool) (combat.MatchResult, error) {
	greedy := ai.NewGreedy(eng.Resolver, util.Stream(util.Derive(gameSeed, 0)))
	greedy.LowDamage = sim.Greedy.LowDamage
	greedy.SwitchMargin = sim.Greedy.SwitchMargin
	search := ai.NewSearch(eng.Resolver, sim.SearchDepth, int64(util.Derive(gameSeed, 1)))

	env := &combat.Env{
		Engine:   eng,
		Rng:      util.Stream(util.Derive(gameSeed, 2)),
		MaxTurns: sim.MaxTurns,
	}
	st := combat.NewState(
		combat.Side{Name: greedyName, Roster: j.roster},
		combat.Side{Name: searchName, Roster: j.roster},
	)
	players := [2]combat.Player{
		{Name: greedyName, Policy: greedy},
		{Name: searchName, Policy: search},
	}
	return combat.RunMatch(env, st, players, record)
}

func runSingle(eng combat.Engine, sim config.SimConfig, j job, seed uint64, saveLog bool, out string) {
	res, err := play(eng, sim, j, util.Derive(seed, j.gameID), saveLog)
	if err != nil {
		logging.Fatal("match failed", err, logging.Fields{"scenario": j.scenario})
	}
	if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
		logging.Fatal("write result", err, logging.Fields{"path": out})
	}
	logging.Info("single match finished", logging.Fields{
		"scenario": j.scenario,
		"result":   res.Result,
		"winner":   res.Winner,
		"turns":    res.Turns,
		"out":      out,
	})
}

func runBatch(eng combat.Engine, sim config.SimConfig, jobs []job, seed uint64, out, csvPath string) {
	workers := max(sim.Workers, 1)
	logging.Info("batch started", logging.Fields{
		"games":   len(jobs),
		"depth":   sim.SearchDepth,
		"workers": workers,
	})

	records := make([]report.Record, len(jobs))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := play(eng, sim, j, util.Derive(seed, j.gameID), false)
			if err != nil {
				return fmt.Errorf("game %d (%s): %w", j.gameID, j.scenario, err)
			}
			records[i] = report.FromMatch(j.gameID, j.scenario, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Fatal("batch failed", err, nil)
	}

	if err := report.WriteCSV(csvPath, records); err != nil {
		logging.Fatal("write csv", err, nil)
	}
	summary := report.Summarize(records)
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		logging.Fatal("write summary", err, logging.Fields{"path": out})
	}
	fields := logging.Fields{
		"games":     summary.Games,
		"draws":     summary.Draws,
		"avg_turns": summary.AvgTurns,
		"csv":       csvPath,
		"out":       out,
	}
	for name, p := range summary.Players {
		fields[name+"_win_rate"] = p.WinRate
	}
	logging.Info("batch finished", fields)
}
