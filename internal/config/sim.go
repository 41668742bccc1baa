package config

import (
	"errors"
	"fmt"
)

type SimConfig struct {
	Level          int            `yaml:"level"`
	MaxDexID       int            `yaml:"max_dex_id"`
	MaxTurns       int            `yaml:"max_turns"`
	MatchesPerTeam int            `yaml:"matches_per_team"`
	SearchDepth    int            `yaml:"search_depth"`
	Workers        int            `yaml:"workers"`
	Greedy         GreedyConfig   `yaml:"greedy"`
	Scenarios      []ScenarioSpec `yaml:"scenarios"`
}

type GreedyConfig struct {
	LowDamage    int `yaml:"low_damage"`
	SwitchMargin int `yaml:"switch_margin"`
}

type ScenarioSpec struct {
	Name string   `yaml:"name"`
	Team []string `yaml:"team"`
	Note string   `yaml:"note"`
}

func DefaultSim() SimConfig {
	return SimConfig{
		Level:          50,
		MaxDexID:       151,
		MaxTurns:       150,
		MatchesPerTeam: 10,
		SearchDepth:    2,
		Workers:        8,
		Greedy:         GreedyConfig{LowDamage: 15, SwitchMargin: 20},
	}
}

func (c *SimConfig) Validate() error {
	var errs []error
	if c.Level <= 0 {
		errs = append(errs, fmt.Errorf("level must be positive, got %d", c.Level))
	}
	if c.SearchDepth < 1 {
		errs = append(errs, fmt.Errorf("search_depth must be at least 1, got %d", c.SearchDepth))
	}
	if c.MaxTurns <= 0 {
		errs = append(errs, fmt.Errorf("max_turns must be positive, got %d", c.MaxTurns))
	}
	seen := map[string]bool{}
	for i, sc := range c.Scenarios {
		if sc.Name == "" {
			errs = append(errs, fmt.Errorf("scenario %d has no name", i))
		}
		if seen[sc.Name] {
			errs = append(errs, fmt.Errorf("duplicate scenario %q", sc.Name))
		}
		seen[sc.Name] = true
		if len(sc.Team) != 6 {
			errs = append(errs, fmt.Errorf("scenario %q needs 6 team members, got %d", sc.Name, len(sc.Team)))
		}
	}
	return errors.Join(errs...)
}
