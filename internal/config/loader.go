package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	MovesFile   = "moves.yaml"
	PokedexFile = "pokedex.yaml"
	SimFile     = "sim.yaml"
	TypesFile   = "types.yaml"
)

type Bundle struct {
	Moves   *MovesConfig
	Pokedex *PokedexConfig
	Sim     *SimConfig
	// Types is nil when the directory has no types.yaml.
	Types *TypesConfig
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func LoadAll(dir string) (*Bundle, error) {
	var mc MovesConfig
	var pc PokedexConfig
	sc := DefaultSim()
	if err := loadYAML(filepath.Join(dir, MovesFile), &mc); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, PokedexFile), &pc); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, SimFile), &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Join(dir, SimFile), err)
	}
	b := &Bundle{Moves: &mc, Pokedex: &pc, Sim: &sc}

	var tc TypesConfig
	err := loadYAML(filepath.Join(dir, TypesFile), &tc)
	switch {
	case err == nil:
		b.Types = &tc
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}
	return b, nil
}
