package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"duel_ai/internal/combat"
	"duel_ai/internal/config"
)

var ErrUnknownCreature = errors.New("unknown creature")

const (
	DefaultLevel    = combat.DefaultLevel
	DefaultMaxDexID = 151
	defaultAccuracy = 100
)

type Options struct {
	Level    int
	MaxDexID int
}

// Catalog holds the validated moves and creatures of one build. Creatures
// are stored at full HP with their move sets already drawn.
type Catalog struct {
	Level     int
	Moves     []combat.Move
	Creatures []combat.Creature

	byName map[string]int
}

// FromBundle builds a catalog with the level and dex cutoff from sim.yaml.
func FromBundle(b *config.Bundle, rng combat.Rand) (*Catalog, error) {
	return Build(b.Moves, b.Pokedex, Options{Level: b.Sim.Level, MaxDexID: b.Sim.MaxDexID}, rng)
}

func Build(moves *config.MovesConfig, dex *config.PokedexConfig, opts Options, rng combat.Rand) (*Catalog, error) {
	if opts.Level <= 0 {
		opts.Level = DefaultLevel
	}
	if opts.MaxDexID <= 0 {
		opts.MaxDexID = DefaultMaxDexID
	}
	c := &Catalog{Level: opts.Level, byName: map[string]int{}}

	if moves != nil {
		for i, def := range moves.Moves {
			if def.Power == nil {
				continue
			}
			if def.Name == "" {
				return nil, fmt.Errorf("move %d has no name", i)
			}
			acc := defaultAccuracy
			if def.Accuracy != nil {
				acc = *def.Accuracy
			}
			c.Moves = append(c.Moves, combat.Move{
				Name:     def.Name,
				Type:     CanonicalType(def.Type),
				Power:    *def.Power,
				Accuracy: acc,
				Category: combat.ParseCategory(def.Category),
			})
		}
	}
	pool := NewMovePool(c.Moves)

	if dex == nil {
		return c, nil
	}
	for _, e := range dex.Entries {
		if e.ID > opts.MaxDexID {
			continue
		}
		name := string(e.Name)
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("duplicate creature %q", name)
		}
		types := make([]string, len(e.Types))
		for i, t := range e.Types {
			types[i] = CanonicalType(t)
		}
		hp := ConvertHP(e.Base.HP, opts.Level)
		cr := combat.Creature{
			ID:    e.ID,
			Name:  name,
			Types: types,
			MaxHP: hp,
			HP:    hp,
			Stats: combat.Stats{
				Attack:    ConvertStat(e.Base.Attack, opts.Level),
				Defense:   ConvertStat(e.Base.Defense, opts.Level),
				SpAttack:  ConvertStat(e.Base.SpAttack, opts.Level),
				SpDefense: ConvertStat(e.Base.SpDefense, opts.Level),
				Speed:     ConvertStat(e.Base.Speed, opts.Level),
			},
			Moves: pool.Instantiate(types, rng),
		}
		if err := cr.Validate(); err != nil {
			return nil, fmt.Errorf("dex entry %d: %w", e.ID, err)
		}
		c.byName[name] = len(c.Creatures)
		c.Creatures = append(c.Creatures, cr)
	}
	return c, nil
}

// ConvertHP turns a base HP into the actual value at level, with perfect
// individual values and no effort values.
func ConvertHP(base, level int) int {
	return (2*base+31)*level/100 + level + 10
}

func ConvertStat(base, level int) int {
	return (2*base+31)*level/100 + 5
}

// CanonicalType maps "fire", "FIRE" and " Fire " to "Fire".
func CanonicalType(t string) string {
	return cases.Title(language.English).String(strings.TrimSpace(t))
}

// TypeChart returns the chart from types.yaml, or the standard chart when
// none was given.
func TypeChart(cfg *config.TypesConfig) combat.TypeChart {
	if cfg == nil || len(cfg.Chart) == 0 {
		return combat.StandardChart()
	}
	chart := make(combat.TypeChart, len(cfg.Chart))
	for atk, row := range cfg.Chart {
		out := make(map[string]float64, len(row))
		for def, m := range row {
			out[CanonicalType(def)] = m
		}
		chart[CanonicalType(atk)] = out
	}
	return chart
}

func (c *Catalog) Creature(name string) (combat.Creature, bool) {
	i, ok := c.byName[name]
	if !ok {
		return combat.Creature{}, false
	}
	return c.Creatures[i], true
}

// Team builds a roster from six exact creature names.
func (c *Catalog) Team(names ...string) (combat.Roster, error) {
	if len(names) != combat.RosterSize {
		return combat.Roster{}, fmt.Errorf("%w: need %d names, got %d", combat.ErrInvalidRoster, combat.RosterSize, len(names))
	}
	members := make([]combat.Creature, len(names))
	for i, n := range names {
		cr, ok := c.Creature(n)
		if !ok {
			return combat.Roster{}, fmt.Errorf("%w: %q", ErrUnknownCreature, n)
		}
		members[i] = cr
	}
	return combat.NewRoster(members...)
}

// RandomTeam draws six distinct creatures.
func (c *Catalog) RandomTeam(rng combat.Rand) (combat.Roster, error) {
	if len(c.Creatures) < combat.RosterSize {
		return combat.Roster{}, fmt.Errorf("%w: catalog has %d creatures", combat.ErrInvalidRoster, len(c.Creatures))
	}
	return combat.NewRoster(sample(c.Creatures, combat.RosterSize, rng)...)
}
