package combat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAction   = errors.New("invalid action")
	ErrNoLegalAction   = errors.New("no legal action")
	ErrMatchOver       = errors.New("match is over")
	ErrInvalidCreature = errors.New("invalid creature")
	ErrInvalidRoster   = errors.New("invalid roster")
)

const (
	MaxMoves = 4
	MaxTypes = 2
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Rand is the randomness the engine draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type Category int

const (
	Physical Category = iota
	Special
	Status
)

func (c Category) String() string {
	switch c {
	case Special:
		return "Special"
	case Status:
		return "Status"
	default:
		return "Physical"
	}
}

// ParseCategory accepts the English and Italian spellings used by the
// move catalogs. Anything else is Physical.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "special", "speciale":
		return Special
	case "status", "stato":
		return Status
	default:
		return Physical
	}
}

type Move struct {
	Name     string
	Type     string
	Power    int
	Accuracy int
	Category Category
}

func (m Move) String() string {
	return fmt.Sprintf("%s (%s, %s)", m.Name, m.Type, m.Category)
}

type Stats struct {
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
}

// Creature is a plain value. Types and Moves are never written after
// construction so copies may share their backing arrays.
type Creature struct {
	ID    int
	Name  string
	Types []string
	MaxHP int
	HP    int
	Stats
	Moves []Move
}

func (c *Creature) Fainted() bool { return c.HP <= 0 }

func (c *Creature) HasType(t string) bool {
	for _, own := range c.Types {
		if own == t {
			return true
		}
	}
	return false
}

func (c *Creature) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
}

func (c *Creature) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP)
}

func (c *Creature) String() string {
	return fmt.Sprintf("%s (HP: %d/%d)", c.Name, c.HP, c.MaxHP)
}

// Validate checks the record against what the catalog provider promises.
func (c *Creature) Validate() error {
	if n := len(c.Types); n < 1 || n > MaxTypes {
		return fmt.Errorf("%w: %s has %d types", ErrInvalidCreature, c.Name, n)
	}
	if len(c.Moves) > MaxMoves {
		return fmt.Errorf("%w: %s has %d moves", ErrInvalidCreature, c.Name, len(c.Moves))
	}
	if c.MaxHP <= 0 || c.HP < 0 || c.HP > c.MaxHP {
		return fmt.Errorf("%w: %s hp %d/%d", ErrInvalidCreature, c.Name, c.HP, c.MaxHP)
	}
	if c.Attack <= 0 || c.Defense <= 0 || c.SpAttack <= 0 || c.SpDefense <= 0 || c.Speed <= 0 {
		return fmt.Errorf("%w: %s has a non-positive stat", ErrInvalidCreature, c.Name)
	}
	for _, m := range c.Moves {
		if m.Power < 0 || m.Accuracy < 0 || m.Accuracy > 100 {
			return fmt.Errorf("%w: %s move %s power=%d accuracy=%d",
				ErrInvalidCreature, c.Name, m.Name, m.Power, m.Accuracy)
		}
	}
	return nil
}
