package ai

import (
	"fmt"
	"math/rand/v2"

	"duel_ai/internal/combat"
)

type fixedRand struct {
	roll int
	frac float64
}

func (f fixedRand) IntN(n int) int {
	if f.roll >= n {
		return n - 1
	}
	return f.roll
}

func (f fixedRand) Float64() float64 { return f.frac }

var sureHit = fixedRand{roll: 0, frac: 1.0}

func move(name, typ string, power int) combat.Move {
	return combat.Move{Name: name, Type: typ, Power: power, Accuracy: 100, Category: combat.Physical}
}

func mon(name string, types []string, hp, speed int, moves ...combat.Move) combat.Creature {
	return combat.Creature{
		Name:  name,
		Types: types,
		MaxHP: hp,
		HP:    hp,
		Stats: combat.Stats{Attack: 100, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: speed},
		Moves: moves,
	}
}

func down(name string) combat.Creature {
	c := mon(name, []string{"Normal"}, 10, 1, move("Tackle", "Normal", 40))
	c.HP = 0
	return c
}

func side(name string, members ...combat.Creature) combat.Side {
	var r combat.Roster
	for i := range r {
		if i < len(members) {
			r[i] = members[i]
			continue
		}
		r[i] = down("filler")
	}
	return combat.Side{Name: name, Roster: r}
}

var randomTypes = []string{"Normal", "Fire", "Water", "Grass", "Electric", "Rock", "Ghost", "Psychic"}

// randomSide builds a roster of n live members with varied stats, types
// and move sets.
func randomSide(rng *rand.Rand, name string, n int) combat.Side {
	members := make([]combat.Creature, n)
	for i := range members {
		moves := make([]combat.Move, 1+rng.IntN(4))
		for j := range moves {
			mv := move(fmt.Sprintf("m%d", j), randomTypes[rng.IntN(len(randomTypes))], 20+rng.IntN(100))
			mv.Accuracy = 70 + rng.IntN(31)
			if rng.IntN(2) == 0 {
				mv.Category = combat.Special
			}
			moves[j] = mv
		}
		hp := 60 + rng.IntN(120)
		c := mon(fmt.Sprintf("%s%d", name, i), []string{randomTypes[rng.IntN(len(randomTypes))]}, hp, 20+rng.IntN(100), moves...)
		c.HP = 1 + rng.IntN(hp)
		c.Attack, c.Defense = 50+rng.IntN(100), 50+rng.IntN(100)
		c.SpAttack, c.SpDefense = 50+rng.IntN(100), 50+rng.IntN(100)
		members[i] = c
	}
	return side(name, members...)
}
