package combat

// fixedRand pins every roll: IntN returns roll (capped below n) and
// Float64 returns frac. roll 0 with frac 1 is a guaranteed hit with the
// top random factor.
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

func move(name, typ string, power int, cat Category) Move {
	return Move{Name: name, Type: typ, Power: power, Accuracy: 100, Category: cat}
}

func mon(name string, types []string, hp, speed int, moves ...Move) Creature {
	return Creature{
		Name:  name,
		Types: types,
		MaxHP: hp,
		HP:    hp,
		Stats: Stats{Attack: 100, Defense: 100, SpAttack: 100, SpDefense: 100, Speed: speed},
		Moves: moves,
	}
}

func fainted(name string) Creature {
	c := mon(name, []string{"Normal"}, 10, 1, move("Tackle", "Normal", 40, Physical))
	c.HP = 0
	return c
}

// side puts members first and pads the roster with fainted fillers.
func side(name string, members ...Creature) Side {
	var r Roster
	for i := range r {
		if i < len(members) {
			r[i] = members[i]
			continue
		}
		r[i] = fainted("filler")
	}
	return Side{Name: name, Roster: r}
}
