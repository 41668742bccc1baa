package combat

import "math"

const DefaultLevel = 50

type AttackResult struct {
	Damage        int
	Effectiveness float64
	Missed        bool
}

type DamageResolver struct {
	Chart TypeChart
	Level int
}

func NewDamageResolver(chart TypeChart) DamageResolver {
	if chart == nil {
		chart = StandardChart()
	}
	return DamageResolver{Chart: chart, Level: DefaultLevel}
}

// Resolve rolls accuracy first; a miss consumes the action and deals nothing.
func (r DamageResolver) Resolve(attacker, defender *Creature, mv Move, rng Rand) AttackResult {
	if rng.IntN(100)+1 > mv.Accuracy {
		return AttackResult{Missed: true}
	}

	atk, def := attacker.Attack, defender.Defense
	if mv.Category == Special {
		atk, def = attacker.SpAttack, defender.SpDefense
	}
	if def <= 0 {
		def = 1
	}

	stab := 1.0
	if attacker.HasType(mv.Type) {
		stab = 1.5
	}
	eff := r.Chart.Effectiveness(mv.Type, defender.Types)
	factor := 0.85 + 0.15*rng.Float64()

	level := r.Level
	if level <= 0 {
		level = DefaultLevel
	}
	base := (2*float64(level)/5+2)*float64(mv.Power)*(float64(atk)/float64(def))/50 + 2
	dmg := math.Floor(base * stab * eff * factor)
	if dmg < 0 {
		dmg = 0
	}
	return AttackResult{Damage: int(dmg), Effectiveness: eff}
}
