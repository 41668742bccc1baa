package ai

import (
	"fmt"

	"duel_ai/internal/combat"
)

const (
	DefaultLowDamage    = 15
	DefaultSwitchMargin = 20
)

// Greedy takes the move with the highest sampled damage against the
// opposing active. When even that is weak it looks for a bench member that
// would hit much harder and switches to it.
type Greedy struct {
	Resolver     combat.DamageResolver
	Rng          combat.Rand
	LowDamage    int
	SwitchMargin int
}

func NewGreedy(resolver combat.DamageResolver, rng combat.Rand) *Greedy {
	return &Greedy{
		Resolver:     resolver,
		Rng:          rng,
		LowDamage:    DefaultLowDamage,
		SwitchMargin: DefaultSwitchMargin,
	}
}

func (g *Greedy) Choose(s combat.State, me combat.SideID) (combat.Action, error) {
	side := s.Side(me)
	active := side.ActiveCreature()
	target := s.Active(me.Other())

	bestMove, bestDmg := -1, -1
	if !active.Fainted() {
		for i, mv := range active.Moves {
			dmg := g.Resolver.Resolve(active, target, mv, g.Rng).Damage
			if dmg > bestDmg {
				bestMove, bestDmg = i, dmg
			}
		}
	}

	if bestDmg < g.LowDamage {
		benchSlot, benchDmg := -1, bestDmg
		for _, slot := range side.Bench() {
			member := &side.Roster[slot]
			for _, mv := range member.Moves {
				dmg := g.Resolver.Resolve(member, target, mv, g.Rng).Damage
				if dmg > benchDmg {
					benchSlot, benchDmg = slot, dmg
				}
			}
		}
		if benchSlot >= 0 && benchDmg > bestDmg+g.SwitchMargin {
			return combat.Switch(benchSlot), nil
		}
	}

	if bestMove < 0 {
		if bench := side.Bench(); len(bench) > 0 {
			return combat.Switch(bench[0]), nil
		}
		return combat.Action{}, fmt.Errorf("%w: side %s (%s)", combat.ErrNoLegalAction, me, active.Name)
	}
	return combat.Attack(bestMove), nil
}
