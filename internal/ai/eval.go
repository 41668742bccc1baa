package ai

import "duel_ai/internal/combat"

const (
	WinScore  = 100000.0
	LossScore = -100000.0

	aliveBonus = 50.0
)

// Evaluate scores s from me's point of view. An opponent wipe is checked
// first so a double knockout counts as a win.
func Evaluate(s *combat.State, me combat.SideID) float64 {
	if s.Wiped(me.Other()) {
		return WinScore
	}
	if s.Wiped(me) {
		return LossScore
	}
	return sideValue(&s.Sides[me]) - sideValue(&s.Sides[me.Other()])
}

func sideValue(side *combat.Side) float64 {
	v := 0.0
	for i := range side.Roster {
		c := &side.Roster[i]
		if c.Fainted() {
			continue
		}
		v += c.HPFraction()*100 + aliveBonus
	}
	return v
}
