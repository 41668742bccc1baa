package combat

// TieBreak decides who attacks first on equal speed.
type TieBreak int

const (
	// TieBreakSideA always lets side A go first. Search relies on it.
	TieBreakSideA TieBreak = iota
	// TieBreakRandom flips a coin, as the live game does.
	TieBreakRandom
)

type Engine struct {
	Resolver DamageResolver
	TieBreak TieBreak
	Emit     func(Event)
}

func NewEngine(chart TypeChart, tb TieBreak) *Engine {
	return &Engine{Resolver: NewDamageResolver(chart), TieBreak: tb}
}

type pendingAttack struct {
	side SideID
	move Move
}

func (e *Engine) emit(turn int, typ string, payload map[string]any) {
	if e.Emit != nil {
		e.Emit(Event{Turn: turn, Type: typ, Payload: payload})
	}
}

// ApplyRound resolves one simultaneous round and returns the next state.
// The input state is left untouched.
func (e *Engine) ApplyRound(s State, a, b Action, rng Rand) (State, Outcome, error) {
	if s.Terminal() {
		return s, s.Outcome(), ErrMatchOver
	}
	actions := [2]Action{a, b}
	for id := SideA; id <= SideB; id++ {
		if err := s.Validate(id, actions[id]); err != nil {
			return s, Continue, err
		}
	}

	next := s
	next.Turn++
	turn := next.Turn

	// switches first, both at once
	var switched [2]bool
	for id := SideA; id <= SideB; id++ {
		act := actions[id]
		if act.Kind != ActSwitch {
			continue
		}
		side := next.Side(id)
		from := side.ActiveCreature().Name
		side.Active = act.Index
		switched[id] = true
		e.emit(turn, "Switch", map[string]any{
			"side": id.String(), "from": from, "to": side.ActiveCreature().Name, "index": act.Index,
		})
	}

	var order []pendingAttack
	for id := SideA; id <= SideB; id++ {
		act := actions[id]
		if switched[id] || act.Kind != ActAttack {
			continue
		}
		attacker := next.Active(id)
		if attacker.Fainted() {
			continue
		}
		order = append(order, pendingAttack{side: id, move: attacker.Moves[act.Index]})
	}
	if len(order) == 2 && e.secondGoesFirst(&next, order[0].side, order[1].side, rng) {
		order[0], order[1] = order[1], order[0]
	}

	for _, pa := range order {
		attacker := next.Active(pa.side)
		defender := next.Active(pa.side.Other())
		if attacker.Fainted() || defender.Fainted() {
			continue
		}
		res := e.Resolver.Resolve(attacker, defender, pa.move, rng)
		if res.Missed {
			e.emit(turn, "Miss", map[string]any{
				"side": pa.side.String(), "attacker": attacker.Name, "move": pa.move.Name,
			})
			continue
		}
		defender.TakeDamage(res.Damage)
		e.emit(turn, "Hit", map[string]any{
			"side": pa.side.String(), "attacker": attacker.Name, "target": defender.Name,
			"move": pa.move.Name, "type": pa.move.Type, "dmg": res.Damage,
			"effectiveness": res.Effectiveness, "hp": defender.HP, "max_hp": defender.MaxHP,
		})
		if defender.Fainted() {
			e.emit(turn, "Faint", map[string]any{
				"side": pa.side.Other().String(), "name": defender.Name,
			})
		}
	}

	// forced rotation after knockouts
	for id := SideA; id <= SideB; id++ {
		side := next.Side(id)
		prev := side.Active
		if !side.rotate() {
			continue
		}
		if side.Active != prev {
			e.emit(turn, "AutoSwitch", map[string]any{
				"side": id.String(), "to": side.ActiveCreature().Name, "index": side.Active,
			})
		}
	}

	out := next.Outcome()
	if out != Continue {
		e.emit(turn, "End", map[string]any{"outcome": out.String()})
	}
	return next, out, nil
}

func (e *Engine) secondGoesFirst(s *State, first, second SideID, rng Rand) bool {
	sf, ss := s.Active(first).Speed, s.Active(second).Speed
	switch {
	case ss > sf:
		return true
	case ss < sf:
		return false
	}
	if e.TieBreak == TieBreakRandom {
		return rng.IntN(2) == 1
	}
	return first != SideA
}
