package combat

import "fmt"

type ActionKind int

const (
	ActAttack ActionKind = iota
	ActSwitch
)

// Action is either Attack(move index) or Switch(roster slot).
type Action struct {
	Kind  ActionKind
	Index int
}

func Attack(move int) Action { return Action{Kind: ActAttack, Index: move} }
func Switch(slot int) Action { return Action{Kind: ActSwitch, Index: slot} }

func (a Action) String() string {
	switch a.Kind {
	case ActAttack:
		return fmt.Sprintf("attack(%d)", a.Index)
	case ActSwitch:
		return fmt.Sprintf("switch(%d)", a.Index)
	}
	return fmt.Sprintf("action(%d,%d)", a.Kind, a.Index)
}

// Validate reports ErrInvalidAction when a cannot be played by side id.
func (s *State) Validate(id SideID, a Action) error {
	side := s.Side(id)
	switch a.Kind {
	case ActAttack:
		active := side.ActiveCreature()
		if active.Fainted() {
			return fmt.Errorf("%w: side %s active %s is fainted", ErrInvalidAction, id, active.Name)
		}
		if a.Index < 0 || a.Index >= len(active.Moves) {
			return fmt.Errorf("%w: side %s move %d out of range [0,%d)", ErrInvalidAction, id, a.Index, len(active.Moves))
		}
		return nil
	case ActSwitch:
		if a.Index < 0 || a.Index >= RosterSize {
			return fmt.Errorf("%w: side %s slot %d out of range", ErrInvalidAction, id, a.Index)
		}
		if a.Index == side.Active {
			return fmt.Errorf("%w: side %s slot %d is already active", ErrInvalidAction, id, a.Index)
		}
		if side.Roster[a.Index].Fainted() {
			return fmt.Errorf("%w: side %s slot %d is fainted", ErrInvalidAction, id, a.Index)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %d", ErrInvalidAction, a.Kind)
}

// LegalActions lists attacks in move order, then switches in roster order.
func (s *State) LegalActions(id SideID) []Action {
	side := s.Side(id)
	var out []Action
	if active := side.ActiveCreature(); !active.Fainted() {
		for i := range active.Moves {
			out = append(out, Attack(i))
		}
	}
	for _, slot := range side.Bench() {
		out = append(out, Switch(slot))
	}
	return out
}
