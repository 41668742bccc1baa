package combat

import "fmt"

const RosterSize = 6

type Roster [RosterSize]Creature

func NewRoster(members ...Creature) (Roster, error) {
	var r Roster
	if len(members) != RosterSize {
		return r, fmt.Errorf("%w: need %d members, got %d", ErrInvalidRoster, RosterSize, len(members))
	}
	for i := range members {
		if err := members[i].Validate(); err != nil {
			return r, fmt.Errorf("%w: slot %d: %w", ErrInvalidRoster, i, err)
		}
		r[i] = members[i]
	}
	return r, nil
}

func (r *Roster) AllFainted() bool {
	for i := range r {
		if !r[i].Fainted() {
			return false
		}
	}
	return true
}

func (r *Roster) Alive() int {
	n := 0
	for i := range r {
		if !r[i].Fainted() {
			n++
		}
	}
	return n
}

// FirstAlive returns the first non-fainted slot in roster order, or -1.
func (r *Roster) FirstAlive() int {
	for i := range r {
		if !r[i].Fainted() {
			return i
		}
	}
	return -1
}

type Side struct {
	Name   string
	Roster Roster
	Active int
}

func (s *Side) ActiveCreature() *Creature { return &s.Roster[s.Active] }

func (s *Side) CanSwitchTo(i int) bool {
	return i >= 0 && i < RosterSize && i != s.Active && !s.Roster[i].Fainted()
}

// Bench lists the slots a switch may target, in roster order.
func (s *Side) Bench() []int {
	var out []int
	for i := range s.Roster {
		if s.CanSwitchTo(i) {
			out = append(out, i)
		}
	}
	return out
}

// rotate replaces a fainted active with the first survivor. It reports
// false when the whole roster is down.
func (s *Side) rotate() bool {
	if !s.ActiveCreature().Fainted() {
		return true
	}
	next := s.Roster.FirstAlive()
	if next < 0 {
		return false
	}
	s.Active = next
	return true
}
