package combat

type SideID int

const (
	SideA SideID = iota
	SideB
)

func (id SideID) Other() SideID { return 1 - id }

func (id SideID) String() string {
	if id == SideB {
		return "B"
	}
	return "A"
}

type Outcome int

const (
	Continue Outcome = iota
	SideAWins
	SideBWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case SideAWins:
		return "side_a_wins"
	case SideBWins:
		return "side_b_wins"
	case Draw:
		return "draw"
	default:
		return "continue"
	}
}

// Winner reports the winning side for decisive outcomes.
func (o Outcome) Winner() (SideID, bool) {
	switch o {
	case SideAWins:
		return SideA, true
	case SideBWins:
		return SideB, true
	}
	return 0, false
}

// State is the whole battle as a value: assigning it clones it.
type State struct {
	Sides [2]Side
	Turn  int
}

func NewState(a, b Side) State {
	s := State{Sides: [2]Side{a, b}}
	for i := range s.Sides {
		s.Sides[i].rotate()
	}
	return s
}

func (s *State) Side(id SideID) *Side       { return &s.Sides[id] }
func (s *State) Active(id SideID) *Creature { return s.Sides[id].ActiveCreature() }
func (s *State) Wiped(id SideID) bool       { return s.Sides[id].Roster.AllFainted() }
func (s *State) Terminal() bool             { return s.Wiped(SideA) || s.Wiped(SideB) }
func (s *State) Clone() State               { return *s }

func (s *State) Outcome() Outcome {
	a, b := s.Wiped(SideA), s.Wiped(SideB)
	switch {
	case a && b:
		return Draw
	case a:
		return SideBWins
	case b:
		return SideAWins
	}
	return Continue
}
