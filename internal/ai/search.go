package ai

import (
	"fmt"
	"math"
	"math/rand/v2"

	"duel_ai/internal/combat"
	"duel_ai/internal/util"
)

const DefaultDepth = 2

// Search is a depth-limited maximin over joint actions. One ply is a full
// round: for each of our actions the opponent's reply that hurts us most is
// assumed, and the action with the best such worst case wins.
type Search struct {
	Depth int
	// Exhaustive turns off alpha-beta cutoffs.
	Exhaustive bool

	engine combat.Engine
	seeds  *rand.Rand
}

type Candidate struct {
	Action combat.Action
	// Worst is exact for any candidate that improved on the ones before it;
	// with pruning on, the others only carry an upper bound.
	Worst float64
}

type Decision struct {
	Action     combat.Action
	Score      float64
	Candidates []Candidate
	Nodes      int
}

func NewSearch(resolver combat.DamageResolver, depth int, seed int64) *Search {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Search{
		Depth:  depth,
		engine: combat.Engine{Resolver: resolver, TieBreak: combat.TieBreakSideA},
		seeds:  util.New(seed),
	}
}

func (s *Search) Choose(st combat.State, me combat.SideID) (combat.Action, error) {
	d, err := s.Decide(st, me)
	return d.Action, err
}

// Decide runs the search and reports how every root candidate fared.
// Every simulated round draws from a stream derived from one root seed and
// the action indices along its path, so the result does not depend on
// which branches were cut.
func (s *Search) Decide(st combat.State, me combat.SideID) (Decision, error) {
	if st.Terminal() {
		return Decision{}, combat.ErrMatchOver
	}
	depth := s.Depth
	if depth < 1 {
		depth = 1
	}
	w := &walker{engine: &s.engine, me: me, prune: !s.Exhaustive}
	root := s.seeds.Uint64()

	dec := Decision{}
	score, err := w.maximin(&st, root, depth, math.Inf(-1), math.Inf(1), func(i int, a combat.Action, worst float64) {
		dec.Candidates = append(dec.Candidates, Candidate{Action: a, Worst: worst})
		if i == 0 || worst > dec.Score {
			dec.Action, dec.Score = a, worst
		}
	})
	dec.Nodes = w.nodes
	if err != nil {
		return dec, err
	}
	dec.Score = score
	return dec, nil
}

type walker struct {
	engine *combat.Engine
	me     combat.SideID
	prune  bool
	nodes  int
}

func (w *walker) value(st *combat.State, seed uint64, depth int, alpha, beta float64) (float64, error) {
	if depth == 0 || st.Terminal() {
		return Evaluate(st, w.me), nil
	}
	return w.maximin(st, seed, depth, alpha, beta, nil)
}

func (w *walker) maximin(st *combat.State, seed uint64, depth int, alpha, beta float64, visit func(int, combat.Action, float64)) (float64, error) {
	mine := st.LegalActions(w.me)
	if len(mine) == 0 {
		return 0, fmt.Errorf("%w: side %s", combat.ErrNoLegalAction, w.me)
	}
	theirs := st.LegalActions(w.me.Other())
	if len(theirs) == 0 {
		return 0, fmt.Errorf("%w: side %s", combat.ErrNoLegalAction, w.me.Other())
	}

	best := math.Inf(-1)
	for i, a := range mine {
		worst := math.Inf(1)
		for j, b := range theirs {
			v, err := w.step(st, a, b, util.Derive(seed, i, j), depth-1, alpha, beta)
			if err != nil {
				return 0, err
			}
			if v < worst {
				worst = v
			}
			if w.prune && worst <= alpha {
				break
			}
		}
		if visit != nil {
			visit(i, a, worst)
		}
		if worst > best {
			best = worst
		}
		if best > alpha {
			alpha = best
		}
		if w.prune && alpha >= beta {
			break
		}
	}
	return best, nil
}

func (w *walker) step(st *combat.State, mine, theirs combat.Action, seed uint64, depth int, alpha, beta float64) (float64, error) {
	a, b := mine, theirs
	if w.me == combat.SideB {
		a, b = theirs, mine
	}
	next, _, err := w.engine.ApplyRound(*st, a, b, util.Stream(seed))
	if err != nil {
		return 0, err
	}
	w.nodes++
	return w.value(&next, seed, depth, alpha, beta)
}
