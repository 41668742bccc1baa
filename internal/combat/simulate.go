package combat

import (
	"encoding/json"
	"fmt"
	"time"
)

const DefaultMaxTurns = 150

// Policy picks the next action for side me.
type Policy interface {
	Choose(s State, me SideID) (Action, error)
}

type Player struct {
	Name   string
	Policy Policy
}

type Env struct {
	Engine   Engine
	Rng      Rand
	MaxTurns int
}

type SideStats struct {
	Name         string        `json:"name"`
	Switches     int           `json:"switches"`
	Misses       int           `json:"misses"`
	Hits         int           `json:"hits"`
	DamageDealt  int           `json:"damage_dealt"`
	Survivors    int           `json:"survivors"`
	DecisionTime time.Duration `json:"decision_time_ns"`
	Decisions    int           `json:"decisions"`
}

func (s SideStats) AvgDecision() time.Duration {
	if s.Decisions == 0 {
		return 0
	}
	return s.DecisionTime / time.Duration(s.Decisions)
}

type MatchResult struct {
	Outcome  Outcome      `json:"-"`
	Result   string       `json:"result"`
	Winner   string       `json:"winner,omitempty"`
	Turns    int          `json:"turns"`
	Stalled  bool         `json:"stalled,omitempty"`
	Sides    [2]SideStats `json:"sides"`
	Events   []Event      `json:"events,omitempty"`
	Final    State        `json:"-"`
	Duration float64      `json:"duration_s"`
}

// RunMatch plays st to the end. Exceeding env.MaxTurns ends the match as a
// draw.
func RunMatch(env *Env, st State, players [2]Player, record bool) (MatchResult, error) {
	var events []Event
	res := MatchResult{}
	for id := range players {
		res.Sides[id].Name = players[id].Name
	}

	eng := env.Engine
	eng.Emit = func(ev Event) {
		if record {
			events = append(events, ev)
		}
		side := SideA
		if s, _ := ev.Payload["side"].(string); s == SideB.String() {
			side = SideB
		}
		switch ev.Type {
		case "Switch":
			res.Sides[side].Switches++
		case "Miss":
			res.Sides[side].Misses++
		case "Hit":
			res.Sides[side].Hits++
			if d, ok := ev.Payload["dmg"].(int); ok {
				res.Sides[side].DamageDealt += d
			}
		}
	}

	maxTurns := env.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	started := time.Now()
	out := st.Outcome()
	for out == Continue {
		if st.Turn >= maxTurns {
			out = Draw
			res.Stalled = true
			break
		}
		var actions [2]Action
		for id := SideA; id <= SideB; id++ {
			t0 := time.Now()
			act, err := players[id].Policy.Choose(st, id)
			res.Sides[id].DecisionTime += time.Since(t0)
			res.Sides[id].Decisions++
			if err != nil {
				return res, fmt.Errorf("turn %d side %s (%s): %w", st.Turn+1, id, players[id].Name, err)
			}
			actions[id] = act
		}
		next, o, err := eng.ApplyRound(st, actions[SideA], actions[SideB], env.Rng)
		if err != nil {
			return res, fmt.Errorf("turn %d: %w", st.Turn+1, err)
		}
		st, out = next, o
	}

	res.Outcome = out
	res.Result = out.String()
	if w, ok := out.Winner(); ok {
		res.Winner = players[w].Name
	}
	res.Turns = st.Turn
	for id := SideA; id <= SideB; id++ {
		res.Sides[id].Survivors = st.Sides[id].Roster.Alive()
	}
	res.Final = st
	res.Duration = time.Since(started).Seconds()
	if record {
		res.Events = events
	}
	return res, nil
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
