package report

type PlayerSummary struct {
	Wins          int     `json:"wins"`
	WinRate       float64 `json:"win_rate"`
	AvgDecisionS  float64 `json:"avg_decision_s"`
	Switches      int     `json:"switches"`
	Misses        int     `json:"misses"`
	decisionTotal float64
	sides         int
}

type ScenarioSummary struct {
	Name     string         `json:"name"`
	Games    int            `json:"games"`
	Wins     map[string]int `json:"wins"`
	Draws    int            `json:"draws"`
	AvgTurns float64        `json:"avg_turns"`
}

type Summary struct {
	Games     int                       `json:"games"`
	Draws     int                       `json:"draws"`
	Stalled   int                       `json:"stalled"`
	AvgTurns  float64                   `json:"avg_turns"`
	Players   map[string]*PlayerSummary `json:"players"`
	Scenarios []*ScenarioSummary        `json:"scenarios"`
}

// Summarize aggregates records. Scenarios keep the order in which they
// first appear.
func Summarize(records []Record) Summary {
	s := Summary{Players: map[string]*PlayerSummary{}}
	byName := map[string]*ScenarioSummary{}
	turns := 0
	for _, r := range records {
		s.Games++
		turns += r.Turns
		if r.Stalled {
			s.Stalled++
		}

		sc := byName[r.Scenario]
		if sc == nil {
			sc = &ScenarioSummary{Name: r.Scenario, Wins: map[string]int{}}
			byName[r.Scenario] = sc
			s.Scenarios = append(s.Scenarios, sc)
		}
		sc.Games++
		sc.AvgTurns += float64(r.Turns)

		for _, side := range r.Sides {
			p := s.player(side.Player)
			p.decisionTotal += side.AvgDecision.Seconds()
			p.sides++
			p.Switches += side.Switches
			p.Misses += side.Misses
		}
		if r.Winner == DrawLabel {
			s.Draws++
			sc.Draws++
			continue
		}
		s.player(r.Winner).Wins++
		sc.Wins[r.Winner]++
	}

	if s.Games > 0 {
		s.AvgTurns = float64(turns) / float64(s.Games)
		for _, p := range s.Players {
			p.WinRate = float64(p.Wins) / float64(s.Games)
			if p.sides > 0 {
				p.AvgDecisionS = p.decisionTotal / float64(p.sides)
			}
		}
	}
	for _, sc := range s.Scenarios {
		sc.AvgTurns /= float64(sc.Games)
	}
	return s
}

func (s *Summary) player(name string) *PlayerSummary {
	p := s.Players[name]
	if p == nil {
		p = &PlayerSummary{}
		s.Players[name] = p
	}
	return p
}
