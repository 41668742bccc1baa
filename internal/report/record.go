package report

import (
	"time"

	"duel_ai/internal/combat"
)

const DrawLabel = "Draw"

type SideRecord struct {
	Player      string
	AvgDecision time.Duration
	Switches    int
	Misses      int
}

// Record is one row of the batch report.
type Record struct {
	GameID   int
	Scenario string
	Winner   string
	Turns    int
	Stalled  bool
	Sides    [2]SideRecord
}

func FromMatch(gameID int, scenario string, res combat.MatchResult) Record {
	r := Record{
		GameID:   gameID,
		Scenario: scenario,
		Winner:   res.Winner,
		Turns:    res.Turns,
		Stalled:  res.Stalled,
	}
	if r.Winner == "" {
		r.Winner = DrawLabel
	}
	for i, s := range res.Sides {
		r.Sides[i] = SideRecord{
			Player:      s.Name,
			AvgDecision: s.AvgDecision(),
			Switches:    s.Switches,
			Misses:      s.Misses,
		}
	}
	return r
}
