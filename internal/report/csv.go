package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var header = []string{
	"game_id", "scenario", "winner", "turns", "stalled",
	"side_a", "side_a_avg_time_s", "side_a_switches", "side_a_misses",
	"side_b", "side_b_avg_time_s", "side_b_switches", "side_b_misses",
}

func WriteCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func Write(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.GameID),
			r.Scenario,
			r.Winner,
			strconv.Itoa(r.Turns),
			strconv.FormatBool(r.Stalled),
		}
		for _, s := range r.Sides {
			row = append(row,
				s.Player,
				strconv.FormatFloat(s.AvgDecision.Seconds(), 'f', 5, 64),
				strconv.Itoa(s.Switches),
				strconv.Itoa(s.Misses),
			)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("game %d: %w", r.GameID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
