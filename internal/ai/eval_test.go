package ai

import (
	"testing"

	"duel_ai/internal/combat"
)

func TestEvaluate(t *testing.T) {
	full := mon("Full", []string{"Water"}, 100, 10, move("Tackle", "Normal", 40))
	half := full
	half.HP = 50

	cases := []struct {
		name string
		a, b combat.Side
		want float64
	}{
		{"opponent wiped", side("A", full), side("B"), WinScore},
		{"own side wiped", side("A"), side("B", full), LossScore},
		{"double wipe favours us", side("A"), side("B"), WinScore},
		{"full vs half", side("A", full), side("B", half), 150 - 100},
		{"headcount counts", side("A", half, half), side("B", full), 200 - 150},
	}
	for _, tc := range cases {
		st := combat.NewState(tc.a, tc.b)
		if got := Evaluate(&st, combat.SideA); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateIsSymmetric(t *testing.T) {
	full := mon("Full", []string{"Water"}, 100, 10, move("Tackle", "Normal", 40))
	half := full
	half.HP = 25
	st := combat.NewState(side("A", full, half), side("B", half))
	if a, b := Evaluate(&st, combat.SideA), Evaluate(&st, combat.SideB); a != -b {
		t.Fatalf("scores not mirrored: %v vs %v", a, b)
	}
}
