package catalog

import "duel_ai/internal/combat"

const normalType = "Normal"

// MovePool hands out move sets. A creature may learn moves of its own
// types and Normal moves.
type MovePool struct {
	all    []combat.Move
	byType map[string][]combat.Move
}

func NewMovePool(moves []combat.Move) *MovePool {
	p := &MovePool{
		all:    moves,
		byType: map[string][]combat.Move{},
	}
	for _, m := range moves {
		p.byType[m.Type] = append(p.byType[m.Type], m)
	}
	return p
}

func (p *MovePool) Len() int { return len(p.all) }

// Candidates lists the learnable moves in catalog order.
func (p *MovePool) Candidates(types []string) []combat.Move {
	var out []combat.Move
	for _, m := range p.all {
		if m.Type == normalType || contains(types, m.Type) {
			out = append(out, m)
		}
	}
	return out
}

// Instantiate samples up to combat.MaxMoves distinct candidates. With fewer
// candidates the creature keeps all of them; every Normal move is already
// a candidate, so there is nothing left to fill with.
func (p *MovePool) Instantiate(types []string, rng combat.Rand) []combat.Move {
	cands := p.Candidates(types)
	if len(cands) <= combat.MaxMoves {
		return cands
	}
	return sample(cands, combat.MaxMoves, rng)
}

// sample draws k elements without replacement (partial Fisher-Yates).
func sample[T any](items []T, k int, rng combat.Rand) []T {
	pool := append([]T(nil), items...)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
