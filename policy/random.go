package policy

import (
	"math/rand/v2"

	"ludo/game"
)

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed+1))}
}

func (r *Random) MakeMove(b *game.Board, seat game.Seat, roll int) bool {
	moves := b.LegalMoves(seat, roll)
	if len(moves) == 0 {
		return false
	}
	b.ApplyMove(seat, moves[r.rng.IntN(len(moves))], roll)
	return true
}
