package policy

import (
	"ludo/coroutine"
	"ludo/game"

	"golang.org/x/exp/slices"
)

// Cycling tries pawns in rotating order: each call starts one slot further than the last and
// moves the first pawn that has a legal move.
type Cycling struct {
	order *coroutine.Generator[int]
}

func NewCycling() *Cycling {
	order := coroutine.NewGenerator(coroutine.Cycle(game.PawnsPerSeat))
	order.Next()
	return &Cycling{order: order}
}

func (c *Cycling) MakeMove(b *game.Board, seat game.Seat, roll int) bool {
	start := c.order.Value()
	c.order.Next()

	moves := b.LegalMoves(seat, roll)
	if len(moves) == 0 {
		return false
	}
	for offset := 0; offset < game.PawnsPerSeat; offset++ {
		slot := (start + offset) % game.PawnsPerSeat
		if slices.Contains(moves, slot) {
			b.ApplyMove(seat, slot, roll)
			return true
		}
	}
	return false
}

func (c *Cycling) Close() error {
	return c.order.Close()
}
