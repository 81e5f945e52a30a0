package scheduler

import (
	"ludo/coroutine"
	"ludo/game"
)

// Gate is the suspension point a seat's routine passes before every turn.
type Gate struct {
	sched *Scheduler
	seat  game.Seat
	board *game.Board
}

// Ready reports whether the seat may proceed without suspending: it is the seat's turn, or the
// game is over and the routine should wind down.
func (g Gate) Ready() bool {
	return g.board.Current() == g.seat || g.board.GameOver()
}

// Await returns immediately when the gate is ready. Otherwise the task is parked in the seat's
// slot and suspended until the scheduler resumes it. False means the task was released and must
// return. A seat on an extra turn is parked too once the turn limit is used up.
func (g Gate) Await(t *coroutine.Task) bool {
	if g.Ready() && !g.sched.exhausted() {
		return true
	}
	g.sched.RegisterWaiting(g.seat, t)
	return t.Suspend()
}

func (g Gate) Seat() game.Seat {
	return g.seat
}
