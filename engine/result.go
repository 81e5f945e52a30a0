package engine

import (
	"time"

	"ludo/experiments/metrics"
	"ludo/game"

	"github.com/google/uuid"
)

type Result struct {
	GameID    uuid.UUID
	Backend   Backend
	Winner    game.Seat
	HasWinner bool
	Turns     int
	Moves     int
	Captures  [game.NumSeats]int
	Duration  time.Duration
	Snapshot  game.Snapshot // Final board
}

func newResult(id uuid.UUID, backend Backend, b *game.Board, d time.Duration) Result {
	res := Result{
		GameID:   id,
		Backend:  backend,
		Turns:    b.Turns(),
		Moves:    b.Moves(),
		Duration: d,
		Snapshot: b.Snapshot(),
	}
	res.Winner, res.HasWinner = b.Winner()
	for _, seat := range game.Seats() {
		res.Captures[seat] = b.Captures(seat)
	}
	return res
}

func (r Result) Metric() metrics.GameMetric {
	m := metrics.GameMetric{
		ID:        r.GameID.String(),
		Backend:   r.Backend.String(),
		Turns:     r.Turns,
		Moves:     r.Moves,
		Captures:  r.Captures,
		Duration:  r.Duration,
		Abandoned: !r.HasWinner,
	}
	if r.HasWinner {
		m.Winner = r.Winner.String()
	}
	return m
}
