package engine

import (
	"context"
	"errors"
	"fmt"

	"ludo/coroutine"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"
	"ludo/player"
	"ludo/policy"
	"ludo/scheduler"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

var (
	ErrTurnLimit = errors.New("turn limit reached")
	ErrAbandoned = errors.New("game abandoned")
)

type Engine struct {
	policies [game.NumSeats]policy.Policy
	dice     [game.NumSeats]game.Dice

	backend   Backend
	turnLimit int
	collector metrics.Collector
	clock     clock.Clock
	logger    zerolog.Logger
}

// New prepares one game between the given policies, seat A first.
func New(policies [game.NumSeats]policy.Policy, opts ...Option) *Engine {
	e := &Engine{
		policies:  policies,
		backend:   Cooperative,
		turnLimit: meta.MaxTurns,
		collector: metrics.NewDummyCollector(),
		clock:     clock.New(),
		logger:    zerolog.Nop(),
	}
	for _, seat := range game.Seats() {
		e.dice[seat] = game.NewStandardDice(meta.DiceSeeds[seat])
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run plays the game to the end. A game that stops without a winner is abandoned: every
// routine still alive is released, and the error says why.
func (e *Engine) Run() (Result, error) {
	return e.RunContext(context.Background())
}

// RunContext is Run with a context; only the threaded backend can be cancelled.
func (e *Engine) RunContext(ctx context.Context) (Result, error) {
	for seat, p := range e.policies {
		if p == nil {
			return Result{}, fmt.Errorf("seat %s has no policy", game.Seat(seat))
		}
	}

	id := uuid.New()
	logger := e.logger.With().Str("game", id.String()).Logger()
	b := game.NewBoard(game.NewStandardRules())

	var players [game.NumSeats]*player.Player
	for _, seat := range game.Seats() {
		players[seat] = player.New(seat, e.policies[seat], e.dice[seat], logger)
	}

	logger.Debug().Stringer("backend", e.backend).Msg("game start")
	start := e.clock.Now()
	var err error
	switch e.backend {
	case Cooperative:
		err = e.runCooperative(b, players, logger)
	case Threaded:
		err = e.runThreaded(ctx, b, players, logger)
	default:
		return Result{}, fmt.Errorf("unknown backend %d", int(e.backend))
	}

	res := newResult(id, e.backend, b, e.clock.Since(start))
	if res.HasWinner {
		logger.Debug().Stringer("winner", res.Winner).Int("turns", res.Turns).Msg("game over")
	} else {
		logger.Debug().Err(err).Int("turns", res.Turns).Msg("game abandoned")
	}
	e.collector.Record(res.Metric())
	return res, err
}

func (e *Engine) runCooperative(b *game.Board, players [game.NumSeats]*player.Player, logger zerolog.Logger) error {
	sched := scheduler.New(b,
		scheduler.WithTurnLimit(e.turnLimit),
		scheduler.WithLogger(logger))

	var tasks [game.NumSeats]*coroutine.Task
	for _, seat := range game.Seats() {
		tasks[seat] = sched.Spawn(seat, players[seat].Routine(sched, b))
	}
	sched.RunToCompletion()

	var faults error
	for seat, t := range tasks {
		if t.Err() != nil {
			faults = multierr.Append(faults, fmt.Errorf("seat %s: %w", game.Seat(seat), t.Err()))
		}
	}
	if b.GameOver() && faults == nil {
		return nil
	}

	abandon(tasks, logger)
	switch {
	case faults != nil:
		return fmt.Errorf("%w: %w", ErrAbandoned, faults)
	case sched.LimitReached():
		return ErrTurnLimit
	}
	return ErrAbandoned
}

// abandon releases every routine that has not finished, each exactly once.
func abandon(tasks [game.NumSeats]*coroutine.Task, logger zerolog.Logger) {
	for seat, t := range tasks {
		if t.Done() {
			continue
		}
		logger.Debug().Stringer("seat", game.Seat(seat)).Msg("release")
		t.Release()
	}
}

func (e *Engine) runThreaded(ctx context.Context, b *game.Board, players [game.NumSeats]*player.Player, logger zerolog.Logger) error {
	th := scheduler.NewThreaded(b,
		scheduler.WithTurnLimit(e.turnLimit),
		scheduler.WithLogger(logger))

	var takers [game.NumSeats]scheduler.TurnTaker
	for seat, p := range players {
		takers[seat] = p
	}
	if err := th.Run(ctx, takers); err != nil {
		return fmt.Errorf("%w: %w", ErrAbandoned, err)
	}
	if th.LimitReached() {
		return ErrTurnLimit
	}
	return nil
}
