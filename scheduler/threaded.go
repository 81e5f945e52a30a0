package scheduler

import (
	"context"
	"fmt"
	"sync"

	"ludo/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// TurnTaker plays one full turn for its seat on the board.
type TurnTaker interface {
	TakeTurn(b *game.Board)
}

// Threaded runs every seat on its own goroutine. A mutex guards the board and a condition
// variable wakes all seats after each turn; only the current seat proceeds.
type Threaded struct {
	board *game.Board

	mu      sync.Mutex
	cond    *sync.Cond
	aborted bool
	limited bool

	turnLimit int
	logger    zerolog.Logger
}

func NewThreaded(board *game.Board, opts ...Option) *Threaded {
	o := buildOptions(opts)
	th := &Threaded{
		board:     board,
		turnLimit: o.turnLimit,
		logger:    o.logger,
	}
	th.cond = sync.NewCond(&th.mu)
	return th
}

// Run blocks until the game is over, the turn limit is reached, a turn panics, or ctx is
// cancelled. A panicking turn stops every seat and is returned as an error.
func (th *Threaded) Run(ctx context.Context, players [game.NumSeats]TurnTaker) error {
	g, gctx := errgroup.WithContext(ctx)
	stop := context.AfterFunc(gctx, func() {
		th.abort()
	})
	defer stop()

	for _, seat := range game.Seats() {
		p := players[seat]
		g.Go(func() error {
			return th.play(seat, p)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if !th.board.GameOver() && !th.limited {
		return ctx.Err()
	}
	return nil
}

func (th *Threaded) play(seat game.Seat, p TurnTaker) error {
	th.mu.Lock()
	defer th.mu.Unlock()

	for {
		for th.board.Current() != seat && !th.board.GameOver() && !th.aborted {
			th.cond.Wait()
		}
		if th.board.GameOver() || th.aborted {
			th.logger.Debug().Stringer("seat", seat).Msg("seat done")
			return nil
		}
		if th.turnLimit > 0 && th.board.Turns() >= th.turnLimit {
			th.logger.Debug().Int("turns", th.board.Turns()).Msg("turn limit reached")
			th.limited = true
			th.aborted = true
			th.cond.Broadcast()
			return nil
		}

		if err := th.turn(p); err != nil {
			th.aborted = true
			th.cond.Broadcast()
			return fmt.Errorf("seat %s: %w", seat, err)
		}
		th.cond.Broadcast()
	}
}

func (th *Threaded) turn(p TurnTaker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("turn panicked: %v", r)
		}
	}()
	p.TakeTurn(th.board)
	return nil
}

func (th *Threaded) abort() {
	th.mu.Lock()
	th.aborted = true
	th.mu.Unlock()
	th.cond.Broadcast()
}

// LimitReached reports whether the run stopped because of the turn limit.
func (th *Threaded) LimitReached() bool {
	th.mu.Lock()
	defer th.mu.Unlock()
	return th.limited
}
