package engine

import (
	"fmt"
	"strings"

	"ludo/experiments/metrics"
	"ludo/game"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

type Backend int

const (
	Cooperative Backend = iota // Suspendable routines driven by the turn scheduler
	Threaded                   // One goroutine per seat
)

func (b Backend) String() string {
	switch b {
	case Cooperative:
		return "cooperative"
	case Threaded:
		return "threaded"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend reports false for names it does not know.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cooperative", "":
		return Cooperative, true
	case "threaded":
		return Threaded, true
	}
	return 0, false
}

type Option func(*Engine)

func WithBackend(b Backend) Option {
	return func(e *Engine) {
		e.backend = b
	}
}

// WithSeeds seeds every seat's standard dice.
func WithSeeds(seeds [game.NumSeats]uint64) Option {
	return func(e *Engine) {
		for seat, seed := range seeds {
			e.dice[seat] = game.NewStandardDice(seed)
		}
	}
}

// WithDice replaces the seats' dice altogether.
func WithDice(dice [game.NumSeats]game.Dice) Option {
	return func(e *Engine) {
		e.dice = dice
	}
}

// WithTurnLimit abandons games still running after n turns. Zero disables the limit.
func WithTurnLimit(n int) Option {
	return func(e *Engine) {
		e.turnLimit = n
	}
}

func WithCollector(c metrics.Collector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

func WithClock(c clock.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}
