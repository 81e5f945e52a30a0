package player

import (
	"fmt"

	"ludo/coroutine"
	"ludo/game"
	"ludo/policy"
	"ludo/scheduler"

	"github.com/rs/zerolog"
)

// Player is one seat at the table: a move policy and its own dice.
type Player struct {
	Seat   game.Seat
	Policy policy.Policy
	Dice   game.Dice

	logger zerolog.Logger
}

func New(seat game.Seat, p policy.Policy, dice game.Dice, logger zerolog.Logger) *Player {
	return &Player{
		Seat:   seat,
		Policy: p,
		Dice:   dice,
		logger: logger.With().Stringer("seat", seat).Logger(),
	}
}

// TakeTurn plays one turn: roll, let the policy move, check for a win, and pass the turn
// unless the roll grants another one and the game goes on. A roll that grants another turn
// does so even when no pawn could move.
func (p *Player) TakeTurn(b *game.Board) {
	if b.Current() != p.Seat {
		panic(fmt.Sprintf("seat %s played out of turn, current is %s", p.Seat, b.Current()))
	}

	roll := p.Dice.Roll()
	b.BeginTurn(roll)

	captures := b.Captures(p.Seat)
	moved := p.Policy.MakeMove(b, p.Seat, roll)
	p.logger.Debug().
		Int("turn", b.Turns()).
		Int("roll", roll).
		Bool("moved", moved).
		Msg("turn")
	if b.Captures(p.Seat) > captures {
		p.logger.Debug().Int("turn", b.Turns()).Msg("capture")
	}

	if b.HasWon(p.Seat) {
		b.EndGame(p.Seat)
		p.logger.Debug().Int("turns", b.Turns()).Msg("won")
	}

	if b.Rules.GrantsExtraTurn(roll) && !b.GameOver() {
		return
	}
	b.PassTurn()
}

// Routine returns the body of the seat's cooperative task: wait at the gate, play, report the
// turn, repeat until the game is over or the task is released.
func (p *Player) Routine(sched *scheduler.Scheduler, b *game.Board) func(*coroutine.Task) {
	gate := sched.WaitForTurn(p.Seat)
	return func(t *coroutine.Task) {
		for {
			if !gate.Await(t) {
				p.logger.Debug().Msg("released")
				return
			}
			if b.GameOver() {
				return
			}
			p.TakeTurn(b)
			sched.NotifyTurnComplete()
		}
	}
}
