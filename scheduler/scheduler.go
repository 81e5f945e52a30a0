package scheduler

import (
	"ludo/coroutine"
	"ludo/game"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog"
)

// Scheduler decides which suspended routine runs next, using only the shared board: the
// current seat's routine, or every routine once the game is over.
//
// Resumption is trampolined. A ResumeCurrent issued while a routine is running (or being
// spawned) is queued and picked up by the outermost call once the running routine has
// suspended, so a whole game runs at constant stack depth.
type Scheduler struct {
	board *game.Board
	slots [game.NumSeats]*coroutine.Task

	pending  deque.Deque[game.Seat] // seat that was current when the request was made
	draining bool

	depth    int
	maxDepth int
	resumes  int
	limited  bool

	turnLimit int
	logger    zerolog.Logger
}

func New(board *game.Board, opts ...Option) *Scheduler {
	o := buildOptions(opts)
	return &Scheduler{
		board:     board,
		turnLimit: o.turnLimit,
		logger:    o.logger,
	}
}

// RegisterWaiting parks a task in the seat's slot, replacing whatever was there.
func (s *Scheduler) RegisterWaiting(seat game.Seat, t *coroutine.Task) {
	s.slots[seat] = t
}

// Waiting returns the task parked for a seat, if any.
func (s *Scheduler) Waiting(seat game.Seat) *coroutine.Task {
	return s.slots[seat]
}

// WaitForTurn returns the gate of a seat.
func (s *Scheduler) WaitForTurn(seat game.Seat) Gate {
	return Gate{sched: s, seat: seat, board: s.board}
}

// Spawn starts a seat's routine. The routine runs eagerly up to its first suspension; any
// notification it raises meanwhile is queued for RunToCompletion.
func (s *Scheduler) Spawn(seat game.Seat, body func(*coroutine.Task)) *coroutine.Task {
	outer := s.draining
	s.draining = true
	s.enter()
	s.logger.Debug().Stringer("seat", seat).Msg("spawn")
	t := coroutine.NewTask(body)
	s.leave()
	s.draining = outer
	return t
}

// ResumeCurrent resumes the current seat's parked routine, or every parked routine once the
// game is over. Called from inside a running routine it only queues the request.
func (s *Scheduler) ResumeCurrent() {
	s.pending.PushBack(s.board.Current())
	if s.draining {
		return
	}
	s.draining = true
	defer func() { s.draining = false }()
	for s.pending.Len() > 0 {
		from := s.pending.PopFront()
		s.resumeOnce(from)
	}
}

// NotifyTurnComplete is called by a routine after each turn it played.
func (s *Scheduler) NotifyTurnComplete() {
	s.ResumeCurrent()
}

// RunToCompletion drives the game until it is over, the turn limit is hit, or no routine is
// left to resume.
func (s *Scheduler) RunToCompletion() {
	s.ResumeCurrent()
}

func (s *Scheduler) resumeOnce(from game.Seat) {
	if s.board.GameOver() {
		for _, seat := range game.Seats() {
			t := s.slots[seat]
			if t == nil || t.Done() {
				continue
			}
			s.slots[seat] = nil
			s.logger.Debug().Stringer("seat", seat).Msg("resume after game over")
			s.resume(t)
		}
		return
	}

	if s.exhausted() {
		return
	}

	seat := s.board.Current()
	t := s.slots[seat]
	if t == nil || t.Done() {
		return
	}
	s.slots[seat] = nil
	s.logger.Debug().
		Stringer("seat", seat).
		Stringer("after", from).
		Int("turn", s.board.Turns()+1).
		Msg("resume")
	s.resume(t)
}

// exhausted reports whether the turn limit is used up. It never holds once the game is over.
func (s *Scheduler) exhausted() bool {
	if s.turnLimit <= 0 || s.board.GameOver() || s.board.Turns() < s.turnLimit {
		return false
	}
	if !s.limited {
		s.logger.Debug().Int("turns", s.board.Turns()).Msg("turn limit reached")
	}
	s.limited = true
	return true
}

func (s *Scheduler) resume(t *coroutine.Task) {
	s.enter()
	t.Resume()
	s.leave()
	s.resumes++
}

func (s *Scheduler) enter() {
	s.depth++
	if s.depth > s.maxDepth {
		s.maxDepth = s.depth
	}
}

func (s *Scheduler) leave() {
	s.depth--
}

// MaxDepth is the deepest nesting of routine executions seen so far.
func (s *Scheduler) MaxDepth() int {
	return s.maxDepth
}

// Resumes counts routine resumptions, spawns excluded.
func (s *Scheduler) Resumes() int {
	return s.resumes
}

// LimitReached reports whether the scheduler stopped because of the turn limit.
func (s *Scheduler) LimitReached() bool {
	return s.limited
}
