package game

import "fmt"

// entry is one half of a ring cell in the reverse index.
type entry struct {
	pawn Pawn
	set  bool
}

// occupancy indexes who stands on one ring cell. The resident is a pawn standing on its
// own seat's start cell and can never be captured there. Every other pawn is a visitor, and
// a cell holds at most one visitor because landing on a visitor captures it.
type occupancy struct {
	resident entry
	visitor  entry
}

func (o occupancy) count() int {
	n := 0
	if o.resident.set {
		n++
	}
	if o.visitor.set {
		n++
	}
	return n
}

// Board is the whole shared game state. It is owned by one game for its lifetime and is
// only mutated by the seat whose turn is running.
type Board struct {
	Rules Rules // The set of game rules to apply

	positions [NumSeats][PawnsPerSeat]int // Relative positions: [seat][slot]
	cells     [TrackSize]occupancy        // Reverse index: absolute cell -> occupants

	current   Seat
	gameOver  bool
	winner    Seat
	hasWinner bool

	lastRoll int
	turns    int
	moves    int
	captures [NumSeats]int // Captures made, by capturing seat
}

// NewBoard returns the opening layout: every seat has pawn 0 on its start cell and the
// other three pawns at home. Seat A plays first.
func NewBoard(rules Rules) *Board {
	var positions [NumSeats][PawnsPerSeat]int
	for s := range positions {
		for slot := range positions[s] {
			positions[s][slot] = Home
		}
		positions[s][0] = TrackStart
	}
	b, err := NewBoardFromPositions(rules, positions)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardFromPositions builds a board from arbitrary relative positions, rejecting layouts
// that the rules could never produce.
func NewBoardFromPositions(rules Rules, positions [NumSeats][PawnsPerSeat]int) (*Board, error) {
	if rules == nil {
		rules = NewStandardRules()
	}
	b := &Board{Rules: rules, positions: positions}
	cells, err := buildIndex(positions)
	if err != nil {
		return nil, err
	}
	b.cells = cells
	return b, nil
}

func buildIndex(positions [NumSeats][PawnsPerSeat]int) ([TrackSize]occupancy, error) {
	var cells [TrackSize]occupancy
	for _, seat := range Seats() {
		for slot, rel := range positions[seat] {
			if rel < Home || rel > GoalEnd {
				return cells, layoutError("pawn %s%d at %d is out of range", seat, slot, rel)
			}
			if rel == Home {
				continue
			}
			for other := slot + 1; other < PawnsPerSeat; other++ {
				if positions[seat][other] == rel {
					return cells, layoutError("pawns %s%d and %s%d share position %d", seat, slot, seat, other, rel)
				}
			}
			if !OnTrack(rel) {
				continue
			}
			p := Pawn{Seat: seat, Slot: slot}
			cell := absolute(seat, rel)
			if rel == TrackStart {
				cells[cell].resident = entry{pawn: p, set: true}
				continue
			}
			if cells[cell].visitor.set {
				return cells, layoutError("pawns %s and %s share cell %d", cells[cell].visitor.pawn, p, cell)
			}
			cells[cell].visitor = entry{pawn: p, set: true}
		}
	}
	return cells, nil
}

func absolute(seat Seat, rel int) int {
	return (seat.StartCell() + rel) % TrackSize
}

// Position returns the relative position of a pawn.
func (b *Board) Position(seat Seat, slot int) int {
	return b.positions[seat][slot]
}

// Positions returns a copy of every pawn's relative position.
func (b *Board) Positions() [NumSeats][PawnsPerSeat]int {
	return b.positions
}

// AbsolutePosition returns the ring cell of a pawn, or false when it is home or in goal.
func (b *Board) AbsolutePosition(seat Seat, slot int) (int, bool) {
	rel := b.positions[seat][slot]
	if !OnTrack(rel) {
		return -1, false
	}
	return absolute(seat, rel), true
}

// Occupants returns the pawns standing on a ring cell, resident first.
func (b *Board) Occupants(cell int) []Pawn {
	return occupantsOf(b.cells[cell])
}

// HasWon reports whether all of the seat's pawns are in its goal lane.
func (b *Board) HasWon(seat Seat) bool {
	for _, rel := range b.positions[seat] {
		if rel < GoalStart {
			return false
		}
	}
	return true
}

func (b *Board) Current() Seat {
	return b.current
}

// SetCurrent hands the turn to a seat. Used to set up positions.
func (b *Board) SetCurrent(seat Seat) {
	if !seat.Valid() {
		panic(fmt.Sprintf("invalid seat %d", int(seat)))
	}
	b.current = seat
}

// PassTurn moves the turn to the next seat in order.
func (b *Board) PassTurn() {
	b.current = b.current.Next()
}

func (b *Board) GameOver() bool {
	return b.gameOver
}

// EndGame marks the game over with the given winner.
func (b *Board) EndGame(winner Seat) {
	b.gameOver = true
	b.winner = winner
	b.hasWinner = true
}

// Winner returns the winning seat once the game is over.
func (b *Board) Winner() (Seat, bool) {
	return b.winner, b.hasWinner
}

// BeginTurn records the roll of the turn being played.
func (b *Board) BeginTurn(roll int) {
	b.lastRoll = roll
	b.turns++
}

func (b *Board) LastRoll() int {
	return b.lastRoll
}

// Turns counts rolls taken so far, extra turns included.
func (b *Board) Turns() int {
	return b.turns
}

// Moves counts pawn moves applied so far.
func (b *Board) Moves() int {
	return b.moves
}

// Captures counts the pawns the seat has sent home.
func (b *Board) Captures(seat Seat) int {
	return b.captures[seat]
}

// CheckIndex rebuilds the reverse cell index from pawn positions and compares it with the
// maintained one.
func (b *Board) CheckIndex() error {
	fresh, err := buildIndex(b.positions)
	if err != nil {
		return err
	}
	for cell := range fresh {
		if fresh[cell] != b.cells[cell] {
			return fmt.Errorf("index mismatch at cell %d: have %v, want %v",
				cell, b.Occupants(cell), occupantsOf(fresh[cell]))
		}
	}
	return nil
}

func occupantsOf(o occupancy) []Pawn {
	var pawns []Pawn
	if o.resident.set {
		pawns = append(pawns, o.resident.pawn)
	}
	if o.visitor.set {
		pawns = append(pawns, o.visitor.pawn)
	}
	return pawns
}
