package game

import (
	"errors"
	"fmt"
)

var ErrInvalidLayout = errors.New("invalid board layout")

// IllegalMoveError reports a move that was not offered by LegalMoves.
type IllegalMoveError struct {
	Seat     Seat
	Slot     int
	Roll     int
	Position int
}

func NewIllegalMoveError(b *Board, seat Seat, slot, roll int) error {
	pos := Home
	if seat.Valid() && slot >= 0 && slot < PawnsPerSeat {
		pos = b.positions[seat][slot]
	}
	return &IllegalMoveError{Seat: seat, Slot: slot, Roll: roll, Position: pos}
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move: seat %s pawn %d at %d with roll %d",
		e.Seat, e.Slot, e.Position, e.Roll)
}

func layoutError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidLayout, fmt.Sprintf(format, args...))
}
