package game

import (
	"fmt"
	"strings"
)

// Seat is one of the four fixed player identities.
type Seat int

const (
	SeatA Seat = iota
	SeatB
	SeatC
	SeatD
)

const NumSeats = 4

var seatLetters = [NumSeats]byte{'A', 'B', 'C', 'D'}

// Absolute start cells on the shared ring
var startCells = [NumSeats]int{0, 10, 20, 30}

// Seats returns all seats in turn order.
func Seats() [NumSeats]Seat {
	return [NumSeats]Seat{SeatA, SeatB, SeatC, SeatD}
}

func (s Seat) Valid() bool {
	return s >= SeatA && s <= SeatD
}

// Next returns the seat that plays after s.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// StartCell returns the absolute ring cell where the seat's pawns enter the track.
func (s Seat) StartCell() int {
	return startCells[s]
}

func (s Seat) Letter() byte {
	return seatLetters[s]
}

func (s Seat) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Seat(%d)", int(s))
	}
	return string(seatLetters[s])
}

func (s Seat) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Seat) UnmarshalText(text []byte) error {
	seat, err := ParseSeat(string(text))
	if err != nil {
		return err
	}
	*s = seat
	return nil
}

// ParseSeat accepts a seat letter (case-insensitive) or its ordinal.
func ParseSeat(str string) (Seat, error) {
	str = strings.TrimSpace(str)
	if len(str) != 1 {
		return 0, fmt.Errorf("unknown seat %q", str)
	}
	c := str[0]
	switch {
	case c >= 'A' && c <= 'D':
		return Seat(c - 'A'), nil
	case c >= 'a' && c <= 'd':
		return Seat(c - 'a'), nil
	case c >= '0' && c <= '3':
		return Seat(c - '0'), nil
	}
	return 0, fmt.Errorf("unknown seat %q", str)
}
