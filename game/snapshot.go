package game

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of what observers may see of a board.
type Snapshot struct {
	Home     [NumSeats]int
	Track    [NumSeats]int
	Goal     [NumSeats]int
	Cells    [TrackSize]byte // '.' empty, seat letter, 'X' for two pawns
	Current  Seat
	LastRoll int
	GameOver bool
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Current:  b.current,
		LastRoll: b.lastRoll,
		GameOver: b.gameOver,
	}
	for _, seat := range Seats() {
		for _, rel := range b.positions[seat] {
			switch {
			case rel == Home:
				s.Home[seat]++
			case InGoal(rel):
				s.Goal[seat]++
			default:
				s.Track[seat]++
			}
		}
	}
	for cell, occ := range b.cells {
		switch occ.count() {
		case 0:
			s.Cells[cell] = '.'
		case 1:
			p := occ.visitor.pawn
			if occ.resident.set {
				p = occ.resident.pawn
			}
			s.Cells[cell] = p.Seat.Letter()
		default:
			s.Cells[cell] = 'X'
		}
	}
	return s
}

// String renders the snapshot on one line:
//
//	PA(H:3,G:0) PB(H:3,G:0) PC(H:3,G:0) PD(H:3,G:0) | Track: [A.........B...] | Turn: A Roll: 6
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(128)
	for _, seat := range Seats() {
		fmt.Fprintf(&sb, "P%s(H:%d,G:%d) ", seat, s.Home[seat], s.Goal[seat])
	}
	sb.WriteString("| Track: [")
	sb.Write(s.Cells[:])
	fmt.Fprintf(&sb, "] | Turn: %s Roll: %d", s.Current, s.LastRoll)
	return sb.String()
}
