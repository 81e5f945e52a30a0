package game

import "fmt"

// Positions are relative to a seat's own start cell.
const (
	Home       = -1 // Not yet on the track
	TrackStart = 0  // The seat's own start cell
	GoalStart  = 40 // First goal cell
	GoalEnd    = 43 // Last goal cell
	TrackSize  = 40 // Cells on the shared ring

	PawnsPerSeat = 4
)

// Pawn identifies one pawn on the board.
type Pawn struct {
	Seat Seat
	Slot int
}

func (p Pawn) String() string {
	return fmt.Sprintf("%s%d", p.Seat, p.Slot)
}

// IsHome reports whether a relative position is the home sentinel.
func IsHome(rel int) bool {
	return rel == Home
}

// OnTrack reports whether a relative position maps to a cell on the shared ring.
func OnTrack(rel int) bool {
	return rel >= TrackStart && rel < GoalStart
}

// InGoal reports whether a relative position lies in the seat's private goal lane.
func InGoal(rel int) bool {
	return rel >= GoalStart && rel <= GoalEnd
}
