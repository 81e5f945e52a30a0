package game

import "golang.org/x/exp/slices"

// ownAt reports whether one of the seat's pawns already stands on a relative position.
func (b *Board) ownAt(seat Seat, rel int) bool {
	return slices.Contains(b.positions[seat][:], rel)
}

// LeavableFromHome returns the pawn allowed to leave home, if any. Only one pawn fits on the
// start cell, so at most the lowest home slot is offered, and none while an own pawn
// still stands on the start cell. The roll is checked by LegalMoves.
func (b *Board) LeavableFromHome(seat Seat) (int, bool) {
	if b.ownAt(seat, TrackStart) {
		return -1, false
	}
	slot := slices.Index(b.positions[seat][:], Home)
	return slot, slot >= 0
}

// MovableOnTrack returns the pawns out of home that can advance by roll. A pawn may not
// overshoot the last goal cell and may not land on an own pawn.
func (b *Board) MovableOnTrack(seat Seat, roll int) []int {
	slots := make([]int, 0, PawnsPerSeat)
	for slot, rel := range b.positions[seat] {
		if rel == Home {
			continue
		}
		next := rel + roll
		if next > GoalEnd || b.ownAt(seat, next) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

// LegalMoves returns every pawn the seat may move with this roll. An empty result forfeits
// the turn.
func (b *Board) LegalMoves(seat Seat, roll int) []int {
	moves := make([]int, 0, PawnsPerSeat)
	if roll == b.Rules.ExitRoll() {
		if slot, ok := b.LeavableFromHome(seat); ok {
			moves = append(moves, slot)
		}
	}
	return append(moves, b.MovableOnTrack(seat, roll)...)
}

func (b *Board) isLegal(seat Seat, slot, roll int) bool {
	rel := b.positions[seat][slot]
	if rel == Home {
		home, ok := b.LeavableFromHome(seat)
		return roll == b.Rules.ExitRoll() && ok && home == slot
	}
	next := rel + roll
	return next <= GoalEnd && !b.ownAt(seat, next)
}

// ApplyMove moves one pawn. The move must come from LegalMoves; anything else panics with
// an *IllegalMoveError before the board is touched.
//
// Order of updates: position, old index entry, capture at the landing cell, new index entry.
// The capture therefore never sees the mover itself.
func (b *Board) ApplyMove(seat Seat, slot, roll int) {
	if !seat.Valid() || slot < 0 || slot >= PawnsPerSeat || roll < 1 || roll > 6 ||
		!b.isLegal(seat, slot, roll) {
		panic(NewIllegalMoveError(b, seat, slot, roll))
	}

	p := Pawn{Seat: seat, Slot: slot}
	old := b.positions[seat][slot]
	next := TrackStart
	if old != Home {
		next = old + roll
	}

	b.positions[seat][slot] = next
	b.unindex(p, old)
	if OnTrack(next) {
		b.ResolveCapture(seat, absolute(seat, next))
		b.index(p, next)
	}
	b.moves++
}

// ResolveCapture sends the capturable occupant of a ring cell home. Own pawns are never
// captured, and neither is a pawn resting on its own start cell.
func (b *Board) ResolveCapture(seat Seat, cell int) (Pawn, bool) {
	occ := &b.cells[cell]
	if !occ.visitor.set {
		return Pawn{}, false
	}
	victim := occ.visitor.pawn
	if victim.Seat == seat || cell == victim.Seat.StartCell() {
		return Pawn{}, false
	}
	b.positions[victim.Seat][victim.Slot] = Home
	occ.visitor = entry{}
	b.captures[seat]++
	return victim, true
}

func (b *Board) index(p Pawn, rel int) {
	occ := &b.cells[absolute(p.Seat, rel)]
	if rel == TrackStart {
		occ.resident = entry{pawn: p, set: true}
		return
	}
	occ.visitor = entry{pawn: p, set: true}
}

func (b *Board) unindex(p Pawn, rel int) {
	if !OnTrack(rel) {
		return
	}
	occ := &b.cells[absolute(p.Seat, rel)]
	if rel == TrackStart {
		if occ.resident.pawn == p {
			occ.resident = entry{}
		}
		return
	}
	if occ.visitor.pawn == p {
		occ.visitor = entry{}
	}
}
