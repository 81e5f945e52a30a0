package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeavableFromHome(t *testing.T) {
	t.Run("blocked while an own pawn is on the start cell", func(t *testing.T) {
		b := NewBoard(nil)
		_, ok := b.LeavableFromHome(SeatA)
		require.False(t, ok)
		require.Equal(t, []int{0}, b.LegalMoves(SeatA, 6))
	})

	t.Run("offers only the lowest home slot", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatB: {5, Home, 12, Home}})
		slot, ok := b.LeavableFromHome(SeatB)
		require.True(t, ok)
		require.Equal(t, 1, slot)
	})

	t.Run("needs a six", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatA: {5, Home, Home, Home}})
		require.Equal(t, []int{1, 0}, b.LegalMoves(SeatA, 6))
		for roll := 1; roll < 6; roll++ {
			require.Equal(t, []int{0}, b.LegalMoves(SeatA, roll))
		}
	})

	t.Run("all at home without a six forfeits", func(t *testing.T) {
		b := layout(t, nil)
		require.Empty(t, b.LegalMoves(SeatD, 5))
		require.Equal(t, []int{0}, b.LegalMoves(SeatD, 6))
	})
}

func TestMovableOnTrack(t *testing.T) {
	tests := []struct {
		name      string
		positions [PawnsPerSeat]int
		roll      int
		expected  []int
	}{
		{name: "plain advance", positions: [PawnsPerSeat]int{3, Home, Home, Home}, roll: 4, expected: []int{0}},
		{name: "exact last goal cell", positions: [PawnsPerSeat]int{41, Home, Home, Home}, roll: 2, expected: []int{0}},
		{name: "overshoot", positions: [PawnsPerSeat]int{41, Home, Home, Home}, roll: 3, expected: []int{}},
		{name: "blocked by own pawn on track", positions: [PawnsPerSeat]int{3, 5, Home, Home}, roll: 2, expected: []int{1}},
		{name: "blocked by own pawn in goal", positions: [PawnsPerSeat]int{40, 42, Home, Home}, roll: 2, expected: []int{}},
		{name: "from track into goal", positions: [PawnsPerSeat]int{38, 43, Home, Home}, roll: 3, expected: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := layout(t, map[Seat][PawnsPerSeat]int{SeatA: tt.positions})
			require.Equal(t, tt.expected, b.MovableOnTrack(SeatA, tt.roll))
		})
	}
}

func TestApplyMove(t *testing.T) {
	t.Run("leaving home lands on the start cell", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatC: {5, Home, Home, Home}})
		b.ApplyMove(SeatC, 1, 6)

		require.Equal(t, TrackStart, b.Position(SeatC, 1))
		require.Equal(t, []Pawn{{SeatC, 1}}, b.Occupants(20))
		require.Equal(t, 1, b.Moves())
		require.NoError(t, b.CheckIndex())
	})

	t.Run("landing on an opponent captures it", func(t *testing.T) {
		// A on cell 3, B at relative 31 is on cell 1
		b := layout(t, map[Seat][PawnsPerSeat]int{
			SeatA: {3, Home, Home, Home},
			SeatB: {31, Home, Home, Home},
		})
		b.ApplyMove(SeatB, 0, 2)

		require.Equal(t, Home, b.Position(SeatA, 0))
		require.Equal(t, 33, b.Position(SeatB, 0))
		require.Equal(t, []Pawn{{SeatB, 0}}, b.Occupants(3))
		require.Empty(t, b.Occupants(1))
		require.Equal(t, 1, b.Captures(SeatB))
		require.NoError(t, b.CheckIndex())
	})

	t.Run("a pawn on its own start cell is safe", func(t *testing.T) {
		// A rests on cell 0, B at relative 28 is on cell 38
		b := layout(t, map[Seat][PawnsPerSeat]int{
			SeatA: {TrackStart, Home, Home, Home},
			SeatB: {28, Home, Home, Home},
		})
		b.ApplyMove(SeatB, 0, 2)

		require.Equal(t, TrackStart, b.Position(SeatA, 0))
		require.Equal(t, []Pawn{{SeatA, 0}, {SeatB, 0}}, b.Occupants(0))
		require.Zero(t, b.Captures(SeatB))
		require.NoError(t, b.CheckIndex())

		b.ApplyMove(SeatB, 0, 3)
		require.Equal(t, []Pawn{{SeatA, 0}}, b.Occupants(0))
		require.NoError(t, b.CheckIndex())
	})

	t.Run("a visitor on another seat's start cell is not safe", func(t *testing.T) {
		// C at relative 20 stands on A's start cell
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatC: {20, Home, Home, Home}})
		require.Equal(t, []int{0}, b.LegalMoves(SeatA, 6))
		b.ApplyMove(SeatA, 0, 6)

		require.Equal(t, Home, b.Position(SeatC, 0))
		require.Equal(t, []Pawn{{SeatA, 0}}, b.Occupants(0))
		require.Equal(t, 1, b.Captures(SeatA))
		require.NoError(t, b.CheckIndex())
	})

	t.Run("moving into goal never touches the ring", func(t *testing.T) {
		// D at relative 11 stands on cell 1
		b := layout(t, map[Seat][PawnsPerSeat]int{
			SeatA: {38, Home, Home, Home},
			SeatD: {11, Home, Home, Home},
		})
		b.ApplyMove(SeatA, 0, 3)

		require.Equal(t, 41, b.Position(SeatA, 0))
		require.Equal(t, 11, b.Position(SeatD, 0))
		require.Empty(t, b.Occupants(38))
		require.Equal(t, []Pawn{{SeatD, 0}}, b.Occupants(1))
		_, ok := b.AbsolutePosition(SeatA, 0)
		require.False(t, ok)
		require.NoError(t, b.CheckIndex())
	})

	t.Run("illegal moves panic before touching the board", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatA: {41, Home, Home, Home}})
		before := b.Positions()

		require.PanicsWithError(t, NewIllegalMoveError(b, SeatA, 0, 3).Error(), func() {
			b.ApplyMove(SeatA, 0, 3)
		})
		require.PanicsWithError(t, NewIllegalMoveError(b, SeatA, 1, 5).Error(), func() {
			b.ApplyMove(SeatA, 1, 5)
		})
		require.Panics(t, func() { b.ApplyMove(SeatA, 4, 1) })
		require.Panics(t, func() { b.ApplyMove(SeatA, 0, 7) })
		require.Equal(t, before, b.Positions())
		require.Zero(t, b.Moves())
	})
}

func TestResolveCapture(t *testing.T) {
	t.Run("never captures the acting seat's own pawn", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatA: {3, Home, Home, Home}})
		_, ok := b.ResolveCapture(SeatA, 3)
		require.False(t, ok)
		require.Equal(t, 3, b.Position(SeatA, 0))
	})

	t.Run("never captures a resident", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatB: {TrackStart, Home, Home, Home}})
		_, ok := b.ResolveCapture(SeatA, 10)
		require.False(t, ok)
		require.Equal(t, TrackStart, b.Position(SeatB, 0))
	})

	t.Run("captures a visitor", func(t *testing.T) {
		b := layout(t, map[Seat][PawnsPerSeat]int{SeatB: {Home, 7, Home, Home}})
		victim, ok := b.ResolveCapture(SeatD, 17)
		require.True(t, ok)
		require.Equal(t, Pawn{SeatB, 1}, victim)
		require.Equal(t, Home, b.Position(SeatB, 1))
		require.Empty(t, b.Occupants(17))
	})

	t.Run("empty cell", func(t *testing.T) {
		b := layout(t, nil)
		_, ok := b.ResolveCapture(SeatA, 25)
		require.False(t, ok)
	})
}
