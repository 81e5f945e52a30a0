package policy

import (
	"io"
	"testing"

	"ludo/game"

	"github.com/stretchr/testify/require"
)

func board(t *testing.T, seat game.Seat, pawns [game.PawnsPerSeat]int) *game.Board {
	t.Helper()
	var positions [game.NumSeats][game.PawnsPerSeat]int
	for _, s := range game.Seats() {
		positions[s] = [game.PawnsPerSeat]int{game.Home, game.Home, game.Home, game.Home}
	}
	positions[seat] = pawns
	b, err := game.NewBoardFromPositions(nil, positions)
	require.NoError(t, err)
	return b
}

func TestRandom(t *testing.T) {
	t.Run("no legal move", func(t *testing.T) {
		b := board(t, game.SeatA, [game.PawnsPerSeat]int{game.Home, game.Home, game.Home, game.Home})
		require.False(t, NewRandom(1).MakeMove(b, game.SeatA, 3))
		require.Zero(t, b.Moves())
	})

	t.Run("moves one legal pawn", func(t *testing.T) {
		b := board(t, game.SeatB, [game.PawnsPerSeat]int{3, 8, game.Home, game.Home})
		require.True(t, NewRandom(1).MakeMove(b, game.SeatB, 6))
		require.Equal(t, 1, b.Moves())
		require.NoError(t, b.CheckIndex())
	})

	t.Run("same seed same choices", func(t *testing.T) {
		play := func() [game.NumSeats][game.PawnsPerSeat]int {
			b := board(t, game.SeatC, [game.PawnsPerSeat]int{1, 9, 17, game.Home})
			p := NewRandom(99)
			for i := 0; i < 5; i++ {
				p.MakeMove(b, game.SeatC, 2)
			}
			return b.Positions()
		}
		require.Equal(t, play(), play())
	})
}

func TestCycling(t *testing.T) {
	t.Run("start slot rotates per call", func(t *testing.T) {
		b := board(t, game.SeatA, [game.PawnsPerSeat]int{0, 10, 20, 30})
		p := NewCycling()
		defer p.Close()

		for call := 0; call < 4; call++ {
			before := b.Positions()[game.SeatA]
			require.True(t, p.MakeMove(b, game.SeatA, 1))
			after := b.Positions()[game.SeatA]
			require.Equal(t, before[call]+1, after[call])
		}
	})

	t.Run("skips pawns without a legal move", func(t *testing.T) {
		// slot 0 is home and roll 2 cannot release it, so slot 1 moves
		b := board(t, game.SeatD, [game.PawnsPerSeat]int{game.Home, 5, game.Home, game.Home})
		p := NewCycling()
		defer p.Close()

		require.True(t, p.MakeMove(b, game.SeatD, 2))
		require.Equal(t, 7, b.Position(game.SeatD, 1))
	})

	t.Run("advances even when forfeiting", func(t *testing.T) {
		b := board(t, game.SeatA, [game.PawnsPerSeat]int{0, 10, 20, 30})
		p := NewCycling()
		defer p.Close()

		require.False(t, p.MakeMove(b, game.SeatB, 2))
		require.True(t, p.MakeMove(b, game.SeatA, 2))
		require.Equal(t, 12, b.Position(game.SeatA, 1))
	})

	var _ io.Closer = NewCycling()
}

func TestFactory(t *testing.T) {
	for _, tt := range []struct {
		in   string
		kind Kind
	}{
		{"random", KindRandom},
		{" Cycling ", KindCycling},
	} {
		k, err := ParseKind(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.kind, k)
	}

	_, err := ParseKind("greedy")
	require.ErrorIs(t, err, ErrUnknownKind)

	p, err := New(KindRandom, 3)
	require.NoError(t, err)
	require.IsType(t, &Random{}, p)

	p, err = New(KindCycling, 0)
	require.NoError(t, err)
	require.IsType(t, &Cycling{}, p)

	_, err = New(Kind(9), 0)
	require.ErrorIs(t, err, ErrUnknownKind)

	require.NoError(t, Close(NewRandom(1), NewCycling(), nil))

	text, err := KindCycling.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "cycling", string(text))
}
