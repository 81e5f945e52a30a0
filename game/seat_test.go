package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeat(t *testing.T) {
	require.Equal(t, SeatB, SeatA.Next())
	require.Equal(t, SeatA, SeatD.Next())
	require.Equal(t, [NumSeats]int{0, 10, 20, 30},
		[NumSeats]int{SeatA.StartCell(), SeatB.StartCell(), SeatC.StartCell(), SeatD.StartCell()})
	require.Equal(t, "C", SeatC.String())
	require.Equal(t, "Seat(7)", Seat(7).String())
}

func TestParseSeat(t *testing.T) {
	for _, in := range []string{"b", "B", "1", " B "} {
		seat, err := ParseSeat(in)
		require.NoError(t, err)
		require.Equal(t, SeatB, seat)
	}
	_, err := ParseSeat("E")
	require.Error(t, err)
	_, err = ParseSeat("AB")
	require.Error(t, err)

	var s Seat
	require.NoError(t, s.UnmarshalText([]byte("d")))
	require.Equal(t, SeatD, s)
}

func TestDice(t *testing.T) {
	t.Run("standard dice stay in range and are seeded", func(t *testing.T) {
		d1, d2 := NewStandardDice(42), NewStandardDice(42)
		seen := map[int]bool{}
		for i := 0; i < 600; i++ {
			r := d1.Roll()
			require.Equal(t, r, d2.Roll())
			require.GreaterOrEqual(t, r, d1.Min())
			require.LessOrEqual(t, r, d1.Max())
			seen[r] = true
		}
		require.Len(t, seen, 6)
	})

	t.Run("sequence dice wraps around", func(t *testing.T) {
		d := NewSequenceDice(6, 2)
		require.Equal(t, []int{6, 2, 6}, []int{d.Roll(), d.Roll(), d.Roll()})
		require.Panics(t, func() { NewSequenceDice() })
		require.Panics(t, func() { NewSequenceDice(0) })
	})
}
