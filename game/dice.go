package game

import "math/rand/v2"

// Dice produces rolls for a seat.
type Dice interface {
	Roll() int
	Min() int
	Max() int
}

// StandardDice is a uniform six-sided die.
type StandardDice struct {
	rng *rand.Rand
}

func NewStandardDice(seed uint64) *StandardDice {
	return &StandardDice{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (d *StandardDice) Roll() int {
	return d.rng.IntN(6) + 1
}

func (d *StandardDice) Min() int { return 1 }
func (d *StandardDice) Max() int { return 6 }

// SequenceDice replays a fixed list of rolls, wrapping around at the end.
type SequenceDice struct {
	rolls []int
	next  int
}

func NewSequenceDice(rolls ...int) *SequenceDice {
	if len(rolls) == 0 {
		panic("sequence dice needs at least one roll")
	}
	for _, r := range rolls {
		if r < 1 || r > 6 {
			panic("sequence dice roll out of range")
		}
	}
	return &SequenceDice{rolls: rolls}
}

func (d *SequenceDice) Roll() int {
	r := d.rolls[d.next]
	d.next = (d.next + 1) % len(d.rolls)
	return r
}

func (d *SequenceDice) Min() int { return 1 }
func (d *SequenceDice) Max() int { return 6 }
