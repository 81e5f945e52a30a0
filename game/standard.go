package game

type StandardRules struct {
	BonusRoll int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		BonusRoll: 6,
	}
}

func (sr *StandardRules) ExitRoll() int {
	return sr.BonusRoll
}

// A six keeps the turn whether or not it produced a move.
func (sr *StandardRules) GrantsExtraTurn(roll int) bool {
	return roll == sr.BonusRoll
}
