package game

// Rules holds the dice-dependent rules of the race.
type Rules interface {
	// ExitRoll is the roll that lets a pawn leave home.
	ExitRoll() int
	// GrantsExtraTurn reports whether the roll keeps the turn with the same seat.
	GrantsExtraTurn(roll int) bool
}
