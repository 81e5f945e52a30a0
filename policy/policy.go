package policy

import "ludo/game"

// Policy decides which pawn a seat moves with a roll. It reads the board through LegalMoves
// and mutates it only through ApplyMove. It reports whether a move was made; no legal move
// forfeits the turn.
type Policy interface {
	MakeMove(b *game.Board, seat game.Seat, roll int) bool
}
