/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package position

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// PositionProperties is one stack frame of reversible state, per
// spec.md §3.
type PositionProperties struct {
	ZobristKey Key
	MovePlayed Move

	// PromoteFrom is the mover's id before promotion, for unmake.
	PromoteFrom PieceId

	// MovedPieceCastle is whether the mover had castle-eligibility
	// immediately before the move.
	MovedPieceCastle bool

	EpSquare Square
	EpVictim Square

	// CastledPlayers is a per-player "has castled" bitmask (bit 0 =
	// White, bit 1 = Black).
	CastledPlayers uint8

	TimesInCheck [2]uint8

	// NumCaptures is how many entries to pop off the captures stack on
	// unmake; atomic explosions can remove up to 9 pieces in one move.
	NumCaptures int
}

// captureRecord is one entry of the captures stack: the removed piece's
// definition id, owner, whether it was castle-eligible, and the square
// it was removed from.
type captureRecord struct {
	Id             PieceId
	Player         Color
	CastleEligible bool
	Square         Square
}
