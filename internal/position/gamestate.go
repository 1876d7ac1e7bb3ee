/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package position

import (
	"github.com/frankkopp/chesscore/internal/piece"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

// PlacementState is one occupied square of an arbitrary (not necessarily
// starting) position, carrying its own castle-eligibility bit rather than
// inferring it from the piece definition the way variant.Preset's fixed
// starting arrays do - spec.md §6's "list of squares whose occupants have
// not moved" generalisation of FEN's KQkq.
type PlacementState struct {
	Id             PieceId
	Player         Color
	Square         Square
	CastleEligible bool
}

// GameState is the structured, parsed form spec.md §6 says the core
// accepts at its boundary: piece placements, side to move, en-passant
// square/victim and the active variant's dimensions/piece set/rules. A
// FEN (or any other serialised) parser builds one of these and hands it
// to NewPositionFromGameState; the core itself never parses text.
type GameState struct {
	Dims       BDimensions
	PieceDefs  []*piece.Definition
	Placements []PlacementState
	SideToMove Color
	EpSquare   Square
	EpVictim   Square
	Rules      variant.GlobalRulesInternal
}

// NewPositionFromGameState builds a Position from an arbitrary GameState,
// the general form of NewPositionFromPreset that also accepts a non-start
// side to move, partial castling rights and a live en-passant square -
// spec.md §6's set_state.
func NewPositionFromGameState(gs GameState) *Position {
	pos := &Position{
		Dims:     gs.Dims,
		WhosTurn: gs.SideToMove,
		Pieces:   [2]*PieceSet{NewPieceSet(White, gs.Dims), NewPieceSet(Black, gs.Dims)},
		Rules:    gs.Rules,
		defsById: map[PieceId]*piece.Definition{},
	}
	for _, def := range gs.PieceDefs {
		pos.defsById[def.Id] = def
	}

	var key Key
	for _, placement := range gs.Placements {
		def := pos.defsById[placement.Id]
		pos.Pieces[placement.Player].AddPiece(def, placement.Square, placement.CastleEligible)
		pc := pos.Pieces[placement.Player].Piece(placement.Id)
		key ^= pc.ZobristHashes[placement.Square]
		if placement.CastleEligible {
			key ^= castleRightsKey(pc, placement.Square)
		}
	}
	if gs.SideToMove == Black {
		key ^= sideToMoveKey
	}
	if gs.EpSquare != SqNone {
		key ^= epKeys[gs.EpSquare]
	}

	pos.propertiesStack = []PositionProperties{{
		ZobristKey: key,
		MovePlayed: MoveNone,
		EpSquare:   gs.EpSquare,
		EpVictim:   gs.EpVictim,
	}}
	pos.recomputeOccupancy()
	return pos
}
