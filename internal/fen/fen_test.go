/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestParseStandardStartPosition(t *testing.T) {
	gs, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "standard")
	require.NoError(t, err)

	assert.Equal(t, White, gs.SideToMove)
	assert.Equal(t, SqNone, gs.EpSquare)
	assert.Len(t, gs.Placements, 32)

	var whiteKing, h1Rook, a1Rook bool
	for _, p := range gs.Placements {
		switch {
		case p.Id == variant.PidKing && p.Player == White:
			whiteKing = true
			assert.True(t, p.CastleEligible)
		case p.Id == variant.PidRook && p.Player == White && p.Square == SquareOf(7, 0):
			h1Rook = true
			assert.True(t, p.CastleEligible)
		case p.Id == variant.PidRook && p.Player == White && p.Square == SquareOf(0, 0):
			a1Rook = true
			assert.True(t, p.CastleEligible)
		}
	}
	assert.True(t, whiteKing)
	assert.True(t, h1Rook)
	assert.True(t, a1Rook)
}

func TestParsePartialCastlingRights(t *testing.T) {
	gs, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kq - 0 1", "standard")
	require.NoError(t, err)

	for _, p := range gs.Placements {
		switch {
		case p.Id == variant.PidRook && p.Player == White && p.Square == SquareOf(7, 0):
			assert.True(t, p.CastleEligible, "White kingside rook should be eligible")
		case p.Id == variant.PidRook && p.Player == White && p.Square == SquareOf(0, 0):
			assert.False(t, p.CastleEligible, "White queenside rook should not be eligible")
		case p.Id == variant.PidRook && p.Player == Black && p.Square == SquareOf(0, 7):
			assert.True(t, p.CastleEligible, "Black queenside rook should be eligible")
		case p.Id == variant.PidRook && p.Player == Black && p.Square == SquareOf(7, 7):
			assert.False(t, p.CastleEligible, "Black kingside rook should not be eligible")
		}
	}
}

func TestParseNoCastlingRights(t *testing.T) {
	gs, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", "standard")
	require.NoError(t, err)

	for _, p := range gs.Placements {
		assert.False(t, p.CastleEligible)
	}
}

func TestParseEnPassantSquareAndVictim(t *testing.T) {
	// After 1. e4, the ep square is e3 (the skipped square) and the
	// victim is the just-pushed White pawn sitting on e4.
	gs, err := Parse("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "standard")
	require.NoError(t, err)

	assert.Equal(t, SquareOf(4, 2), gs.EpSquare) // e3
	assert.Equal(t, SquareOf(4, 3), gs.EpVictim) // e4
}

func TestParseInvalidBoardRankCount(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1", "standard")
	assert.Error(t, err)
}

func TestParseInvalidPieceCharacter(t *testing.T) {
	_, err := Parse("znbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "standard")
	assert.Error(t, err)
}

func TestParseTooFewFields(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "standard")
	assert.Error(t, err)
}

func TestParseInvalidSideToMove(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "standard")
	assert.Error(t, err)
}

func TestParseUnknownVariant(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "bogus")
	assert.Error(t, err)
}
