/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestRankAttacksEmptyBoard(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	attacked := Global.RankAttacks(SquareOf(FileD, Rank(3)), Bitboard{}, dims)
	// on an empty 8x8 rank, a rook-like slider on d4 attacks all other
	// 7 squares of rank 4 within bounds.
	assert.Equal(t, 7, attacked.PopCount())
}

func TestRankAttacksBlocked(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	occ := Bitboard{}.PushSquare(SquareOf(File(5), Rank(3)))
	attacked := Global.RankAttacks(SquareOf(File(3), Rank(3)), occ, dims)
	assert.True(t, attacked.Has(SquareOf(File(5), Rank(3))))
	assert.False(t, attacked.Has(SquareOf(File(6), Rank(3))))
}

func TestFileAttacksEdgeWalk(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	attacked := Global.FileAttacks(SquareOf(File(3), Rank(3)), Bitboard{}, dims)
	assert.Equal(t, 7, attacked.PopCount())
}

func TestDiagonalAttacksBlocked(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	occ := Bitboard{}.PushSquare(SquareOf(File(5), Rank(5)))
	attacked := Global.DiagonalAttacks(SquareOf(File(3), Rank(3)), occ, dims)
	assert.True(t, attacked.Has(SquareOf(File(5), Rank(5))))
	assert.False(t, attacked.Has(SquareOf(File(6), Rank(6))))
}

func TestRayAttacksDeltaHole(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	attacked := RayAttacksDelta(SquareOf(File(0), Rank(0)), Delta{DX: 2, DY: 1}, Bitboard{}, dims)
	assert.True(t, attacked.Has(SquareOf(File(2), Rank(1))))
	assert.True(t, attacked.Has(SquareOf(File(6), Rank(3))))
	assert.Equal(t, 3, attacked.PopCount())
}
