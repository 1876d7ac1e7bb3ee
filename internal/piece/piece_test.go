/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func rookDef(id PieceId) *Definition {
	d := NewDefinition(id, 'R')
	d.WithSlide(North).WithSlide(South).WithSlide(East).WithSlide(West)
	return d
}

func bishopDef(id PieceId) *Definition {
	d := NewDefinition(id, 'B')
	d.WithSlide(Northeast).WithSlide(Southwest).WithSlide(Northwest).WithSlide(Southeast)
	return d
}

func knightDef(id PieceId) *Definition {
	d := NewDefinition(id, 'N')
	for _, delta := range []Delta{{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: -1, DY: 2}, {DX: -2, DY: 1},
		{DX: 1, DY: -2}, {DX: 2, DY: -1}, {DX: -1, DY: -2}, {DX: -2, DY: -1}} {
		d.WithJump(delta)
	}
	return d
}

func pawnDef(id PieceId, dims BDimensions) *Definition {
	d := NewDefinition(id, 'P')
	d.WithTranslateJump(Delta{DX: 0, DY: 1})
	d.WithAttackJump(Delta{DX: 1, DY: 1})
	d.WithAttackJump(Delta{DX: -1, DY: 1})
	d.PromotionSquares = Bitboard{}
	for x := 0; x < dims.Width; x++ {
		d.PromotionSquares = d.PromotionSquares.PushSquare(SquareOf(File(x), Rank(dims.Height-1)))
	}
	d.PromoVals[White] = []PieceId{id + 1}
	return d
}

func TestDefinitionValidate(t *testing.T) {
	r := rookDef(1)
	assert.NoError(t, r.Validate())

	bad := NewDefinition(2, 'X')
	bad.PromotionSquares = Bitboard{}.PushSquare(SquareOf(0, 0))
	assert.Error(t, bad.Validate())
}

func TestPieceZobristDeterministic(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	a := NewPiece(rookDef(3), White, dims)
	b := NewPiece(rookDef(3), White, dims)
	assert.Equal(t, a.ZobristHashes, b.ZobristHashes)

	c := NewPiece(rookDef(3), Black, dims)
	assert.NotEqual(t, a.ZobristHashes, c.ZobristHashes)
}

func TestKnightJumpTable(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	n := NewPiece(knightDef(4), White, dims)
	centre := SquareOf(4, 4)
	targets := n.JumpTranslate(centre)
	assert.Equal(t, 8, targets.PopCount())
	assert.True(t, targets.Has(SquareOf(6, 5)))

	corner := SquareOf(0, 0)
	assert.Equal(t, 2, n.JumpTranslate(corner).PopCount())
}

func TestRookSlideTranslatesOpenBoard(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	r := NewPiece(rookDef(5), White, dims)
	moves := r.SlideTranslates(SquareOf(0, 0), Bitboard{})
	assert.Equal(t, 14, moves.PopCount())
}

func TestRookSlideTranslatesBlocked(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	r := NewPiece(rookDef(6), White, dims)
	occ := Bitboard{}.PushSquare(SquareOf(0, 3))
	moves := r.SlideTranslates(SquareOf(0, 0), occ)
	assert.True(t, moves.Has(SquareOf(0, 2)))
	assert.True(t, moves.Has(SquareOf(0, 3)))
	assert.False(t, moves.Has(SquareOf(0, 4)))
}

func TestPawnPromotionSquares(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	p := NewPiece(pawnDef(7, dims), White, dims)
	assert.Equal(t, 8, p.PromotionSquares().PopCount())
	assert.True(t, p.PromotionSquares().Has(SquareOf(3, 7)))
}

func TestMaterialScoreOrdering(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	rook := NewPiece(rookDef(10), White, dims)
	knight := NewPiece(knightDef(12), White, dims)

	assert.Greater(t, int(rook.MaterialScore), int(knight.MaterialScore))
	assert.GreaterOrEqual(t, int(knight.MaterialScore), materialFloor)
}

func TestLeaderMaterialScaled(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	plain := knightDef(13)
	leader := knightDef(14)
	leader.IsLeader = true

	a := NewPiece(plain, White, dims)
	b := NewPiece(leader, White, dims)
	assert.Equal(t, Value(float64(a.MaterialScore)*leaderMultiplier), b.MaterialScore)
}

func TestBishopIsColourBound(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	bishop := NewPiece(bishopDef(16), White, dims)
	height := float64(dims.Height)
	rawRayScore := 4*attackRayCoeff*height*diagonalFactor + 4*translateRayCoeff*height*diagonalFactor
	assert.Equal(t, Value(rawRayScore+colourBoundMalus), bishop.MaterialScore)
}

func TestPstDiffersByCentrality(t *testing.T) {
	dims := NewRectangularDimensions(8, 8)
	n := NewPiece(knightDef(17), White, dims)
	centre := n.PstMid(SquareOf(4, 4))
	corner := n.PstMid(SquareOf(0, 0))
	assert.Greater(t, int(centre), int(corner))
}
