/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package variant

import (
	"github.com/frankkopp/chesscore/internal/piece"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Canonical PieceIds for the classical chess piece set. Pawns get one id
// per colour because their movement (forward direction, promotion rank,
// double-jump rank) is not colour-symmetric, while every other piece
// shares one id across both players - satisfying spec.md §3's "ids are
// globally unique across players" without duplicating symmetric pieces.
const (
	PidKing PieceId = iota + 1
	PidQueen
	PidRook
	PidBishop
	PidKnight
	PidPawnWhite
	PidPawnBlack
)

var knightDeltas = []Delta{
	{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: -1, DY: 2}, {DX: -2, DY: 1},
	{DX: 1, DY: -2}, {DX: 2, DY: -1}, {DX: -1, DY: -2}, {DX: -2, DY: -1},
}

var kingDeltas = []Delta{
	{DX: 0, DY: 1}, {DX: 0, DY: -1}, {DX: 1, DY: 0}, {DX: -1, DY: 0},
	{DX: 1, DY: 1}, {DX: -1, DY: -1}, {DX: -1, DY: 1}, {DX: 1, DY: -1},
}

// explosionRing is the 3x3-minus-centre splash pattern of atomic chess.
var explosionRing = kingDeltas

func newKingDef() *piece.Definition {
	d := piece.NewDefinition(PidKing, 'K')
	d.IsLeader = true
	d.CanCastle = true
	for _, delta := range kingDeltas {
		d.WithJump(delta)
	}
	return d
}

func newQueenDef() *piece.Definition {
	d := piece.NewDefinition(PidQueen, 'Q')
	for _, dir := range []Direction{North, South, East, West, Northeast, Southwest, Northwest, Southeast} {
		d.WithSlide(dir)
	}
	return d
}

func newRookDef(isCastleRook bool) *piece.Definition {
	d := piece.NewDefinition(PidRook, 'R')
	d.IsCastleRook = isCastleRook
	d.WithSlide(North).WithSlide(South).WithSlide(East).WithSlide(West)
	return d
}

func newBishopDef() *piece.Definition {
	d := piece.NewDefinition(PidBishop, 'B')
	d.WithSlide(Northeast).WithSlide(Southwest).WithSlide(Northwest).WithSlide(Southeast)
	return d
}

func newKnightDef() *piece.Definition {
	d := piece.NewDefinition(PidKnight, 'N')
	for _, delta := range knightDeltas {
		d.WithJump(delta)
	}
	return d
}

// newPawnDef builds the pawn definition for one colour on a board of the
// given dimensions: forward (colour-dependent) translate step, diagonal
// attack jumps, a double-jump from the colour's home rank, and promotion
// on the colour's far rank with the four classical promotion targets.
func newPawnDef(color Color, dims BDimensions) *piece.Definition {
	id := PidPawnWhite
	forward := 1
	homeRank := 1
	farRank := dims.Height - 1
	charRep := 'P'
	if color == Black {
		id = PidPawnBlack
		forward = -1
		homeRank = dims.Height - 2
		farRank = 0
		charRep = 'p'
	}
	d := piece.NewDefinition(id, charRep)
	d.WithTranslateJump(Delta{DX: 0, DY: forward})
	d.WithAttackJump(Delta{DX: 1, DY: forward})
	d.WithAttackJump(Delta{DX: -1, DY: forward})

	for x := 0; x < dims.Width; x++ {
		d.DoubleJumpSquares = d.DoubleJumpSquares.PushSquare(SquareOf(File(x), Rank(homeRank)))
		d.PromotionSquares = d.PromotionSquares.PushSquare(SquareOf(File(x), Rank(farRank)))
	}
	d.PromoVals[color] = []PieceId{PidQueen, PidRook, PidBishop, PidKnight}
	return d
}

// withAtomicExplosion marks d as triggering the atomic-chess explosion
// ring on capture. Pawns are immune to the blast (per standard atomic
// rules) but still trigger it when they are the capturing piece; the
// mover-survives-if-immune behaviour is handled by internal/position's
// make_move, which checks ImmuneToExplosion before removing the mover
// itself as well as before removing ring occupants.
func withAtomicExplosion(d *piece.Definition, immune bool) *piece.Definition {
	d.ExplodesOnCapture = true
	d.ImmuneToExplosion = immune
	d.ExplosionDeltas = explosionRing
	return d
}

// standardPieceDefs returns the seven classical piece definitions for a
// board of the given dimensions, with no atomic explosion behaviour.
func standardPieceDefs(dims BDimensions) []*piece.Definition {
	return []*piece.Definition{
		newKingDef(),
		newQueenDef(),
		newRookDef(true),
		newBishopDef(),
		newKnightDef(),
		newPawnDef(White, dims),
		newPawnDef(Black, dims),
	}
}

// atomicPieceDefs returns the classical set with explosion behaviour
// wired per withAtomicExplosion.
func atomicPieceDefs(dims BDimensions) []*piece.Definition {
	defs := standardPieceDefs(dims)
	for _, d := range defs {
		immune := d.Id == PidPawnWhite || d.Id == PidPawnBlack
		withAtomicExplosion(d, immune)
	}
	return defs
}

// noLeaderPieceDefs strips IsLeader from every definition - used by
// antichess, where no single piece's capture ends the game.
func noLeaderPieceDefs(dims BDimensions) []*piece.Definition {
	defs := standardPieceDefs(dims)
	for _, d := range defs {
		d.IsLeader = false
		d.CanCastle = false
	}
	return defs
}
