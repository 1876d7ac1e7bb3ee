/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package piece

import (
	"math/rand"

	"github.com/frankkopp/chesscore/internal/attacks"
	. "github.com/frankkopp/chesscore/internal/types"
)

// Tuning constants for the dimension-aware material/PST formula of
// spec.md §4.3 (the canonical formula per DESIGN.md Open Question 3).
const (
	attackRayCoeff    = 10.0
	translateRayCoeff = 6.5
	diagonalFactor    = 1.4
	jumpDeltaBonus    = 20
	slideAtomBonus    = 20
	promotionBonus    = 40
	colourBoundMalus  = -150
	oneWayMalus       = -200
	leaderMultiplier  = 4
	materialFloor     = 10

	positionBaseMult      = 5
	positionEdgeDistMult  = 5
	positionPromotionMult = 7
)

// Piece is the runtime instance of a Definition for one player on a
// board of one particular BDimensions. Its Bitboard/CastleSquares are
// mutated only through PieceSet.
type Piece struct {
	Def    *Definition
	Player Color
	Dims   BDimensions

	Bitboard      Bitboard
	CastleSquares Bitboard

	ZobristHashes [MaxSquares]Key

	jumpTranslate     [MaxSquares]Bitboard
	jumpCapture       [MaxSquares]Bitboard
	explosion         [MaxSquares]Bitboard
	promotionSquares  Bitboard
	doubleJumpSquares Bitboard
	instantWinSquares Bitboard

	pstMid [MaxSquares]Value
	pstEnd [MaxSquares]Value

	MaterialScore Value
}

// NewPiece builds a runtime Piece for def/player on the given board
// dimensions, precomputing all per-square tables per spec.md §4.3.
func NewPiece(def *Definition, player Color, dims BDimensions) *Piece {
	p := &Piece{Def: def, Player: player, Dims: dims}
	p.initZobrist()
	p.initJumpTables()
	p.promotionSquares = def.PromotionSquares.And(dims.Bounds)
	p.doubleJumpSquares = def.DoubleJumpSquares.And(dims.Bounds)
	p.instantWinSquares = def.WinSquares.And(dims.Bounds)
	p.initPst()
	p.MaterialScore = p.computeMaterialScore()
	return p
}

// initZobrist seeds a deterministic per-square random key from (id,
// player) so that independently constructed clones hash identically
// (spec.md §4.5 zobrist key policy).
func (p *Piece) initZobrist() {
	seed := int64(p.Def.Id)<<1 | int64(p.Player)
	r := rand.New(rand.NewSource(seed))
	for sq := Square(0); sq < MaxSquares; sq++ {
		p.ZobristHashes[sq] = Key(r.Uint64())
	}
}

func (p *Piece) initJumpTables() {
	for sq := Square(0); sq < MaxSquares; sq++ {
		if !p.Dims.InBounds(sq) {
			continue
		}
		var t, c, e Bitboard
		for _, d := range p.Def.TranslateJumps {
			if to := sq.ToDelta(d); to != SqNone && p.Dims.InBounds(to) {
				t = t.PushSquare(to)
			}
		}
		for _, d := range p.Def.AttackJumps {
			if to := sq.ToDelta(d); to != SqNone && p.Dims.InBounds(to) {
				c = c.PushSquare(to)
			}
		}
		for _, d := range p.Def.ExplosionDeltas {
			if to := sq.ToDelta(d); to != SqNone && p.Dims.InBounds(to) {
				e = e.PushSquare(to)
			}
		}
		p.jumpTranslate[sq] = t
		p.jumpCapture[sq] = c
		p.explosion[sq] = e
	}
}

// JumpTranslate returns the precomputed non-capture jump targets from sq.
func (p *Piece) JumpTranslate(sq Square) Bitboard { return p.jumpTranslate[sq] }

// JumpCapture returns the precomputed capture jump targets from sq.
func (p *Piece) JumpCapture(sq Square) Bitboard { return p.jumpCapture[sq] }

// ExplosionSquares returns the precomputed splash-damage squares around
// a capture landing on sq.
func (p *Piece) ExplosionSquares(sq Square) Bitboard { return p.explosion[sq] }

// PromotionSquares returns the bounds-masked promotion coordinate set.
func (p *Piece) PromotionSquares() Bitboard { return p.promotionSquares }

// DoubleJumpSquares returns the bounds-masked double-jump coordinate set.
func (p *Piece) DoubleJumpSquares() Bitboard { return p.doubleJumpSquares }

// InstantWinSquares returns the bounds-masked win-square coordinate set.
func (p *Piece) InstantWinSquares() Bitboard { return p.instantWinSquares }

// PstMid returns the mid-game piece-square value for sq.
func (p *Piece) PstMid(sq Square) Value { return p.pstMid[sq] }

// PstEnd returns the end-game piece-square value for sq.
func (p *Piece) PstEnd(sq Square) Value { return p.pstEnd[sq] }

// SlideAttacks returns the union of all slide-run/cardinal-slide capture
// targets from sq given board occupancy. Runs and cardinal rays that are
// not configured contribute nothing.
func (p *Piece) SlideAttacks(sq Square, occupied Bitboard) Bitboard {
	return p.slideMoves(sq, occupied, p.Def.AttackSlides, p.Def.AttackSlideRuns)
}

// SlideTranslates returns the union of all slide-run/cardinal-slide
// non-capture targets from sq given board occupancy.
func (p *Piece) SlideTranslates(sq Square, occupied Bitboard) Bitboard {
	return p.slideMoves(sq, occupied, p.Def.TranslateSlides, p.Def.TranslateSlideRuns)
}

func (p *Piece) slideMoves(sq Square, occupied Bitboard, cardinals [8]bool, runs []SlideRun) Bitboard {
	var result Bitboard
	for i, on := range cardinals {
		if !on {
			continue
		}
		result = result.Or(cardinalRay(sq, cardinalDirs[i], occupied, p.Dims))
	}
	for _, run := range runs {
		result = result.Or(runWalk(sq, run, occupied, p.Dims))
	}
	return result
}

func cardinalRay(sq Square, d Direction, occupied Bitboard, dims BDimensions) Bitboard {
	switch d {
	case North, South:
		return attacks.Global.FileAttacks(sq, occupied, dims).And(rayMask(sq, d, dims))
	case East, West:
		return attacks.Global.RankAttacks(sq, occupied, dims).And(rayMask(sq, d, dims))
	default:
		return attacks.Global.DiagonalAttacks(sq, occupied, dims).And(rayMask(sq, d, dims))
	}
}

// rayMask restricts a bidirectional (file/rank/diagonal) attack bitboard
// down to the one-sided direction d requested, by walking it directly -
// cheaper than it looks since board sizes here are small (<=16).
func rayMask(sq Square, d Direction, dims BDimensions) Bitboard {
	var result Bitboard
	cur := sq
	for {
		nxt := cur.To(d)
		if nxt == SqNone || !dims.InBounds(nxt) {
			break
		}
		result = result.PushSquare(nxt)
		cur = nxt
	}
	return result
}

func runWalk(sq Square, run SlideRun, occupied Bitboard, dims BDimensions) Bitboard {
	var result Bitboard
	cur := sq
	for _, delta := range run {
		nxt := cur.ToDelta(delta)
		if nxt == SqNone || !dims.InBounds(nxt) {
			break
		}
		result = result.PushSquare(nxt)
		if occupied.Has(nxt) {
			break
		}
		cur = nxt
	}
	return result
}
