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

// Package piece holds the declarative PieceDefinition value object and the
// per-player Piece runtime instance built from it, per spec.md §3/§4.3.
// There is no enum of built-in piece types at hot paths: move generation,
// evaluation and precomputation all reduce to tables indexed by
// PieceDefinition id and square.
package piece

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// SlideRun is an ordered sequence of (dx,dy) deltas walked in one
// direction until blocked - e.g. a knight-then-bishop "camel" compound,
// or simply a single repeated delta for a classical rook/bishop ray.
type SlideRun []Delta

// Definition describes how a piece type moves, independent of any one
// board size or player. Create with NewDefinition and the With* builders.
type Definition struct {
	Id                PieceId
	CharRep           rune
	IsLeader          bool
	CanCastle         bool
	IsCastleRook      bool
	ExplodesOnCapture bool
	ImmuneToExplosion bool

	// Translate (non-capture) movement.
	TranslateSlides    [8]bool // indexed by cardinalIndex(dir)
	TranslateJumps     []Delta
	TranslateSlideRuns []SlideRun

	// Attack (capture-only) movement.
	AttackSlides    [8]bool
	AttackJumps     []Delta
	AttackSlideRuns []SlideRun

	// PromotionSquares is the coordinate set (as a Bitboard, resolved
	// against the variant's board dimensions) from which this piece may
	// promote. PromoVals lists, per player, the permitted promotion
	// target ids.
	PromotionSquares Bitboard
	PromoVals        map[Color][]PieceId

	// DoubleJumpSquares is the coordinate set from which this piece may
	// generate a pawn-style double advance producing an en-passant
	// square.
	DoubleJumpSquares Bitboard

	WinSquares      Bitboard
	ExplosionDeltas []Delta
}

// NewDefinition returns a zero-value Definition with the given id/char,
// ready for the With* builders.
func NewDefinition(id PieceId, charRep rune) *Definition {
	return &Definition{
		Id:        id,
		CharRep:   charRep,
		PromoVals: map[Color][]PieceId{},
	}
}

// cardinalDirs lists the 8 directions in the fixed order used to index
// the TranslateSlides/AttackSlides arrays.
var cardinalDirs = [8]Direction{North, South, East, West, Northeast, Southwest, Northwest, Southeast}

// CardinalIndex returns the TranslateSlides/AttackSlides array index for
// direction d, or -1 if d is not one of the 8 cardinal directions.
func CardinalIndex(d Direction) int {
	for i, cd := range cardinalDirs {
		if cd == d {
			return i
		}
	}
	return -1
}

// WithTranslateSlide marks the given cardinal direction as a legal
// non-capture sliding direction.
func (d *Definition) WithTranslateSlide(dir Direction) *Definition {
	d.TranslateSlides[CardinalIndex(dir)] = true
	return d
}

// WithAttackSlide marks the given cardinal direction as a legal capture
// sliding direction.
func (d *Definition) WithAttackSlide(dir Direction) *Definition {
	d.AttackSlides[CardinalIndex(dir)] = true
	return d
}

// WithSlide marks dir as legal for both translate and attack moves -
// the common case for classical riders (rook/bishop/queen).
func (d *Definition) WithSlide(dir Direction) *Definition {
	return d.WithTranslateSlide(dir).WithAttackSlide(dir)
}

// WithJump adds delta to both the translate and capture jump lists - the
// common case for a knight-like leaper.
func (d *Definition) WithJump(delta Delta) *Definition {
	d.TranslateJumps = append(d.TranslateJumps, delta)
	d.AttackJumps = append(d.AttackJumps, delta)
	return d
}

// WithTranslateJump adds delta to the non-capture jump list only - used
// for e.g. a pawn's forward step.
func (d *Definition) WithTranslateJump(delta Delta) *Definition {
	d.TranslateJumps = append(d.TranslateJumps, delta)
	return d
}

// WithAttackJump adds delta to the capture jump list only - used for
// e.g. a pawn's diagonal capture.
func (d *Definition) WithAttackJump(delta Delta) *Definition {
	d.AttackJumps = append(d.AttackJumps, delta)
	return d
}

// hasAnyPromoVals reports whether any player has at least one
// permitted promotion target - used by the invariant check in
// Validate: "promotion_squares nonempty iff promo_vals nonempty".
func (d *Definition) hasAnyPromoVals() bool {
	for _, v := range d.PromoVals {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

// Validate checks the invariants of spec.md §3 that are local to one
// PieceDefinition (global invariants - unique ids, at most one leader
// per player - are checked by the owning PieceSet/Position).
func (d *Definition) Validate() error {
	if d.PromotionSquares.BbEmpty() == d.hasAnyPromoVals() {
		return errPromotionMismatch
	}
	return nil
}
