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

// Package attacks precomputes the sliding-piece attack primitives used by
// move generation: a classical per-rank lookup table (generalized to the
// engine's 16-wide ranks) and edge-walking rays for files and diagonals,
// per spec.md §4.2. The edge-walking variant is used for files/diagonals
// rather than a second Kindergarten-style overflow-multiply table - see
// DESIGN.md "Open Question decisions" item 2.
package attacks

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// Tables holds the precomputed slide-attack primitives. There is exactly
// one process-wide instance, built once in init().
type Tables struct {
	// rankSlides[file][16-bit rank occupancy] gives the attacked files
	// (as a 16-bit mask) for a slider on that file of some rank.
	rankSlides [16][65536]uint16

	leftMasks  [MaxSquares]Bitboard
	rightMasks [MaxSquares]Bitboard

	topMask, bottomMask, leftMask, rightMask Bitboard
}

// Global is the single process-wide attack table instance.
var Global = newTables()

func newTables() *Tables {
	t := &Tables{}
	t.initRankSlides()
	t.initEdgeMasks()
	t.initSideMasks()
	return t
}

func (t *Tables) initRankSlides() {
	for file := 0; file < 16; file++ {
		for occ := 0; occ < 65536; occ++ {
			var attacked uint16
			for x := file + 1; x < 16; x++ {
				attacked |= 1 << uint(x)
				if occ&(1<<uint(x)) != 0 {
					break
				}
			}
			for x := file - 1; x >= 0; x-- {
				attacked |= 1 << uint(x)
				if occ&(1<<uint(x)) != 0 {
					break
				}
			}
			t.rankSlides[file][occ] = attacked
		}
	}
}

func (t *Tables) initEdgeMasks() {
	for sq := Square(0); sq < MaxSquares; sq++ {
		f := int(sq.FileOf())
		r := int(sq.RankOf())
		var left, right Bitboard
		for x := 0; x < f; x++ {
			left = left.PushSquare(SquareOf(File(x), Rank(r)))
		}
		for x := f + 1; x < 16; x++ {
			right = right.PushSquare(SquareOf(File(x), Rank(r)))
		}
		t.leftMasks[sq] = left
		t.rightMasks[sq] = right
	}
}

func (t *Tables) initSideMasks() {
	for x := 0; x < 16; x++ {
		t.topMask = t.topMask.PushSquare(SquareOf(File(x), Rank(15)))
		t.bottomMask = t.bottomMask.PushSquare(SquareOf(File(x), Rank(0)))
	}
	for y := 0; y < 16; y++ {
		t.leftMask = t.leftMask.PushSquare(SquareOf(File(0), Rank(y)))
		t.rightMask = t.rightMask.PushSquare(SquareOf(File(15), Rank(y)))
	}
}

// rankOccupancy extracts the 16-bit occupancy word of sq's rank from a
// full-board occupancy bitboard.
func rankOccupancy(occupied Bitboard, sq Square) uint16 {
	r := int(sq.RankOf())
	limb := r / 4
	shift := uint((r % 4) * 16)
	return uint16(occupied[limb] >> shift)
}

// RankAttacks returns the sliding attack bitboard along sq's rank given
// board occupancy, masked to the board's bounds.
func (t *Tables) RankAttacks(sq Square, occupied Bitboard, dims BDimensions) Bitboard {
	occ := rankOccupancy(occupied, sq)
	attacked := t.rankSlides[sq.FileOf()][occ]
	r := int(sq.RankOf())
	var result Bitboard
	for x := 0; x < 16; x++ {
		if attacked&(1<<uint(x)) != 0 {
			result = result.PushSquare(SquareOf(File(x), Rank(r)))
		}
	}
	return result.And(dims.Bounds)
}

var (
	fileDirections     = []Direction{North, South}
	diagonalDirections = []Direction{Northeast, Southwest, Northwest, Southeast}
)

// walk follows sq in direction d, recording every visited square up to
// and including the first occupied square, per spec.md §4.2. It stops
// before the first out-of-bounds square, which is not recorded.
func walk(sq Square, d Direction, occupied Bitboard, dims BDimensions) Bitboard {
	var result Bitboard
	cur := sq
	for {
		nxt := cur.To(d)
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

// FileAttacks returns the sliding attack bitboard along sq's file.
func (t *Tables) FileAttacks(sq Square, occupied Bitboard, dims BDimensions) Bitboard {
	var result Bitboard
	for _, d := range fileDirections {
		result = result.Or(walk(sq, d, occupied, dims))
	}
	return result
}

// DiagonalAttacks returns the sliding attack bitboard along both
// diagonals through sq.
func (t *Tables) DiagonalAttacks(sq Square, occupied Bitboard, dims BDimensions) Bitboard {
	var result Bitboard
	for _, d := range diagonalDirections {
		result = result.Or(walk(sq, d, occupied, dims))
	}
	return result
}

// RayAttacksDelta walks a single arbitrary (dx,dy) delta repeatedly, for
// sliding-delta runs declared on a PieceDefinition that are not one of
// the 8 cardinal rays.
func RayAttacksDelta(sq Square, delta Delta, occupied Bitboard, dims BDimensions) Bitboard {
	var result Bitboard
	cur := sq
	for {
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
