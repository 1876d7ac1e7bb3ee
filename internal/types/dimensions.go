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

package types

import "fmt"

// BDimensions describes a (possibly non-rectangular) board shape: a
// width x height rectangle of up to 16x16 squares, with Bounds carrying
// a 1 bit for every square that is actually part of the board. Squares
// outside Bounds ("holes") may still have bits set elsewhere (e.g. in a
// piece's raw jump table) but are always masked off before use.
type BDimensions struct {
	Width  int
	Height int
	Bounds Bitboard
}

// NewRectangularDimensions builds a BDimensions for a plain w x h
// rectangle with no holes.
func NewRectangularDimensions(width, height int) BDimensions {
	if width < 1 || width > 16 || height < 1 || height > 16 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", width, height))
	}
	var bounds Bitboard
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bounds = bounds.PushSquare(SquareOf(File(x), Rank(y)))
		}
	}
	return BDimensions{Width: width, Height: height, Bounds: bounds}
}

// InBounds reports whether sq is a legal square of this board.
func (d BDimensions) InBounds(sq Square) bool {
	return sq.IsValid() && d.Bounds.Has(sq)
}

// Walls is the complement of Bounds restricted to the addressable 256
// squares; used as a permanent blocker set by sliding-move generation.
func (d BDimensions) Walls() Bitboard {
	return d.Bounds.Not()
}
