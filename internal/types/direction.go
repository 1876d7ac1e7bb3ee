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

// Direction is a square-index delta for one of the 8 cardinal/diagonal
// directions on a 16-wide board.
type Direction int

const (
	North     Direction = 16
	South     Direction = -16
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = 17
	Southwest Direction = -17
	Northwest Direction = 15
	Southeast Direction = -15
)

// Delta is a free-form (dx,dy) offset used by jump/slide pattern
// definitions; not bounded to the 8 cardinal directions.
type Delta struct {
	DX int
	DY int
}

// Offset returns the raw square-index delta of d for a board width of 16
// (the native addressing); used only where the 8 cardinal directions
// suffice (sliding rays). Jump/jump-capture/explosion deltas use Delta
// and Square.ToDelta instead since they are not restricted to rays.
func (d Direction) Offset() int {
	return int(d)
}

// ToDelta returns the square reached from sq by applying (dx,dy), or
// SqNone if the result would leave the 16x16 addressing grid. Callers
// additionally AND against BDimensions.Bounds to respect the actual
// board shape.
func (sq Square) ToDelta(d Delta) Square {
	f := int(sq.FileOf()) + d.DX
	r := int(sq.RankOf()) + d.DY
	if f < 0 || f > 15 || r < 0 || r > 15 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}
