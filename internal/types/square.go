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

// Square represents one square on a board up to 16x16 (index = 16*y + x).
type Square uint16

// SqNone is the sentinel for "no square" / off-board.
const SqNone Square = 256

// MaxSquares is the number of addressable squares.
const MaxSquares = 256

// IsValid reports whether sq addresses one of the 256 squares.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file (x coordinate, 0..15) of sq.
func (sq Square) FileOf() File {
	return File(sq & 15)
}

// RankOf returns the rank (y coordinate, 0..15) of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 4)
}

// Bb returns the singleton bitboard with only sq's bit set.
func (sq Square) Bb() Bitboard {
	return Bitboard{}.PushSquare(sq)
}

// SquareOf returns the square for file f, rank r, or SqNone if out of range.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<4 + int(f))
}

// To returns the square one step from sq in direction d, or SqNone if that
// would leave the 16x16 addressing range (callers additionally mask against
// BDimensions.Bounds for non-rectangular / smaller boards).
func (sq Square) To(d Direction) Square {
	f := sq.FileOf()
	switch d {
	case North:
		if sq.RankOf() >= 15 {
			return SqNone
		}
	case South:
		if sq.RankOf() == 0 {
			return SqNone
		}
	case East, Northeast, Southeast:
		if f >= 15 {
			return SqNone
		}
	case West, Northwest, Southwest:
		if f == 0 {
			return SqNone
		}
	}
	switch d {
	case North, South, East, West, Northeast, Southeast, Southwest, Northwest:
		nsq := int(sq) + int(d)
		if nsq < 0 || nsq >= int(SqNone) {
			return SqNone
		}
		return Square(nsq)
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String renders the square in algebraic-style notation (file letter a..p,
// rank number 1..16), or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// MakeSquare parses the algebraic-style notation produced by String.
func MakeSquare(s string) Square {
	if len(s) < 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	rankStr := s[1:]
	var r int
	if _, err := fmt.Sscanf(rankStr, "%d", &r); err != nil {
		return SqNone
	}
	rank := Rank(r - 1)
	if !f.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(f, rank)
}
