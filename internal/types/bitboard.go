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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 256 bit vector, one bit per square of a board up to 16x16.
// Squares are indexed 0..255 with index = 16*y + x. The four uint64 limbs
// hold bits [0:64), [64:128), [128:192), [192:256) respectively.
type Bitboard [4]uint64

// BbZero is the empty bitboard.
var BbZero = Bitboard{}

// BbEmpty reports whether the bitboard has no bits set.
func (b Bitboard) BbEmpty() bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

func limbIdx(sq Square) (int, uint) {
	return int(sq >> 6), uint(sq & 63)
}

// PushSquare sets the bit for sq and returns the new bitboard.
func (b Bitboard) PushSquare(sq Square) Bitboard {
	l, s := limbIdx(sq)
	b[l] |= 1 << s
	return b
}

// PopSquare clears the bit for sq and returns the new bitboard.
func (b Bitboard) PopSquare(sq Square) Bitboard {
	l, s := limbIdx(sq)
	b[l] &^= 1 << s
	return b
}

// Has reports whether sq is set.
func (b Bitboard) Has(sq Square) bool {
	l, s := limbIdx(sq)
	return b[l]&(1<<s) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) + bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// Lsb returns the lowest set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	for i, limb := range b {
		if limb != 0 {
			return Square(i*64 + bits.TrailingZeros64(limb))
		}
	}
	return SqNone
}

// Msb returns the highest set square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	for i := 3; i >= 0; i-- {
		if b[i] != 0 {
			return Square(i*64 + 63 - bits.LeadingZeros64(b[i]))
		}
	}
	return SqNone
}

// PopLsb returns the lowest set square and the bitboard with that bit cleared.
func (b Bitboard) PopLsb() (Square, Bitboard) {
	sq := b.Lsb()
	if sq == SqNone {
		return SqNone, b
	}
	return sq, b.PopSquare(sq)
}

// And returns the bitwise AND of two bitboards.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b[0] & o[0], b[1] & o[1], b[2] & o[2], b[3] & o[3]}
}

// Or returns the bitwise OR of two bitboards.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b[0] | o[0], b[1] | o[1], b[2] | o[2], b[3] | o[3]}
}

// Xor returns the bitwise XOR of two bitboards.
func (b Bitboard) Xor(o Bitboard) Bitboard {
	return Bitboard{b[0] ^ o[0], b[1] ^ o[1], b[2] ^ o[2], b[3] ^ o[3]}
}

// Not returns the bitwise complement (all 256 bits flipped).
func (b Bitboard) Not() Bitboard {
	return Bitboard{^b[0], ^b[1], ^b[2], ^b[3]}
}

// AndNot returns b &^ o (bits of b not in o).
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b[0] &^ o[0], b[1] &^ o[1], b[2] &^ o[2], b[3] &^ o[3]}
}

// Equal reports whether the two bitboards hold the same bits.
func (b Bitboard) Equal(o Bitboard) bool {
	return b == o
}

// ShiftLeft shifts the whole 256 bit vector left by n bits (n in [0,256)),
// bits shifted out of bit 255 are lost.
func (b Bitboard) ShiftLeft(n uint) Bitboard {
	if n == 0 {
		return b
	}
	if n >= 256 {
		return Bitboard{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var r Bitboard
	for i := 3; i >= 0; i-- {
		srcIdx := i - int(limbShift)
		if srcIdx < 0 {
			continue
		}
		var v uint64
		if bitShift == 0 {
			v = b[srcIdx]
		} else {
			v = b[srcIdx] << bitShift
			if srcIdx-1 >= 0 {
				v |= b[srcIdx-1] >> (64 - bitShift)
			}
		}
		r[i] = v
	}
	return r
}

// ShiftRight shifts the whole 256 bit vector right by n bits (n in [0,256)),
// bits shifted out of bit 0 are lost.
func (b Bitboard) ShiftRight(n uint) Bitboard {
	if n == 0 {
		return b
	}
	if n >= 256 {
		return Bitboard{}
	}
	limbShift := n / 64
	bitShift := n % 64
	var r Bitboard
	for i := 0; i <= 3; i++ {
		srcIdx := i + int(limbShift)
		if srcIdx > 3 {
			continue
		}
		var v uint64
		if bitShift == 0 {
			v = b[srcIdx]
		} else {
			v = b[srcIdx] >> bitShift
			if srcIdx+1 <= 3 {
				v |= b[srcIdx+1] << (64 - bitShift)
			}
		}
		r[i] = v
	}
	return r
}

// OverflowMul performs a wrapping unsigned multiply of the two 256 bit
// magnitudes and returns the low 256 bits of the 512 bit product. Used by
// the Kindergarten-bitboards diagonal attack construction (see
// internal/attacks).
func (b Bitboard) OverflowMul(o Bitboard) Bitboard {
	// Schoolbook multiply of two 4-limb (limb 0 least significant)
	// 256 bit integers. Only the low 4 result limbs (256 bits) are kept,
	// matching a native wrapping multiply of a 256 bit unsigned integer.
	var acc [4]uint64
	for i := 0; i < 4; i++ {
		if b[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < 4; j++ {
			hi, lo := bits.Mul64(b[i], o[j])
			sum, c1 := bits.Add64(acc[i+j], lo, 0)
			sum, c2 := bits.Add64(sum, carry, 0)
			acc[i+j] = sum
			carry = hi + c1 + c2
		}
	}
	return Bitboard(acc)
}

// String renders the bitboard as a 16x16 grid, rank 15 (top) to rank 0.
func (b Bitboard) String() string {
	var sb strings.Builder
	for y := 15; y >= 0; y-- {
		for x := 0; x < 16; x++ {
			sq := SquareOf(File(x), Rank(y))
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
