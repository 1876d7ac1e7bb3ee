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

// PieceId identifies a PieceDefinition, unique across both players.
type PieceId uint32

// PidNone marks "no piece" / no promotion.
const PidNone PieceId = 0xFFFFFFFF

// MoveType is the exhaustive tag for what kind of move a Move encodes.
type MoveType uint8

const (
	Quiet MoveType = iota
	Capture
	KingsideCastle
	QueensideCastle
	Promotion
	PromotionCapture
	DoubleJump
	Null
)

// IsValid reports whether t is one of the known move types.
func (t MoveType) IsValid() bool {
	return t <= Null
}

// IsCapture reports whether the move type removes an enemy piece, i.e.
// is Capture or PromotionCapture. The kind values have no dedicated
// capture bit: QueensideCastle and Null also have their lowest bit set.
func (t MoveType) IsCapture() bool {
	return t == Capture || t == PromotionCapture
}

func (t MoveType) String() string {
	switch t {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	case Promotion:
		return "promotion"
	case PromotionCapture:
		return "promotion-capture"
	case DoubleJump:
		return "double-jump"
	case Null:
		return "null"
	default:
		return "?"
	}
}

// Move is a packed encoding of a single ply: from (9 bits), to (9 bits),
// target (9 bits, the square a capture removes a piece from - differs
// from `to` for en-passant, equals the rook's origin for castling and the
// square passed over for a DoubleJump),
// kind (4 bits) and the promotion PieceId (32 bits, PidNone if not a
// promotion). See spec.md §3 "Move".
type Move uint64

const (
	moveFromShift   = 0
	moveToShift     = 9
	moveTargetShift = 18
	moveKindShift   = 27
	movePromoShift  = 31
	moveSquareMask  = 0x1FF // 9 bits
	moveKindMask    = 0xF   // 4 bits
)

// MoveNone is the "no move" sentinel: both squares SqNone and kind Null,
// so MoveNone.IsNull() holds.
const MoveNone Move = Move(SqNone) | Move(SqNone)<<moveToShift | Move(Null)<<moveKindShift

// NewMove builds a Move from its fields.
func NewMove(from, to, target Square, kind MoveType, promo PieceId) Move {
	return Move(from&moveSquareMask) |
		Move(to&moveSquareMask)<<moveToShift |
		Move(target&moveSquareMask)<<moveTargetShift |
		Move(kind&moveKindMask)<<moveKindShift |
		Move(promo)<<movePromoShift
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m>>moveFromShift) & moveSquareMask
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(m>>moveToShift) & moveSquareMask
}

// Target returns the square a capture removes a piece from (equals To()
// except for en-passant), for castling the rook's origin square, and for
// a DoubleJump the square passed over (the new ep square).
func (m Move) Target() Square {
	return Square(m>>moveTargetShift) & moveSquareMask
}

// Kind returns the move's MoveType.
func (m Move) Kind() MoveType {
	return MoveType(m>>moveKindShift) & moveKindMask
}

// PromotionId returns the promoted-to PieceId, or PidNone if this move
// is not a Promotion/PromotionCapture.
func (m Move) PromotionId() PieceId {
	return PieceId(m >> movePromoShift)
}

// IsCapture reports whether this move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind().IsCapture()
}

// IsCastle reports whether this move is a king/rook castle.
func (m Move) IsCastle() bool {
	return m.Kind() == KingsideCastle || m.Kind() == QueensideCastle
}

// IsPromotion reports whether this move promotes a piece.
func (m Move) IsPromotion() bool {
	return m.Kind() == Promotion || m.Kind() == PromotionCapture
}

// IsNull reports whether this is the synthetic null move used for
// null-move pruning probes.
func (m Move) IsNull() bool {
	return m.Kind() == Null
}

func (m Move) String() string {
	if m.Kind() == Null {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() && m.PromotionId() != PidNone {
		s += fmt.Sprintf("=%d", m.PromotionId())
	}
	return s
}
