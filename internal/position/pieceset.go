/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package position holds the mutable board state - PieceSet, Position and
// PositionProperties - and the make/unmake logic of spec.md §3/§4.5.
package position

import (
	"github.com/frankkopp/chesscore/internal/piece"
	. "github.com/frankkopp/chesscore/internal/types"
)

// NoSlot marks "no piece" in PieceAtIndex and LeaderPieceIndex.
const NoSlot = -1

// PieceSet owns every Piece instance of one player, per spec.md §3.
type PieceSet struct {
	Player Color
	Dims   BDimensions

	Pieces []*piece.Piece

	// Occupied is the union of every member Piece's bitboard.
	Occupied Bitboard

	// PieceAtIndex maps a square to its slot in Pieces, or NoSlot.
	PieceAtIndex [MaxSquares]int

	// LeaderPieceIndex is the slot of the piece with IsLeader set, or
	// NoSlot if this player has no leader (antichess, or a horde side).
	LeaderPieceIndex int

	defSlot map[PieceId]int
}

// NewPieceSet builds an empty PieceSet ready for AddPiece.
func NewPieceSet(player Color, dims BDimensions) *PieceSet {
	ps := &PieceSet{Player: player, Dims: dims, LeaderPieceIndex: NoSlot, defSlot: map[PieceId]int{}}
	for i := range ps.PieceAtIndex {
		ps.PieceAtIndex[i] = NoSlot
	}
	return ps
}

// Register creates the runtime Piece for def (if not already present) and
// returns its slot index, without placing any piece on the board yet.
func (ps *PieceSet) Register(def *piece.Definition) int {
	if slot, ok := ps.defSlot[def.Id]; ok {
		return slot
	}
	p := piece.NewPiece(def, ps.Player, ps.Dims)
	slot := len(ps.Pieces)
	ps.Pieces = append(ps.Pieces, p)
	ps.defSlot[def.Id] = slot
	if def.IsLeader {
		ps.LeaderPieceIndex = slot
	}
	return slot
}

// SlotOf returns the Pieces index holding PieceId id, or NoSlot.
func (ps *PieceSet) SlotOf(id PieceId) int {
	if slot, ok := ps.defSlot[id]; ok {
		return slot
	}
	return NoSlot
}

// Piece returns the runtime Piece for a definition id, or nil if no
// definition with that id is registered in this set.
func (ps *PieceSet) Piece(id PieceId) *piece.Piece {
	slot := ps.SlotOf(id)
	if slot == NoSlot {
		return nil
	}
	return ps.Pieces[slot]
}

// AddPiece places an instance of id on sq, updating Occupied and
// PieceAtIndex. castleEligible marks the square's occupant as never
// having moved (for king/castle-rook squares at setup time).
func (ps *PieceSet) AddPiece(def *piece.Definition, sq Square, castleEligible bool) {
	slot := ps.Register(def)
	p := ps.Pieces[slot]
	p.Bitboard = p.Bitboard.PushSquare(sq)
	if castleEligible {
		p.CastleSquares = p.CastleSquares.PushSquare(sq)
	}
	ps.Occupied = ps.Occupied.PushSquare(sq)
	ps.PieceAtIndex[sq] = slot
}

// RemovePiece removes whatever piece instance occupies sq. Returns the
// PieceId removed and its pre-removal castle-eligibility, for the
// captures stack.
func (ps *PieceSet) RemovePiece(sq Square) (id PieceId, wasCastleEligible bool) {
	slot := ps.PieceAtIndex[sq]
	p := ps.Pieces[slot]
	wasCastleEligible = p.CastleSquares.Has(sq)
	p.Bitboard = p.Bitboard.PopSquare(sq)
	p.CastleSquares = p.CastleSquares.PopSquare(sq)
	ps.Occupied = ps.Occupied.PopSquare(sq)
	ps.PieceAtIndex[sq] = NoSlot
	return p.Def.Id, wasCastleEligible
}

// MovePiece relocates the occupant of from to to, preserving its
// castle-eligibility bit only if keepCastle is true (callers clear it on
// any real move and only keep it true during unmake).
func (ps *PieceSet) MovePiece(from, to Square, keepCastle bool) {
	slot := ps.PieceAtIndex[from]
	p := ps.Pieces[slot]
	p.Bitboard = p.Bitboard.PopSquare(from).PushSquare(to)
	wasCastle := p.CastleSquares.Has(from)
	p.CastleSquares = p.CastleSquares.PopSquare(from)
	if wasCastle && keepCastle {
		p.CastleSquares = p.CastleSquares.PushSquare(to)
	} else {
		p.CastleSquares = p.CastleSquares.PopSquare(to)
	}
	ps.Occupied = ps.Occupied.PopSquare(from).PushSquare(to)
	ps.PieceAtIndex[from] = NoSlot
	ps.PieceAtIndex[to] = slot
}

// AtSquare returns the PieceId occupying sq and true, or (0, false).
func (ps *PieceSet) AtSquare(sq Square) (PieceId, bool) {
	slot := ps.PieceAtIndex[sq]
	if slot == NoSlot {
		return 0, false
	}
	return ps.Pieces[slot].Def.Id, true
}

// LeaderSquare returns the square of this player's leader piece, or
// SqNone if it has none or it has been captured.
func (ps *PieceSet) LeaderSquare() Square {
	if ps.LeaderPieceIndex == NoSlot {
		return SqNone
	}
	return ps.Pieces[ps.LeaderPieceIndex].Bitboard.Lsb()
}

// HasLeader reports whether this player registered a leader definition.
func (ps *PieceSet) HasLeader() bool {
	return ps.LeaderPieceIndex != NoSlot
}

// IsEmpty reports whether this player has no pieces left on the board -
// the no-leader loss condition of spec.md §4.4.
func (ps *PieceSet) IsEmpty() bool {
	return ps.Occupied.BbEmpty()
}

// AttacksTo reports whether any member piece attacks sq given the full
// board occupancy. This realises spec.md §3's "inverse_attack... used to
// answer is square X attacked" requirement by direct enumeration over
// the (small, board-bounded) set of member pieces rather than a
// precomputed geometric-inverse table - see DESIGN.md.
func (ps *PieceSet) AttacksTo(sq Square, occupied Bitboard) bool {
	for _, p := range ps.Pieces {
		cur := p.Bitboard
		for {
			from, rest := cur.PopLsb()
			if from == SqNone {
				break
			}
			cur = rest
			if p.JumpCapture(from).Has(sq) {
				return true
			}
			if p.SlideAttacks(from, occupied).Has(sq) {
				return true
			}
		}
	}
	return false
}

// CastleEligible reports whether this player still has a king and a
// castle-rook both sitting on their respective castle-eligible squares.
func (ps *PieceSet) CastleEligible() bool {
	hasKing, hasRook := false, false
	for _, p := range ps.Pieces {
		onCastleSquare := !p.Bitboard.And(p.CastleSquares).BbEmpty()
		if !onCastleSquare {
			continue
		}
		if p.Def.CanCastle {
			hasKing = true
		}
		if p.Def.IsCastleRook {
			hasRook = true
		}
	}
	return hasKing && hasRook
}

// Clone returns a deep-enough copy for a per-thread Position clone: each
// Piece is copied by value, so its mutable Bitboard/CastleSquares fields
// and its precomputed tables live on the copy and threads never alias
// each other's board state; only the immutable Definition is shared by
// pointer.
func (ps *PieceSet) Clone() *PieceSet {
	out := &PieceSet{
		Player:           ps.Player,
		Dims:             ps.Dims,
		Occupied:         ps.Occupied,
		PieceAtIndex:     ps.PieceAtIndex,
		LeaderPieceIndex: ps.LeaderPieceIndex,
		defSlot:          map[PieceId]int{},
	}
	for id, slot := range ps.defSlot {
		out.defSlot[id] = slot
	}
	for _, p := range ps.Pieces {
		clone := *p
		out.Pieces = append(out.Pieces, &clone)
	}
	return out
}
