/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package engine

import (
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/moveslice"
	"github.com/frankkopp/chesscore/internal/position"

	. "github.com/frankkopp/chesscore/internal/types"
)

// MoveInfo is the boundary move representation of spec.md §6: a
// (from_xy, to_xy, promotion_id?) triple. Castling is conveyed by To
// being the rook's origin square (king-takes-rook convention) rather
// than the king's own destination - internal Move.To()/Move.Target()
// disagree on which of the two that is, so every MoveInfo conversion
// goes through boundaryTo/findMove below instead of touching
// Move.To() directly.
// PieceId 0 and PidNone are both accepted as "not a promotion" on input,
// since 0 is Go's natural zero value for a MoveInfo literal that never
// mentions Promotion at all; output always uses PidNone (toMoveInfo).
type MoveInfo struct {
	From      Square
	To        Square
	Promotion PieceId
}

func (mi MoveInfo) isPromotionSet() bool {
	return mi.Promotion != PidNone && mi.Promotion != 0
}

// boundaryTo returns the square a MoveInfo would report for mv: the
// rook's origin for castling moves, mv.To() otherwise.
func boundaryTo(mv Move) Square {
	if mv.IsCastle() {
		return mv.Target()
	}
	return mv.To()
}

// toMoveInfo converts an internal Move to its boundary representation.
func toMoveInfo(mv Move) MoveInfo {
	promo := PidNone
	if mv.IsPromotion() {
		promo = mv.PromotionId()
	}
	return MoveInfo{From: mv.From(), To: boundaryTo(mv), Promotion: promo}
}

// legalMoves returns the legal moves available in pos, narrowed to
// captures only when the active rule set forces capturing and at least
// one capture is available (spec.md antichess: "captures are mandatory
// whenever available"). Move generation itself stays variant-agnostic;
// this is the engine-level enforcement of GlobalRulesInternal.CapturingIsForced.
func legalMoves(pos *position.Position, mg *movegen.Movegen) *moveslice.MoveSlice {
	all := mg.GenerateLegalMoves(pos)
	if !pos.Rules.CapturingIsForced {
		return all
	}
	captures := moveslice.NewMoveSlice(all.Len())
	for i := 0; i < all.Len(); i++ {
		if all.At(i).IsCapture() {
			captures.PushBack(all.At(i))
		}
	}
	if captures.Len() == 0 {
		return all
	}
	return captures
}

// findMove resolves a boundary MoveInfo to the matching legal Move, or
// reports that no legal move matches it (spec.md §6 make_move's
// IllegalMove flag).
func findMove(pos *position.Position, mg *movegen.Movegen, mi MoveInfo) (Move, bool) {
	legal := legalMoves(pos, mg)
	for i := 0; i < legal.Len(); i++ {
		mv := legal.At(i)
		if mv.From() != mi.From || boundaryTo(mv) != mi.To {
			continue
		}
		if mv.IsPromotion() {
			if !mi.isPromotionSet() || mv.PromotionId() != mi.Promotion {
				continue
			}
		} else if mi.isPromotionSet() {
			continue
		}
		return mv, true
	}
	return MoveNone, false
}
