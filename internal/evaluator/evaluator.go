/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package evaluator scores a Position from the side-to-move's
// perspective and orders moves for search, per spec.md §4.6. Because
// pieces are declarative (internal/piece), evaluation is material + PST
// + castling bonus over whatever pieces a variant defines - there is no
// per-piece-type bonus table here, unlike a fixed six-piece evaluator.
package evaluator

import (
	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/position"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Evaluate returns a centipawn score for pos from the side-to-move's
// perspective: (own_material - enemy_material) + (own_pst - enemy_pst)
// + castling_bonus_delta (outside the endgame only), plus the configured
// tempo bonus Settings.Eval.Tempo.
func Evaluate(pos *position.Position) Value {
	us := pos.WhosTurn
	them := us.Flip()

	endgame := IsEndgame(pos)

	score := pos.TotalMaterial(us) - pos.TotalMaterial(them)
	score += pos.PstValue(us, endgame) - pos.PstValue(them, endgame)
	if !endgame {
		score += castlingBonusDelta(pos, us, them)
	}
	score += Value(config.Settings.Eval.Tempo)
	return score
}

// IsEndgame reports whether total non-leader material on the board is
// below the configured endgame threshold, per spec.md §4.6.
func IsEndgame(pos *position.Position) bool {
	total := pos.NonLeaderMaterial(White) + pos.NonLeaderMaterial(Black)
	return total < Value(config.Settings.Eval.EndgameMaterialThreshold)
}

// castlingBonusDelta rewards a player who has already castled over one
// who has not, and a player who can still castle over one who cannot.
func castlingBonusDelta(pos *position.Position, us, them Color) Value {
	bonus := Value(config.Settings.Eval.CastlingBonus)
	return castlingScore(pos, us, bonus) - castlingScore(pos, them, bonus)
}

func castlingScore(pos *position.Position, player Color, bonus Value) Value {
	switch {
	case pos.HasCastled(player):
		return bonus
	case pos.CastleEligible(player):
		return bonus / 2
	default:
		return 0
	}
}

// CanDoNullMove reports whether the side to move has enough material to
// make a null-move search meaningful, per spec.md §4.6
// can_do_null_move - at least NullMoveMinMaterial cp of non-leader
// material (a null move in a near-bare-king position can let zugzwang
// slip through the pruning).
func CanDoNullMove(pos *position.Position) bool {
	return pos.NonLeaderMaterial(pos.WhosTurn) >= Value(config.Settings.Eval.NullMoveMinMaterial)
}

// ScoreMove assigns a move-ordering score per spec.md §4.6: the TT best
// move sorts first, then captures by MVV-LVA, then killer moves, then
// history heuristic.
func ScoreMove(mv Move, pos *position.Position, pvMove Move, killers [2]Move, history *[256][256]int32) int32 {
	if !pvMove.IsNull() && mv == pvMove {
		return config.Settings.Eval.PvMoveScore
	}
	if mv.IsCapture() {
		return mvvLva(mv, pos)
	}
	for _, k := range killers {
		if k == mv {
			return config.Settings.Eval.KillerScore
		}
	}
	return history[mv.From()][mv.To()]
}

func mvvLva(mv Move, pos *position.Position) int32 {
	mover := pos.Pieces[pos.WhosTurn]
	opp := pos.Pieces[pos.WhosTurn.Flip()]

	var attackerValue, victimValue Value
	if attackerId, ok := mover.AtSquare(mv.From()); ok {
		attackerValue = mover.Piece(attackerId).MaterialScore
	}
	if victimId, ok := opp.AtSquare(mv.Target()); ok {
		victimValue = opp.Piece(victimId).MaterialScore
	}
	return config.Settings.Eval.MvvLvaBase + int32(victimValue) - int32(attackerValue)
}
