/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package engine

import (
	"errors"

	. "github.com/frankkopp/chesscore/internal/types"
)

// Flag is the MakeMoveResult outcome tag of spec.md §6.
type Flag uint8

const (
	Ok Flag = iota
	IllegalMove
	Checkmate
	LeaderCaptured
	PieceInWinSquare
	CheckLimit
	Stalemate
	Repetition
)

func (f Flag) String() string {
	switch f {
	case Ok:
		return "ok"
	case IllegalMove:
		return "illegal_move"
	case Checkmate:
		return "checkmate"
	case LeaderCaptured:
		return "leader_captured"
	case PieceInWinSquare:
		return "piece_in_win_square"
	case CheckLimit:
		return "check_limit"
	case Stalemate:
		return "stalemate"
	case Repetition:
		return "repetition"
	default:
		return "?"
	}
}

// MakeMoveResult is spec.md §6's make_move return value: the outcome
// flag, the winner (ColorNone when the game continues or ends drawn),
// any squares an atomic explosion cleared, and the move's notation.
type MakeMoveResult struct {
	Flag            Flag
	Winner          Color
	ExplodedSquares []Square
	MoveNotation    string
}

// errCheckmate/errStalemate are GetBestMove's err(Checkmate|Stalemate)
// of spec.md §6; they never reach search control flow, only the public
// return value.
var (
	errCheckmate = errors.New("engine: side to move is checkmated")
	errStalemate = errors.New("engine: side to move is stalemated")
)

// LegalMoves enumerates the current position's legal moves in boundary
// form, narrowed to captures only when the active rules force capturing
// (spec.md §6 legal_moves() → list<MoveInfo>).
func (e *Engine) LegalMoves() ([]MoveInfo, error) {
	if e.pos == nil {
		return nil, ErrNoPosition
	}
	moves := legalMoves(e.pos, e.mg)
	out := make([]MoveInfo, moves.Len())
	for i := 0; i < moves.Len(); i++ {
		out[i] = toMoveInfo(moves.At(i))
	}
	return out, nil
}

// MakeMove validates mi against the current position's legal moves,
// plays it if legal, and reports the resulting game state per spec.md
// §6 make_move(MoveInfo) → MakeMoveResult.
func (e *Engine) MakeMove(mi MoveInfo) MakeMoveResult {
	if e.pos == nil {
		return MakeMoveResult{Flag: IllegalMove}
	}
	mv, ok := findMove(e.pos, e.mg, mi)
	if !ok {
		return MakeMoveResult{Flag: IllegalMove}
	}

	mover := e.pos.WhosTurn
	moverId, _ := e.pos.Pieces[mover].AtSquare(mv.From())
	moverDef := e.pos.DefinitionById(moverId)
	notation := mv.String()

	e.pos.MakeMove(mv)
	e.played = append(e.played, mv)

	result := MakeMoveResult{MoveNotation: notation}
	if moverDef != nil && moverDef.ExplodesOnCapture && mv.IsCapture() {
		result.ExplodedSquares = e.pos.LastCaptureSquares()
	}

	opponent := e.pos.WhosTurn

	// Leader captured: this side registers a leader type at all (false
	// permanently for e.g. Horde's pawn-only White or Antichess) and its
	// square has actually gone empty.
	if e.pos.Pieces[opponent].HasLeader() && e.pos.Pieces[opponent].LeaderSquare() == SqNone {
		result.Flag = LeaderCaptured
		result.Winner = mover
		return result
	}

	// Piece-in-win-square: the mover's own leader landed on one of its
	// configured win squares (king-of-the-hill's centre, racing-kings'
	// back rank).
	if !e.preset.Rules.WinPositions[mover].BbEmpty() {
		if leaderSq := e.pos.Pieces[mover].LeaderSquare(); leaderSq != SqNone &&
			e.preset.Rules.WinPositions[mover].Has(leaderSq) {
			result.Flag = PieceInWinSquare
			result.Winner = mover
			return result
		}
	}

	// Check-limit: bump the counter for whichever side is now in check,
	// and end the game once a variant-configured limit is reached
	// (three/five-check).
	if e.pos.InCheck(opponent) {
		e.pos.BumpTimesInCheck(opponent)
		if e.preset.Rules.CheckLimit > 0 && e.pos.TimesInCheck(opponent) >= e.preset.Rules.CheckLimit {
			result.Flag = CheckLimit
			result.Winner = mover
			return result
		}
	}

	if legal := legalMoves(e.pos, e.mg); legal.Len() == 0 {
		if e.pos.InCheck(opponent) {
			result.Flag = Checkmate
			result.Winner = mover
			return result
		}
		result.Flag = Stalemate
		result.Winner = ColorNone
		if e.preset.Rules.StalematedPlayerLoses {
			result.Winner = mover
		}
		return result
	}

	if e.preset.Rules.RepetitionDraw > 0 && e.pos.RepetitionCount() >= int(e.preset.Rules.RepetitionDraw) {
		result.Flag = Repetition
		result.Winner = ColorNone
		return result
	}

	result.Flag = Ok
	result.Winner = ColorNone
	return result
}
