/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package search

import (
	"errors"
	"sort"
	"sync/atomic"
	"time"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/evaluator"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/transpositiontable"

	. "github.com/frankkopp/chesscore/internal/types"
)

// errTimeout unwinds the recursion when a thread's deadline has passed
// or its search generation has been cancelled, per spec.md §4.7 step 5
// and §5's cancellation rule. It never reaches a caller outside this
// package - thread.search recovers it into a best-effort result.
var errTimeout = errors.New("search: timeout")

// thread is the per-goroutine state of spec.md §4.7/§5: its own
// Position clone, killer/history tables and PV line. Nothing here is
// shared with other threads except tt and generation.
type thread struct {
	id  int
	pos *position.Position
	mg  *movegen.Movegen
	tt  *transpositiontable.TtTable

	killers [MaxDepth][2]Move
	history [256][256]int32
	pv      [MaxDepth]Move

	nodes           uint64
	originalDepth   int
	extensionsUsed  int
	deadline        time.Time
	generation      *uint64
	startGeneration uint64

	stats Statistics
}

func newThread(id int, pos *position.Position, tt *transpositiontable.TtTable, generation *uint64) *thread {
	return &thread{
		id:              id,
		pos:             pos,
		mg:              movegen.NewMoveGen(),
		tt:              tt,
		generation:      generation,
		startGeneration: atomic.LoadUint64(generation),
	}
}

// cancelled reports whether the driver has started a newer search while
// this thread is still mid-iteration, per spec.md §5's cancellation rule.
func (t *thread) cancelled() bool {
	return atomic.LoadUint64(t.generation) != t.startGeneration
}

// timedOut checks the deadline every NodeCheckInterval nodes, per
// spec.md §4.7 step 5.
func (t *thread) timedOut() bool {
	if t.nodes%config.Settings.Search.NodeCheckInterval != 0 {
		return false
	}
	return time.Now().After(t.deadline) || t.cancelled()
}

// search runs one complete iterative-deepening root search to depth
// maxDepth or until the deadline/cancellation fires, returning the best
// result found so far.
func (t *thread) search(maxDepth int, deadline time.Time) Result {
	t.deadline = deadline
	t.nodes = 0

	legalMoves := t.mg.GenerateLegalMoves(t.pos)
	if legalMoves.Len() == 0 {
		if t.pos.InCheck(t.pos.WhosTurn) {
			return Result{BestValue: -ValueMax, GameOver: true}
		}
		if t.pos.Rules.StalematedPlayerLoses {
			return Result{BestValue: -ValueMax, GameOver: true}
		}
		return Result{BestValue: ValueDraw, GameOver: true}
	}

	var best Result
	for depth := 1; depth <= maxDepth; depth++ {
		t.originalDepth = depth
		t.extensionsUsed = 0
		value, err := t.alphabeta(depth, 0, ValueMin, ValueMax, true)
		if err != nil {
			break
		}
		best = Result{BestMove: t.pv[0], BestValue: value, Depth: depth, Nodes: t.nodes}
		t.stats.CurrentSearchDepth = depth
		if t.cancelled() || time.Now().After(deadline) {
			break
		}
	}
	return best
}

// alphabeta implements spec.md §4.7's alpha-beta PVS with null-move
// pruning, LMR, check extension and TT cutoffs.
func (t *thread) alphabeta(depth, ply int, alpha, beta Value, doNull bool) (Value, error) {
	isPv := beta-alpha > 1
	t.nodes++

	// 1. Repetition draw.
	if t.pos.RepetitionCount() >= config.Settings.Search.RepetitionDraw {
		return ValueDraw, nil
	}

	// 2. Leader captured. HasLeader reports whether this side's variant
	// registers a leader type at all (false permanently for e.g. Horde's
	// White or Antichess); only LeaderSquare going empty means an actual
	// capture happened this game.
	us := t.pos.WhosTurn
	if t.pos.Pieces[us].HasLeader() && t.pos.Pieces[us].LeaderSquare() == SqNone {
		return GameOverScore + Value(ply), nil
	}

	// 3. TT probe.
	key := t.pos.ZobristKey()
	if snap, ok := t.tt.Probe(key); ok && int(snap.Depth) >= depth {
		switch snap.Flag {
		case transpositiontable.FlagExact:
			if !isPv {
				return clip(snap.Value, alpha, beta), nil
			}
		case transpositiontable.FlagBeta:
			if beta <= snap.Value {
				return beta, nil
			}
		case transpositiontable.FlagAlpha:
			if alpha >= snap.Value {
				return alpha, nil
			}
		}
	}

	// 4. Leaf: quiescence.
	if depth == 0 {
		value, err := t.quiescence(alpha, beta, ply)
		if err != nil {
			return 0, err
		}
		flag := transpositiontable.FlagExact
		switch {
		case value <= alpha:
			flag = transpositiontable.FlagAlpha
		case value >= beta:
			flag = transpositiontable.FlagBeta
		}
		t.tt.Put(key, MoveNone, 0, value, flag)
		return value, nil
	}

	// 5. Deadline check.
	if t.timedOut() {
		return 0, errTimeout
	}

	inCheck := t.pos.InCheck(us)

	// 6. Null-move pruning.
	if !isPv && doNull && depth > config.Settings.Search.NullMoveMinDepth &&
		evaluator.CanDoNullMove(t.pos) && !inCheck {
		t.pos.MakeMove(NewMove(SqNone, SqNone, SqNone, Null, PidNone))
		value, err := t.alphabeta(depth-1-config.Settings.Search.NullMoveReduction, ply+1, -beta, -beta+1, false)
		t.pos.UnmakeMove()
		if err != nil {
			return 0, err
		}
		if -value >= beta {
			t.stats.NullMoveCuts++
			return beta, nil
		}
	}

	pvMove := t.ttMove(key)
	moves := t.orderedMoves(pvMove, ply)

	var bestMove Move
	numLegal := 0
	for i := range moves {
		mv := moves[i]
		t.pos.MakeMove(mv)
		if t.pos.InCheck(us) {
			t.pos.UnmakeMove()
			continue
		}
		numLegal++

		childDepth := depth - 1
		if config.Settings.Search.UseCheckExtension && isPv && inCheck &&
			t.extensionsUsed < t.originalDepth*config.Settings.Search.MaxExtensionFactor {
			childDepth++
			t.extensionsUsed++
		}

		var value Value
		var err error
		switch {
		case numLegal == 1:
			value, err = t.negamax(childDepth, ply+1, -beta, -alpha)
		case config.Settings.Search.UseLmr && !mv.IsCapture() && !isPv && numLegal > config.Settings.Search.LmrMinLegal &&
			depth >= config.Settings.Search.LmrMinDepth && !inCheck:
			reduction := config.Settings.Search.LmrReduction
			if numLegal > config.Settings.Search.LmrDeeperLegal {
				reduction = config.Settings.Search.LmrDeepReduction
			}
			reducedDepth := childDepth - reduction
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			value, err = t.negamax(reducedDepth, ply+1, -alpha-1, -alpha)
			if err == nil && value > alpha {
				t.stats.LmrResearches++
				value, err = t.negamax(childDepth, ply+1, -beta, -alpha)
			} else {
				t.stats.LmrReductions++
			}
		default:
			value, err = t.negamax(childDepth, ply+1, -alpha-1, -alpha)
			if err == nil && value > alpha && value < beta {
				t.stats.PvsResearches++
				value, err = t.negamax(childDepth, ply+1, -beta, -alpha)
			}
		}
		t.pos.UnmakeMove()
		if err != nil {
			return 0, err
		}

		if value > alpha {
			if value >= beta {
				if !mv.IsCapture() {
					t.updateKillers(ply, mv)
					t.history[mv.From()][mv.To()] += int32(depth)
				}
				t.tt.Put(key, mv, uint8(depth), beta, transpositiontable.FlagBeta)
				t.stats.BetaCuts++
				return beta, nil
			}
			alpha = value
			bestMove = mv
		}
	}

	if numLegal == 0 {
		if inCheck {
			t.stats.Checkmates++
			return GameOverScore + Value(ply), nil
		}
		t.stats.Stalemates++
		if t.pos.Rules.StalematedPlayerLoses {
			return GameOverScore + Value(ply), nil
		}
		return ValueDraw, nil
	}

	if bestMove != MoveNone {
		t.tt.Put(key, bestMove, uint8(depth), alpha, transpositiontable.FlagExact)
		t.pv[ply] = bestMove
	} else {
		t.tt.Put(key, MoveNone, uint8(depth), alpha, transpositiontable.FlagAlpha)
	}
	return alpha, nil
}

// negamax recurses into alphabeta with flipped, negated bounds.
func (t *thread) negamax(depth, ply int, alpha, beta Value) (Value, error) {
	value, err := t.alphabeta(depth, ply, alpha, beta, true)
	if err != nil {
		return 0, err
	}
	return -value, nil
}

// quiescence implements spec.md §4.7's stand-pat capture search.
func (t *thread) quiescence(alpha, beta Value, ply int) (Value, error) {
	t.nodes++
	if t.timedOut() {
		return 0, errTimeout
	}

	standPat := evaluator.Evaluate(t.pos)
	if standPat >= beta {
		t.stats.StandpatCuts++
		return beta, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	us := t.pos.WhosTurn
	captures := t.mg.GenerateCaptures(t.pos)
	scored := make([]Move, captures.Len())
	for i := 0; i < captures.Len(); i++ {
		scored[i] = captures.At(i)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return evaluator.ScoreMove(scored[i], t.pos, MoveNone, [2]Move{}, &t.history) >
			evaluator.ScoreMove(scored[j], t.pos, MoveNone, [2]Move{}, &t.history)
	})

	for _, mv := range scored {
		t.pos.MakeMove(mv)
		if t.pos.InCheck(us) {
			t.pos.UnmakeMove()
			continue
		}
		value, err := t.quiescence(-beta, -alpha, ply+1)
		t.pos.UnmakeMove()
		if err != nil {
			return 0, err
		}
		value = -value
		if value >= beta {
			return beta, nil
		}
		if value > alpha {
			alpha = value
		}
	}
	return alpha, nil
}

// ttMove returns the move recorded for key in the TT, or MoveNone.
func (t *thread) ttMove(key Key) Move {
	if snap, ok := t.tt.Probe(key); ok {
		return snap.Move
	}
	return MoveNone
}

// orderedMoves returns this node's pseudo-legal moves sorted by
// evaluator.ScoreMove, per spec.md §4.6/§4.7.
func (t *thread) orderedMoves(pvMove Move, ply int) []Move {
	pseudo := t.mg.GeneratePseudoLegalMoves(t.pos, false)
	moves := make([]Move, pseudo.Len())
	for i := 0; i < pseudo.Len(); i++ {
		moves[i] = pseudo.At(i)
	}
	var killers [2]Move
	if ply < MaxDepth {
		killers = t.killers[ply]
	}
	sort.SliceStable(moves, func(i, j int) bool {
		return evaluator.ScoreMove(moves[i], t.pos, pvMove, killers, &t.history) >
			evaluator.ScoreMove(moves[j], t.pos, pvMove, killers, &t.history)
	})
	return moves
}

// updateKillers shifts mv into ply's killer slots, per spec.md §4.7's
// "update killers (non-captures only, shifted)".
func (t *thread) updateKillers(ply int, mv Move) {
	if ply >= MaxDepth {
		return
	}
	if t.killers[ply][0] == mv {
		return
	}
	t.killers[ply][1] = t.killers[ply][0]
	t.killers[ply][0] = mv
}

func clip(v, alpha, beta Value) Value {
	if v < alpha {
		return alpha
	}
	if v > beta {
		return beta
	}
	return v
}
