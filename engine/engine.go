/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package engine is the public surface of spec.md §6: set_state/
// load_fen/make_move/undo/legal_moves/get_best_move/set_num_threads/
// zobrist_key/perft, all wrapping one *position.Position plus one
// search.Searcher. Nothing under internal/ depends on this package -
// it is the outermost layer, analogous to the teacher's uciInterface
// package but driven by the structured MoveInfo/GameState boundary
// types of §6 rather than the UCI text protocol.
package engine

import (
	"errors"
	"time"

	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/search"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

// ErrNoPosition is returned by any operation attempted before SetState
// or LoadFen has established a position.
var ErrNoPosition = errors.New("engine: no position loaded")

// ErrAtRoot is Undo's error when there is no played move left to take
// back (spec.md §6 undo() → ok|err_at_root).
var ErrAtRoot = errors.New("engine: already at the root position")

// DefaultTtSizeMB is the transposition table size a freshly constructed
// Engine allocates when the caller does not need a specific budget.
const DefaultTtSizeMB = 64

// Engine is the stateful factory spec.md §6 describes: set_state/
// load_fen mutate it in place, and every other operation acts on
// whatever position it currently holds.
type Engine struct {
	pos     *position.Position
	preset  variant.Preset
	mg      *movegen.Movegen
	search  *search.Searcher
	threads int

	played []Move
}

// New builds an Engine with no position loaded yet; call SetState or
// LoadFen before any other operation.
func New(ttSizeMB, threads int) *Engine {
	if threads < 1 {
		threads = 1
	}
	return &Engine{
		mg:      movegen.NewMoveGen(),
		search:  search.NewSearcher(ttSizeMB, threads),
		threads: threads,
	}
}

// SetState installs gs as the current position, discarding any move
// history, per spec.md §6 set_state(GameState) → Position.
func (e *Engine) SetState(gs position.GameState, preset variant.Preset) *position.Position {
	e.pos = position.NewPositionFromGameState(gs)
	e.preset = preset
	e.played = nil
	return e.pos
}

// LoadFen parses fenStr against the named variant and installs the
// result as the current position, per spec.md §6 load_fen(str) →
// Position. The FEN parsing itself lives entirely in internal/fen; this
// method is the "via the FEN collaborator" boundary call.
func (e *Engine) LoadFen(fenStr, variantName string) (*position.Position, error) {
	preset, ok := variant.Lookup(variantName)
	if !ok {
		return nil, errors.New("engine: unknown variant " + variantName)
	}
	gs, err := fen.ParsePreset(fenStr, preset)
	if err != nil {
		return nil, err
	}
	return e.SetState(gs, preset), nil
}

// NewGame installs the named variant's own starting position, for
// callers that have no FEN to load (the CLI's default invocation).
func (e *Engine) NewGame(variantName string) (*position.Position, error) {
	preset, ok := variant.Lookup(variantName)
	if !ok {
		return nil, errors.New("engine: unknown variant " + variantName)
	}
	e.pos = position.NewPositionFromPreset(preset)
	e.preset = preset
	e.played = nil
	return e.pos, nil
}

// Position exposes the currently loaded position, or nil if none has
// been set yet.
func (e *Engine) Position() *position.Position {
	return e.pos
}

// ZobristKey returns the current position's zobrist key (spec.md §6
// zobrist_key() → u64).
func (e *Engine) ZobristKey() (Key, error) {
	if e.pos == nil {
		return 0, ErrNoPosition
	}
	return e.pos.ZobristKey(), nil
}

// Perft runs the legal-move counter of spec.md §6 perft(depth) → u64
// from the current position.
func (e *Engine) Perft(depth int) (uint64, error) {
	if e.pos == nil {
		return 0, ErrNoPosition
	}
	return movegen.Perft(e.pos, e.mg, depth), nil
}

// SetNumThreads changes the Lazy SMP worker count used by GetBestMove
// (spec.md §6 set_num_threads(n≥1)).
func (e *Engine) SetNumThreads(n int) {
	if n < 1 {
		n = 1
	}
	e.threads = n
	e.search.SetNumThreads(n)
}

// Undo reverts the most recently played move, per spec.md §6
// undo() → ok|err_at_root.
func (e *Engine) Undo() error {
	if e.pos == nil {
		return ErrNoPosition
	}
	if len(e.played) == 0 {
		return ErrAtRoot
	}
	e.pos.UnmakeMove()
	e.played = e.played[:len(e.played)-1]
	return nil
}

// GetBestMove runs one Lazy SMP search to maxDepth or maxSeconds,
// whichever comes first, per spec.md §6
// get_best_move(max_depth, max_seconds) → (MoveInfo, depth_reached) or
// err(Checkmate|Stalemate).
func (e *Engine) GetBestMove(maxDepth int, maxSeconds float64) (MoveInfo, int, error) {
	if e.pos == nil {
		return MoveInfo{}, 0, ErrNoPosition
	}
	legal := legalMoves(e.pos, e.mg)
	if legal.Len() == 0 {
		if e.pos.InCheck(e.pos.WhosTurn) {
			return MoveInfo{}, 0, errCheckmate
		}
		return MoveInfo{}, 0, errStalemate
	}

	deadline := time.Now().Add(time.Duration(maxSeconds * float64(time.Second)))
	result := e.search.Search(e.pos, search.Limits{MaxDepth: maxDepth, Deadline: deadline, Threads: e.threads})
	return toMoveInfo(result.BestMove), result.Depth, nil
}
