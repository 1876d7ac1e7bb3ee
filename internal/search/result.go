/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package search

import (
	. "github.com/frankkopp/chesscore/internal/types"
)

// Result is one thread's (or the driver's merged) best finding, per
// spec.md §6's get_best_move(max_depth, max_seconds) -> (MoveInfo, depth_reached).
type Result struct {
	BestMove  Move
	BestValue Value
	Depth     int
	Nodes     uint64
	GameOver  bool
}
