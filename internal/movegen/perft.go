/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package movegen

import (
	"github.com/frankkopp/chesscore/internal/position"
)

// Perft counts the leaf nodes reachable from pos at exactly depth plies,
// the standard move-generator correctness harness (spec.md §8).
func Perft(pos *position.Position, mg *Movegen, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	legal := mg.GenerateLegalMoves(pos)
	if depth == 1 {
		return uint64(legal.Len())
	}
	var nodes uint64
	for _, mv := range *legal {
		pos.MakeMove(mv)
		nodes += Perft(pos, mg, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}
