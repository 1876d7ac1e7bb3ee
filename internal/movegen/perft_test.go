/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestPerftStandardShallow(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		pos := position.NewPositionFromPreset(variant.Standard())
		mg := NewMoveGen()
		assert.Equal(t, c.nodes, Perft(pos, mg, c.depth), "depth %d", c.depth)
	}
}

func TestGenerateLegalMovesExcludesMovesIntoCheck(t *testing.T) {
	p := variant.Preset{
		Name:      "test",
		Dims:      variant.Standard().Dims,
		PieceDefs: variant.Standard().PieceDefs,
		Start: []variant.Placement{
			{Id: variant.PidKing, Player: White, Square: SquareOf(4, 0)},
			{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
			{Id: variant.PidRook, Player: Black, Square: SquareOf(0, 1)},
		},
		Rules: variant.Standard().Rules,
	}
	pos := position.NewPositionFromPreset(p)
	mg := NewMoveGen()
	legal := mg.GenerateLegalMoves(pos)
	for _, mv := range *legal {
		assert.NotEqual(t, Rank(1), mv.To().RankOf(), "king must not step onto the rook's rank")
	}
}
