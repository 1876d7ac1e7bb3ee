/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

func deadlineIn(d time.Duration) time.Time {
	return time.Now().Add(d)
}

func TestSearchReturnsLegalMoveFromStartPosition(t *testing.T) {
	s := NewSearcher(16, 1)
	pos := position.NewPositionFromPreset(variant.Standard())
	res := s.Search(pos, Limits{MaxDepth: 3, Deadline: deadlineIn(5 * time.Second)})
	assert.NotEqual(t, MoveNone, res.BestMove)
	assert.False(t, res.GameOver)
}

func TestSearchFindsFoolsMateInOne(t *testing.T) {
	s := NewSearcher(16, 1)
	pos := position.NewPositionFromPreset(variant.Standard())

	// 1. f3 e5 2. g4 -- leaves White's king open to Qh4#.
	playUCI(t, pos, "f2f3", "e7e5", "g2g4")

	res := s.Search(pos, Limits{MaxDepth: 2, Deadline: deadlineIn(5 * time.Second)})
	assert.Equal(t, squareFromAlgebraic("d8"), res.BestMove.From())
	assert.Equal(t, squareFromAlgebraic("h4"), res.BestMove.To())
}

func TestSearchDetectsCheckmate(t *testing.T) {
	s := NewSearcher(16, 1)
	pos := position.NewPositionFromPreset(variant.Standard())
	playUCI(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")

	res := s.Search(pos, Limits{MaxDepth: 2, Deadline: deadlineIn(5 * time.Second)})
	assert.True(t, res.GameOver)
	assert.True(t, res.BestValue.IsCheckMateValue())
}

func TestSearchMultiThreadReturnsMove(t *testing.T) {
	pos := position.NewPositionFromPreset(variant.Standard())

	single := NewSearcher(16, 1).Search(pos, Limits{MaxDepth: 2, Deadline: deadlineIn(5 * time.Second)})
	multi := NewSearcher(16, 4).Search(pos, Limits{MaxDepth: 2, Deadline: deadlineIn(5 * time.Second)})

	assert.False(t, single.GameOver)
	assert.False(t, multi.GameOver)
	assert.NotEqual(t, MoveNone, multi.BestMove)
}

func TestSearchHonoursDeadline(t *testing.T) {
	s := NewSearcher(16, 1)
	pos := position.NewPositionFromPreset(variant.Standard())
	start := time.Now()
	res := s.Search(pos, Limits{MaxDepth: MaxDepth, Deadline: deadlineIn(100 * time.Millisecond)})
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotEqual(t, MoveNone, res.BestMove)
}

// playUCI applies a sequence of long-algebraic moves (e.g. "e2e4") to
// pos, failing the test if any of them isn't found among the legal
// moves of its position.
func playUCI(t *testing.T, pos *position.Position, uci ...string) {
	t.Helper()
	mg := newThread(0, pos, nil, new(uint64)).mg
	for _, u := range uci {
		from := squareFromAlgebraic(u[0:2])
		to := squareFromAlgebraic(u[2:4])
		moves := mg.GenerateLegalMoves(pos)
		found := false
		for i := 0; i < moves.Len(); i++ {
			mv := moves.At(i)
			if mv.From() == from && mv.To() == to {
				pos.MakeMove(mv)
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("move %s not legal in current position", u)
		}
	}
}

func squareFromAlgebraic(s string) Square {
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	return SquareOf(file, rank)
}
