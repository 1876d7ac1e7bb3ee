/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

func noMove() Move {
	return NewMove(SqNone, SqNone, SqNone, Null, PidNone)
}

func TestEvaluateStartPositionIsDeterministic(t *testing.T) {
	pos := position.NewPositionFromPreset(variant.Standard())
	assert.Equal(t, Evaluate(pos), Evaluate(pos), "deterministic for a fixed position")
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	std := variant.Standard()
	p := variant.Preset{
		Name:      "test",
		Dims:      std.Dims,
		PieceDefs: std.PieceDefs,
		Rules:     std.Rules,
		Start: []variant.Placement{
			{Id: variant.PidKing, Player: White, Square: SquareOf(4, 0)},
			{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
			{Id: variant.PidQueen, Player: White, Square: SquareOf(3, 0)},
		},
	}
	pos := position.NewPositionFromPreset(p)
	assert.Greater(t, int64(Evaluate(pos)), int64(0), "side to move with an extra queen should score positive")
}

func TestCanDoNullMoveNeedsMaterial(t *testing.T) {
	std := variant.Standard()
	bare := variant.Preset{
		Name:      "bare",
		Dims:      std.Dims,
		PieceDefs: std.PieceDefs,
		Rules:     std.Rules,
		Start: []variant.Placement{
			{Id: variant.PidKing, Player: White, Square: SquareOf(4, 0)},
			{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
		},
	}
	pos := position.NewPositionFromPreset(bare)
	assert.False(t, CanDoNullMove(pos))

	withRook := bare
	withRook.Start = append(withRook.Start, variant.Placement{Id: variant.PidRook, Player: White, Square: SquareOf(0, 0)})
	pos = position.NewPositionFromPreset(withRook)
	assert.True(t, CanDoNullMove(pos))
}

func TestScoreMoveOrdering(t *testing.T) {
	pos := position.NewPositionFromPreset(variant.Standard())
	var history [256][256]int32
	history[SquareOf(1, 0)][SquareOf(2, 2)] = 42

	quiet := NewMove(SquareOf(1, 0), SquareOf(2, 2), SquareOf(2, 2), Quiet, PidNone)
	assert.Equal(t, int32(42), ScoreMove(quiet, pos, noMove(), [2]Move{}, &history))

	killers := [2]Move{quiet, noMove()}
	assert.Equal(t, config.Settings.Eval.KillerScore, ScoreMove(quiet, pos, noMove(), killers, &history))

	pv := NewMove(SquareOf(0, 1), SquareOf(0, 3), SquareOf(0, 3), DoubleJump, PidNone)
	assert.Equal(t, config.Settings.Eval.PvMoveScore, ScoreMove(pv, pos, pv, [2]Move{}, &history))
}
