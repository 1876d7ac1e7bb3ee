/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/chesscore/internal/variant"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestZobristDeterministicAcrossInstances(t *testing.T) {
	a := NewPositionFromPreset(variant.Standard())
	b := NewPositionFromPreset(variant.Standard())
	assert.Equal(t, a.ZobristKey(), b.ZobristKey())
}

func TestMakeUnmakeRoundtripDoubleJump(t *testing.T) {
	pos := NewPositionFromPreset(variant.Standard())
	before := pos.ZobristKey()
	beforeOcc := pos.OccOrOutBounds

	from, to := SquareOf(4, 1), SquareOf(4, 3)
	mid := SquareOf(4, 2)
	mv := NewMove(from, to, mid, DoubleJump, PidNone)
	pos.MakeMove(mv)

	assert.Equal(t, Black, pos.WhosTurn)
	assert.Equal(t, mid, pos.EpSquare())
	assert.NotEqual(t, before, pos.ZobristKey())

	pos.UnmakeMove()
	assert.Equal(t, White, pos.WhosTurn)
	assert.Equal(t, before, pos.ZobristKey())
	assert.Equal(t, beforeOcc, pos.OccOrOutBounds)
	assert.Equal(t, SqNone, pos.EpSquare())
}

func minimalPreset(start []variant.Placement) variant.Preset {
	std := variant.Standard()
	return variant.Preset{
		Name:      "test",
		Dims:      std.Dims,
		PieceDefs: std.PieceDefs,
		Start:     start,
		Rules:     std.Rules,
	}
}

func TestMakeUnmakeRoundtripCapture(t *testing.T) {
	rookSq := SquareOf(0, 0)
	knightSq := SquareOf(0, 5)
	p := minimalPreset([]variant.Placement{
		{Id: variant.PidKing, Player: White, Square: SquareOf(4, 0)},
		{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
		{Id: variant.PidRook, Player: White, Square: rookSq},
		{Id: variant.PidKnight, Player: Black, Square: knightSq},
	})
	pos := NewPositionFromPreset(p)
	before := pos.ZobristKey()
	beforeOcc := pos.OccOrOutBounds

	mv := NewMove(rookSq, knightSq, knightSq, Capture, PidNone)
	pos.MakeMove(mv)

	id, ok := pos.Pieces[Black].AtSquare(knightSq)
	assert.False(t, ok)
	_ = id
	rid, ok := pos.Pieces[White].AtSquare(knightSq)
	assert.True(t, ok)
	assert.Equal(t, variant.PidRook, rid)

	pos.UnmakeMove()
	assert.Equal(t, before, pos.ZobristKey())
	assert.Equal(t, beforeOcc, pos.OccOrOutBounds)
	_, ok = pos.Pieces[White].AtSquare(rookSq)
	assert.True(t, ok)
	_, ok = pos.Pieces[Black].AtSquare(knightSq)
	assert.True(t, ok)
}

func TestMakeUnmakeRoundtripCastle(t *testing.T) {
	kingSq := SquareOf(4, 0)
	rookSq := SquareOf(7, 0)
	p := minimalPreset([]variant.Placement{
		{Id: variant.PidKing, Player: White, Square: kingSq},
		{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
		{Id: variant.PidRook, Player: White, Square: rookSq},
	})
	pos := NewPositionFromPreset(p)
	before := pos.ZobristKey()
	beforeOcc := pos.OccOrOutBounds

	to := SquareOf(6, 0)
	mv := NewMove(kingSq, to, rookSq, KingsideCastle, PidNone)
	pos.MakeMove(mv)

	_, ok := pos.Pieces[White].AtSquare(to)
	assert.True(t, ok)
	_, ok = pos.Pieces[White].AtSquare(SquareOf(5, 0))
	assert.True(t, ok, "rook lands adjacent to king's destination")
	_, ok = pos.Pieces[White].AtSquare(rookSq)
	assert.False(t, ok)

	pos.UnmakeMove()
	assert.Equal(t, before, pos.ZobristKey())
	assert.Equal(t, beforeOcc, pos.OccOrOutBounds)
	_, ok = pos.Pieces[White].AtSquare(kingSq)
	assert.True(t, ok)
	_, ok = pos.Pieces[White].AtSquare(rookSq)
	assert.True(t, ok)
}

func TestMakeUnmakeRoundtripPromotion(t *testing.T) {
	from := SquareOf(0, 6)
	to := SquareOf(0, 7)
	p := minimalPreset([]variant.Placement{
		{Id: variant.PidKing, Player: White, Square: SquareOf(4, 0)},
		{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
		{Id: variant.PidPawnWhite, Player: White, Square: from},
	})
	pos := NewPositionFromPreset(p)
	before := pos.ZobristKey()

	mv := NewMove(from, to, to, Promotion, variant.PidQueen)
	pos.MakeMove(mv)

	id, ok := pos.Pieces[White].AtSquare(to)
	assert.True(t, ok)
	assert.Equal(t, variant.PidQueen, id)

	pos.UnmakeMove()
	assert.Equal(t, before, pos.ZobristKey())
	id, ok = pos.Pieces[White].AtSquare(from)
	assert.True(t, ok)
	assert.Equal(t, variant.PidPawnWhite, id)
}

func TestInCheckSymmetry(t *testing.T) {
	whiteKing := SquareOf(4, 0)
	p := minimalPreset([]variant.Placement{
		{Id: variant.PidKing, Player: White, Square: whiteKing},
		{Id: variant.PidKing, Player: Black, Square: SquareOf(4, 7)},
		{Id: variant.PidRook, Player: Black, Square: SquareOf(4, 6)},
	})
	pos := NewPositionFromPreset(p)
	assert.True(t, pos.InCheck(White))
	assert.False(t, pos.InCheck(Black))
}

func TestAtomicExplosionRoundtrip(t *testing.T) {
	atomic := variant.Atomic()
	queenSq := SquareOf(0, 4)
	knightSq := SquareOf(1, 4)
	blackKingSq := SquareOf(2, 4)
	p := variant.Preset{
		Name:      "test-atomic",
		Dims:      atomic.Dims,
		PieceDefs: atomic.PieceDefs,
		Rules:     atomic.Rules,
		Start: []variant.Placement{
			{Id: variant.PidKing, Player: White, Square: SquareOf(4, 0)},
			{Id: variant.PidKing, Player: Black, Square: blackKingSq},
			{Id: variant.PidQueen, Player: White, Square: queenSq},
			{Id: variant.PidKnight, Player: Black, Square: knightSq},
		},
	}
	pos := NewPositionFromPreset(p)
	before := pos.ZobristKey()
	beforeOcc := pos.OccOrOutBounds

	mv := NewMove(queenSq, knightSq, knightSq, Capture, PidNone)
	pos.MakeMove(mv)

	// the queen itself and the adjacent black king both explode
	_, ok := pos.Pieces[White].AtSquare(knightSq)
	assert.False(t, ok)
	assert.Equal(t, SqNone, pos.Pieces[Black].LeaderSquare())

	pos.UnmakeMove()
	assert.Equal(t, before, pos.ZobristKey())
	assert.Equal(t, beforeOcc, pos.OccOrOutBounds)
	_, ok = pos.Pieces[White].AtSquare(queenSq)
	assert.True(t, ok)
	_, ok = pos.Pieces[Black].AtSquare(knightSq)
	assert.True(t, ok)
	assert.Equal(t, blackKingSq, pos.Pieces[Black].LeaderSquare())
}

func TestRepetitionCount(t *testing.T) {
	pos := NewPositionFromPreset(variant.Standard())
	key := pos.ZobristKey()
	assert.Equal(t, 1, pos.RepetitionCount())

	mv1 := NewMove(SquareOf(1, 0), SquareOf(2, 2), SquareOf(2, 2), Quiet, PidNone)
	mv2 := NewMove(SquareOf(1, 7), SquareOf(2, 5), SquareOf(2, 5), Quiet, PidNone)
	pos.MakeMove(mv1)
	pos.MakeMove(mv2)
	back1 := NewMove(SquareOf(2, 2), SquareOf(1, 0), SquareOf(1, 0), Quiet, PidNone)
	back2 := NewMove(SquareOf(2, 5), SquareOf(1, 7), SquareOf(1, 7), Quiet, PidNone)
	pos.MakeMove(back1)
	pos.MakeMove(back2)

	assert.Equal(t, key, pos.ZobristKey())
	assert.Equal(t, 2, pos.RepetitionCount())
}
