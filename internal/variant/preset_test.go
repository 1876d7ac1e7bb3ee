/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestLookupKnownVariants(t *testing.T) {
	for _, name := range []string{"standard", "atomic", "horde", "antichess", "kingofthehill", "threecheck", "fivecheck", "racingkings"} {
		p, ok := Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.PieceDefs)
		assert.NotEmpty(t, p.Start)
	}
}

func TestLookupUnknownVariant(t *testing.T) {
	_, ok := Lookup("nonsense")
	assert.False(t, ok)
}

func TestStandardHasOneLeaderPerSide(t *testing.T) {
	p := Standard()
	var whiteLeaders, blackLeaders int
	for _, pl := range p.Start {
		for _, d := range p.PieceDefs {
			if d.Id == pl.Id && d.IsLeader {
				if pl.Player == White {
					whiteLeaders++
				} else {
					blackLeaders++
				}
			}
		}
	}
	assert.Equal(t, 1, whiteLeaders)
	assert.Equal(t, 1, blackLeaders)
}

func TestAntichessHasNoLeader(t *testing.T) {
	p := Antichess()
	for _, d := range p.PieceDefs {
		assert.False(t, d.IsLeader)
	}
	assert.True(t, p.Rules.CapturingIsForced)
	assert.True(t, p.Rules.StalematedPlayerLoses)
}

func TestAtomicPawnsImmune(t *testing.T) {
	p := Atomic()
	for _, d := range p.PieceDefs {
		immune := d.Id == PidPawnWhite || d.Id == PidPawnBlack
		assert.Equal(t, immune, d.ImmuneToExplosion)
		assert.True(t, d.ExplodesOnCapture)
		assert.Len(t, d.ExplosionDeltas, 8)
	}
}

func TestHordeWhiteHasNoKing(t *testing.T) {
	p := Horde()
	for _, pl := range p.Start {
		if pl.Player == White {
			assert.NotEqual(t, PidKing, pl.Id)
		}
	}
}

func TestKingOfTheHillSharedWinSquares(t *testing.T) {
	p := KingOfTheHill()
	assert.Equal(t, 4, p.Rules.WinPositions[White].PopCount())
	assert.True(t, p.Rules.WinPositions[White].Equal(p.Rules.WinPositions[Black]))
}

func TestNCheckLimits(t *testing.T) {
	assert.EqualValues(t, 3, ThreeCheck().Rules.CheckLimit)
	assert.EqualValues(t, 5, FiveCheck().Rules.CheckLimit)
}

func TestRacingKingsNoCastleRooks(t *testing.T) {
	p := RacingKings()
	for _, d := range p.PieceDefs {
		assert.False(t, d.IsCastleRook)
	}
}
