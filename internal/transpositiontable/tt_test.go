/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/chesscore/internal/types"
)

func TestNewTtTablePowerOfTwoClusters(t *testing.T) {
	tt := NewTtTable(1)
	assert.Greater(t, len(tt.clusters), 0)
	assert.Equal(t, uint64(len(tt.clusters)-1), tt.clusterMask, "cluster count must be a power of two")
}

func TestPutProbeRoundTrip(t *testing.T) {
	tt := NewTtTable(1)
	mv := NewMove(SquareOf(1, 1), SquareOf(1, 3), SquareOf(1, 3), DoubleJump, PidNone)
	tt.Put(Key(0xdeadbeef), mv, 5, 123, FlagExact)

	snap, ok := tt.Probe(Key(0xdeadbeef))
	assert.True(t, ok)
	assert.Equal(t, mv, snap.Move)
	assert.Equal(t, Value(123), snap.Value)
	assert.Equal(t, uint8(5), snap.Depth)
	assert.Equal(t, FlagExact, snap.Flag)
}

func TestProbeMissOnUnknownKey(t *testing.T) {
	tt := NewTtTable(1)
	_, ok := tt.Probe(Key(0x1234))
	assert.False(t, ok)
}

func TestProbeRejectsCorruptedEntry(t *testing.T) {
	tt := NewTtTable(1)
	mv := NewMove(SquareOf(1, 1), SquareOf(1, 3), SquareOf(1, 3), DoubleJump, PidNone)
	tt.Put(Key(0xabc), mv, 3, 10, FlagExact)

	c := &tt.clusters[tt.index(Key(0xabc))]
	for i := range c.entries {
		if _, ok := c.entries[i].load(Key(0xabc)); ok {
			// simulate a torn write: meta word updated without a matching key update
			c.entries[i].metaWord = packMeta(999, 3, FlagExact)
			break
		}
	}

	_, ok := tt.Probe(Key(0xabc))
	assert.False(t, ok, "a stored key that no longer XORs to the queried key must be rejected")
}

func TestPutSameKeyOverwritesOnlyWhenBetter(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(0x42)
	deep := NewMove(SquareOf(0, 1), SquareOf(0, 3), SquareOf(0, 3), DoubleJump, PidNone)
	shallow := NewMove(SquareOf(0, 1), SquareOf(0, 2), SquareOf(0, 2), Quiet, PidNone)

	tt.Put(key, deep, 10, 50, FlagExact)
	tt.Put(key, shallow, 2, 1, FlagAlpha)

	snap, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, deep, snap.Move, "a shallower, less informative entry must not replace a deeper one")

	better := NewMove(SquareOf(0, 1), SquareOf(0, 4), SquareOf(0, 4), Quiet, PidNone)
	tt.Put(key, better, 11, 60, FlagExact)
	snap, ok = tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, better, snap.Move)
	assert.Equal(t, uint8(11), snap.Depth)
}

func TestPutReplacesLowestDepthInClusterOnCollision(t *testing.T) {
	tt := NewTtTable(1)
	// force all four keys into the same cluster by only varying the
	// high bits, which index() masks out for a small (1 MB) table.
	base := uint64(1) << 40
	keys := [EntriesPerCluster]Key{Key(base), Key(2 * base), Key(3 * base), Key(4 * base)}
	for i, k := range keys {
		tt.Put(k, NewMove(SqNone, SqNone, SqNone, Null, PidNone), uint8(i+1), 0, FlagExact)
	}

	// the shallowest of the four (depth 1, keys[0]) should be evicted by
	// a fifth key landing in the same cluster with sufficient depth.
	newKey := Key(5 * base)
	tt.Put(newKey, NewMove(SqNone, SqNone, SqNone, Null, PidNone), 1, 0, FlagExact)

	_, stillThere := tt.Probe(keys[0])
	_, found := tt.Probe(newKey)
	assert.False(t, stillThere, "lowest-depth entry should have been evicted")
	assert.True(t, found)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(1), NewMove(SqNone, SqNone, SqNone, Null, PidNone), 3, 0, FlagExact)
	tt.Clear()
	_, ok := tt.Probe(Key(1))
	assert.False(t, ok)
	assert.Equal(t, 0, tt.Hashfull())
}

func TestResizeZeroClustersIsSafe(t *testing.T) {
	tt := NewTtTable(0)
	assert.Equal(t, 0, len(tt.clusters))
	_, ok := tt.Probe(Key(1))
	assert.False(t, ok)
	tt.Put(Key(1), NewMove(SqNone, SqNone, SqNone, Null, PidNone), 1, 0, FlagExact)
}

func TestString(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(1), NewMove(SqNone, SqNone, SqNone, Null, PidNone), 1, 0, FlagExact)
	tt.Probe(Key(1))
	assert.NotEmpty(t, tt.String())
}
