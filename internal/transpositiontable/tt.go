/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

// Package transpositiontable implements the lockless cluster
// transposition table of spec.md §4.8: open addressing into a power-
// of-two number of clusters, each holding ENTRIES_PER_CLUSTER slots
// verified on read via a Hyatt XOR checksum rather than a mutex. Many
// search threads may Probe/Put concurrently; the table is the only
// state spec.md §5 allows them to share.
package transpositiontable

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/frankkopp/chesscore/internal/types"
)

const (
	// MB is the byte size used to interpret Resize's size argument.
	MB = 1024 * 1024

	// MaxSizeInMB bounds how large a single table this engine will
	// allocate.
	MaxSizeInMB = 65_536

	// EntriesPerCluster is ENTRIES_PER_CLUSTER of spec.md §4.8.
	EntriesPerCluster = 4
)

var out = message.NewPrinter(language.German)

type cluster struct {
	entries [EntriesPerCluster]entry
}

type ttStats struct {
	puts       uint64
	updates    uint64
	collisions uint64
	overwrites uint64
	probes     uint64
	hits       uint64
	misses     uint64
}

// TtTable is the transposition table. Probe/Put are safe for concurrent
// use by multiple search threads; Resize/Clear are not and must only
// be called while no search is in flight (spec.md §4.8/§5).
type TtTable struct {
	clusters    []cluster
	clusterMask uint64
	sizeInByte  uint64
	stats       ttStats
}

// NewTtTable creates a table sized to fit within sizeInMByte.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize reallocates the table to the largest power-of-two cluster
// count that fits within sizeInMByte, clearing all entries.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 0 {
		sizeInMByte = 0
	}

	clusterSize := uint64(unsafe.Sizeof(cluster{}))
	bytes := uint64(sizeInMByte) * MB

	var clusterCount uint64
	if bytes >= clusterSize {
		clusterCount = uint64(1) << uint64(math.Floor(math.Log2(float64(bytes/clusterSize))))
	}

	tt.clusters = make([]cluster, clusterCount)
	if clusterCount == 0 {
		tt.clusterMask = 0
	} else {
		tt.clusterMask = clusterCount - 1
	}
	tt.sizeInByte = clusterCount * clusterSize
	tt.stats = ttStats{}
}

// Clear drops every stored entry without changing the table's size.
func (tt *TtTable) Clear() {
	tt.clusters = make([]cluster, len(tt.clusters))
	tt.stats = ttStats{}
}

func (tt *TtTable) index(key Key) uint64 {
	return uint64(key) & tt.clusterMask
}

// Probe scans a key's cluster for a self-consistent, non-Null entry,
// per spec.md §4.8 "Retrieve".
func (tt *TtTable) Probe(key Key) (Snapshot, bool) {
	if len(tt.clusters) == 0 {
		return Snapshot{}, false
	}
	atomic.AddUint64(&tt.stats.probes, 1)
	c := &tt.clusters[tt.index(key)]
	for i := range c.entries {
		if snap, ok := c.entries[i].load(key); ok {
			atomic.AddUint64(&tt.stats.hits, 1)
			return snap, true
		}
	}
	atomic.AddUint64(&tt.stats.misses, 1)
	return Snapshot{}, false
}

// Put stores an entry per spec.md §4.8 "Insert policy": an entry
// already holding this key is overwritten only if the new one is
// equal-or-better (deeper, or same depth with at least as informative
// a flag); otherwise the cluster's lowest-depth entry is replaced, but
// only if the incoming depth is at least that low.
func (tt *TtTable) Put(key Key, mv Move, depth uint8, value Value, flag ValueFlag) {
	if len(tt.clusters) == 0 {
		return
	}
	atomic.AddUint64(&tt.stats.puts, 1)
	c := &tt.clusters[tt.index(key)]

	for i := range c.entries {
		e := &c.entries[i]
		if !e.sameKey(key) {
			continue
		}
		_, existingDepth, existingFlag := unpackMeta(atomic.LoadUint64(&e.metaWord))
		if depth > existingDepth || (depth == existingDepth && flag.rank() >= existingFlag.rank()) {
			atomic.AddUint64(&tt.stats.updates, 1)
			e.store(key, mv, value, depth, flag)
		}
		return
	}

	atomic.AddUint64(&tt.stats.collisions, 1)
	minIdx, minDepth := 0, c.entries[0].peekDepth()
	for i := 1; i < len(c.entries); i++ {
		if d := c.entries[i].peekDepth(); d < minDepth {
			minIdx, minDepth = i, d
		}
	}
	if depth >= minDepth {
		atomic.AddUint64(&tt.stats.overwrites, 1)
		c.entries[minIdx].store(key, mv, value, depth, flag)
	}
}

// Hashfull returns, in permill, how full the table appears - sampled
// cheaply over the first 1000 clusters rather than a tracked exact
// count, since entries are written by many threads without a shared
// counter (spec.md §4.8 makes no serialization guarantee to hang one
// on).
func (tt *TtTable) Hashfull() int {
	if len(tt.clusters) == 0 {
		return 0
	}
	sample := len(tt.clusters)
	if sample > 1000 {
		sample = 1000
	}
	var used int
	for i := 0; i < sample; i++ {
		for j := range tt.clusters[i].entries {
			if atomic.LoadUint64(&tt.clusters[i].entries[j].metaWord) != 0 {
				used++
			}
		}
	}
	return (used * 1000) / (sample * EntriesPerCluster)
}

// String reports size and hit-rate diagnostics.
func (tt *TtTable) String() string {
	probes := atomic.LoadUint64(&tt.stats.probes)
	hits := atomic.LoadUint64(&tt.stats.hits)
	misses := atomic.LoadUint64(&tt.stats.misses)
	return out.Sprintf(
		"TT: size %d MB clusters %d (%d%% full) puts %d updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d",
		tt.sizeInByte/MB, len(tt.clusters), tt.Hashfull()/10,
		atomic.LoadUint64(&tt.stats.puts), atomic.LoadUint64(&tt.stats.updates),
		atomic.LoadUint64(&tt.stats.collisions), atomic.LoadUint64(&tt.stats.overwrites),
		probes, hits, (hits*100)/(1+probes), misses)
}
