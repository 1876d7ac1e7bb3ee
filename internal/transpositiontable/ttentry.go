/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package transpositiontable

import (
	"sync/atomic"

	. "github.com/frankkopp/chesscore/internal/types"
)

// ValueFlag tags what kind of bound a stored value represents, per
// spec.md §4.1's TT entry.
type ValueFlag uint8

const (
	FlagNull ValueFlag = iota
	FlagExact
	FlagAlpha
	FlagBeta
)

// rank orders flags for the "at least as informative" replacement test
// of spec.md §4.8: Exact beats Alpha/Beta beats Null.
func (f ValueFlag) rank() int {
	switch f {
	case FlagExact:
		return 2
	case FlagAlpha, FlagBeta:
		return 1
	default:
		return 0
	}
}

// entry is one lockless slot of a cluster. Its three words are only
// ever touched through sync/atomic: storedKey is original_key XOR
// moveWord XOR metaWord, per the Hyatt scheme of spec.md §4.8. A reader
// recomputes the XOR and compares against the key it queried with; a
// torn write between two racing threads fails this check with high
// probability and the entry is treated as a miss.
type entry struct {
	storedKey uint64
	moveWord  uint64
	metaWord  uint64
}

func packMeta(value Value, depth uint8, flag ValueFlag) uint64 {
	return uint64(uint32(value)) | uint64(depth)<<32 | uint64(flag)<<40
}

func unpackMeta(meta uint64) (value Value, depth uint8, flag ValueFlag) {
	value = Value(int32(uint32(meta)))
	depth = uint8(meta >> 32)
	flag = ValueFlag(uint8(meta >> 40))
	return
}

// Snapshot is a verified, torn-write-free copy of one TT entry.
type Snapshot struct {
	Move  Move
	Value Value
	Depth uint8
	Flag  ValueFlag
}

// load reads the entry and verifies it against key via the XOR check.
// It returns false on a verification failure or a Null-flagged entry.
func (e *entry) load(key Key) (Snapshot, bool) {
	storedKey := atomic.LoadUint64(&e.storedKey)
	moveWord := atomic.LoadUint64(&e.moveWord)
	metaWord := atomic.LoadUint64(&e.metaWord)
	if storedKey^moveWord^metaWord != uint64(key) {
		return Snapshot{}, false
	}
	value, depth, flag := unpackMeta(metaWord)
	if flag == FlagNull {
		return Snapshot{}, false
	}
	return Snapshot{Move: Move(moveWord), Value: value, Depth: depth, Flag: flag}, true
}

// sameKey reports whether the entry's stored words currently XOR back
// to key, without regard to its flag - unlike load, a Null-flagged
// entry still counts as "the same key" for Put's replacement decision.
func (e *entry) sameKey(key Key) bool {
	storedKey := atomic.LoadUint64(&e.storedKey)
	moveWord := atomic.LoadUint64(&e.moveWord)
	metaWord := atomic.LoadUint64(&e.metaWord)
	return storedKey^moveWord^metaWord == uint64(key)
}

// peekDepth reads the entry's depth without key verification, for the
// "evict the lowest-depth entry" replacement decision - a wrong guess
// here only costs replacement quality, never correctness, since reads
// are always re-verified via load.
func (e *entry) peekDepth() uint8 {
	_, depth, _ := unpackMeta(atomic.LoadUint64(&e.metaWord))
	return depth
}

// store writes a new entry. Words are written move, meta, then key last
// so that a reader racing the write sees a stale key mismatched against
// the already-updated move/meta words, or vice versa - either way the
// XOR check in load fails rather than returning torn data.
func (e *entry) store(key Key, mv Move, value Value, depth uint8, flag ValueFlag) {
	moveWord := uint64(mv)
	metaWord := packMeta(value, depth, flag)
	atomic.StoreUint64(&e.moveWord, moveWord)
	atomic.StoreUint64(&e.metaWord, metaWord)
	atomic.StoreUint64(&e.storedKey, uint64(key)^moveWord^metaWord)
}
