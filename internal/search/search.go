/*
 * chesscore - a configurable chess-variant engine
 *
 * MIT License
 */

package search

import (
	"math/bits"
	"sync"
	"sync/atomic"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/transpositiontable"
	. "github.com/frankkopp/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// Searcher is the Lazy SMP driver of spec.md §5: a shared transposition
// table plus a monotonic generation counter is all the state its worker
// threads share. Create with NewSearcher, reuse across calls to Search.
type Searcher struct {
	log  *logging.Logger
	slog *logging.Logger

	tt         *transpositiontable.TtTable
	threads    int
	running    *semaphore.Weighted
	generation uint64
	searchID   uint64

	lastResult Result
}

// NewSearcher allocates a Searcher with a ttSizeMB transposition table
// and threads Lazy SMP workers (spec.md §6's set_num_threads).
func NewSearcher(ttSizeMB, threads int) *Searcher {
	if threads < 1 {
		threads = 1
	}
	return &Searcher{
		log:     myLogging.GetLog(),
		slog:    myLogging.GetSearchLog(),
		tt:      transpositiontable.NewTtTable(ttSizeMB),
		threads: threads,
		running: semaphore.NewWeighted(1),
	}
}

// SetNumThreads changes the Lazy SMP worker count for future searches.
func (s *Searcher) SetNumThreads(threads int) {
	if threads < 1 {
		threads = 1
	}
	s.threads = threads
}

// ResizeTT reallocates the shared transposition table.
func (s *Searcher) ResizeTT(sizeMB int) {
	s.tt.Resize(sizeMB)
}

// ClearTT empties the shared transposition table, e.g. between games.
func (s *Searcher) ClearTT() {
	s.tt.Clear()
}

// Hashfull reports the shared transposition table's per-mille fill, per
// spec.md §6 diagnostics.
func (s *Searcher) Hashfull() int {
	return s.tt.Hashfull()
}

// Search runs one Lazy SMP search of pos to limits.MaxDepth or until
// limits.Deadline passes, returning the merged best result - spec.md
// §6's get_best_move(max_depth, max_seconds).
func (s *Searcher) Search(pos *position.Position, limits Limits) Result {
	_ = s.running.Acquire(nil, 1)
	defer s.running.Release(1)

	s.log.Debugf("starting search: maxDepth=%d threads=%d", limits.MaxDepth, limits.Threads)
	atomic.AddUint64(&s.generation, 1)

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}
	deadline := limits.Deadline
	if deadline.IsZero() {
		deadline = time.Now().Add(365 * 24 * time.Hour)
	}

	numThreads := limits.Threads
	if numThreads < 1 {
		numThreads = s.threads
	}

	results := make([]Result, numThreads)
	var wg sync.WaitGroup
	wg.Add(numThreads)
	for i := 0; i < numThreads; i++ {
		// Depth staggering: thread 0 iterates up to maxDepth; each
		// helper iterates from depth 1 up to a cap of 1 + trailingZeros
		// of a shared, ever-incrementing search id, clamped to
		// maxDepth. Helpers never search deeper than thread 0, and a
		// helper's cap is fixed for the whole call, not recomputed from
		// the other threads' progress.
		staggered := 1 + bits.TrailingZeros64(atomic.AddUint64(&s.searchID, 1))
		threadDepth := maxDepth
		if i > 0 {
			threadDepth = clampDepth(staggered, maxDepth)
		}

		go func(idx, depth int) {
			defer wg.Done()
			th := newThread(idx, pos.Clone(), s.tt, &s.generation)
			results[idx] = th.search(depth, deadline)
		}(i, threadDepth)
	}
	wg.Wait()

	best := results[0]
	var totalNodes uint64
	for _, r := range results {
		totalNodes += r.Nodes
		if r.Depth > best.Depth || (r.Depth == best.Depth && r.BestValue > best.BestValue) {
			best = r
		}
	}
	best.Nodes = totalNodes
	s.lastResult = best
	s.slog.Debugf("search done: depth=%d move=%s value=%s nodes=%d", best.Depth, best.BestMove, best.BestValue, best.Nodes)
	return best
}

// LastResult returns the most recently completed Search's result.
func (s *Searcher) LastResult() Result {
	return s.lastResult
}

func clampDepth(depth, maxDepth int) int {
	if depth > maxDepth {
		return maxDepth
	}
	if depth < 1 {
		return 1
	}
	return depth
}
