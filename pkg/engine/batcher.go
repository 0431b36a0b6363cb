package engine

import (
	"context"
	"sort"
	"sync"
	"time"
)

// CommitFunc receives the final dimensions for one node at flush time.
type CommitFunc func(nodeID string, width, height float64)

// ResizeBatcher coalesces a resize-drag's rapid dimension events into at
// most one commit per node per frame tick. Intermediate values are dropped;
// the latest submitted dimensions win.
//
// The batcher owns no timer itself: callers either drive [Flush] from their
// own frame callback or run [Run] with a frame interval. This keeps the
// batching policy independent of any particular frame API and makes tests
// trivial.
type ResizeBatcher struct {
	mu      sync.Mutex
	pending map[string][2]float64
	commit  CommitFunc
}

// NewResizeBatcher creates a batcher that delivers flushed dimensions to
// commit.
func NewResizeBatcher(commit CommitFunc) *ResizeBatcher {
	return &ResizeBatcher{
		pending: make(map[string][2]float64),
		commit:  commit,
	}
}

// Submit records the latest dimensions for a node. Safe for concurrent use.
func (b *ResizeBatcher) Submit(nodeID string, width, height float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[nodeID] = [2]float64{width, height}
}

// Flush commits all pending dimensions and clears the queue, returning the
// number of nodes committed. Nodes are committed in id order so a flush is
// deterministic. Commits run without the lock held, so a commit callback
// may Submit again (a drag continuing into the next frame).
func (b *ResizeBatcher) Flush() int {
	b.mu.Lock()
	if len(b.pending) == 0 {
		b.mu.Unlock()
		return 0
	}
	batch := b.pending
	b.pending = make(map[string][2]float64)
	b.mu.Unlock()

	ids := make([]string, 0, len(batch))
	for id := range batch {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := batch[id]
		b.commit(id, d[0], d[1])
	}
	return len(ids)
}

// Run flushes once per interval until ctx is cancelled, then performs a
// final flush so no committed drag state is lost on shutdown.
func (b *ResizeBatcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.Flush()
			return
		case <-ticker.C:
			b.Flush()
		}
	}
}
