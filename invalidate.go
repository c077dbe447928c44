package arbor

// DefaultFlushInterval is the batching window in milliseconds, one frame at
// 60Hz.
const DefaultFlushInterval = 16

// InvalidationBatcher coalesces invalidated rects within one event turn.
// Only containment is checked: a rect inside a pending rect is dropped, and
// pending rects inside a new rect are replaced by it. Partially overlapping
// rects are kept apart.
type InvalidationBatcher struct {
	rects     []Rect
	lastFlush uint64
	interval  uint64
	ticks     func() uint64
	sink      func(Rect)

	// stats for debug output
	added   int
	dropped int
}

// NewInvalidationBatcher creates a batcher that reads time from ticks (in
// milliseconds) and forwards flushed rects to sink. An interval of zero uses
// DefaultFlushInterval.
func NewInvalidationBatcher(ticks func() uint64, interval uint64, sink func(Rect)) *InvalidationBatcher {
	if interval == 0 {
		interval = DefaultFlushInterval
	}
	b := &InvalidationBatcher{ticks: ticks, interval: interval, sink: sink}
	if ticks != nil {
		b.lastFlush = ticks()
	}
	return b
}

// Add queues r. When more than the flush interval has passed since the last
// flush, the queue is flushed immediately.
func (b *InvalidationBatcher) Add(r Rect) {
	if r.IsEmpty() {
		return
	}
	b.added++
	b.insert(r)
	if b.ticks != nil && b.ticks()-b.lastFlush > b.interval {
		b.Flush()
	}
}

func (b *InvalidationBatcher) insert(r Rect) {
	var dropped int
	b.rects, dropped = CoalesceRect(b.rects, r)
	b.dropped += dropped
}

// CoalesceRect adds r to a pending list: r is discarded if a pending rect
// contains it, otherwise pending rects that r contains are removed and r is
// appended. It reuses the backing array of rects and reports how many rects
// were discarded. Platforms keeping their own repaint queue use it to apply
// the same rule as the batcher.
func CoalesceRect(rects []Rect, r Rect) ([]Rect, int) {
	for _, p := range rects {
		if p.ContainsRect(r) {
			return rects, 1
		}
	}
	dropped := 0
	kept := rects[:0]
	for _, p := range rects {
		if r.ContainsRect(p) {
			dropped++
			continue
		}
		kept = append(kept, p)
	}
	return append(kept, r), dropped
}

// Pending returns the queued rects. The slice is only valid until the next
// Add or Flush.
func (b *InvalidationBatcher) Pending() []Rect { return b.rects }

// Flush forwards every queued rect to the sink and clears the queue.
func (b *InvalidationBatcher) Flush() {
	if b.ticks != nil {
		b.lastFlush = b.ticks()
	}
	if len(b.rects) == 0 {
		return
	}
	rects := b.rects
	b.rects = nil
	if globalDebug {
		debugf("flush: %d rects (%d added, %d coalesced)", len(rects), b.added, b.dropped)
	}
	b.added, b.dropped = 0, 0
	if b.sink == nil {
		return
	}
	for _, r := range rects {
		b.sink(r)
	}
}

// SetInterval changes the flush interval in milliseconds.
func (b *InvalidationBatcher) SetInterval(ms uint64) {
	if ms == 0 {
		ms = DefaultFlushInterval
	}
	b.interval = ms
}
