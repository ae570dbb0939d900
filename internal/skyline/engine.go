package skyline

import (
	"fmt"
	"log/slog"
	"time"
)

// Engine maintains the skyline of a sliding window of tuples, updated one
// arrival at a time (spec.md S:4.6, "Update driver"). An Engine is not safe
// for concurrent use; spec.md's Non-goals explicitly exclude parallel
// evaluation, so unlike codeGROOVE-dev/sfcache's MemoryCache, Engine carries
// no internal locking.
//
// Two constructors select the window discipline: NewCountWindow keeps the
// last W arrivals regardless of elapsed time; NewTimeWindow keeps every
// arrival at most windowSeconds old regardless of count. Both share this
// same Engine type and the same Arrive algorithm - only the tuple store
// (countStore vs timeStore) and the expiration rule differ, selected once at
// construction rather than mirroring sdis-cache.h's two separate
// WITH_TIME_WINDOW-gated classes.
type Engine struct {
	width int
	cfg   *config

	cstore *countStore
	tstore *timeStore

	indexes []*dimIndex
	tree    *dominanceTree

	entryScratch []dimEntry

	timed  bool // time-window mode, as opposed to count-window mode
	window float64

	warmed     bool
	firstStamp Stamp
	haveFirst  bool

	postWindowProcessed int64
	totalElapsed        time.Duration

	clock func() Stamp // time mode only; nil in count mode
	now   int64        // count mode's monotonic counter, unused in time mode

	logger *slog.Logger
}

// Clock supplies the current wall-clock stamp for a time-window Engine. Tests
// inject a deterministic Clock instead of relying on time.Now.
type Clock func() Stamp

// NewCountWindow builds an Engine that keeps exactly the last window
// arrivals (spec.md S:4.1 count mode). width is the tuple dimensionality;
// window must be positive.
func NewCountWindow(width, window int, opts ...Option) (*Engine, error) {
	if width <= 0 {
		return nil, fmt.Errorf("skyline: width must be positive, got %d", width)
	}
	if window <= 0 {
		return nil, fmt.Errorf("skyline: window must be positive, got %d", window)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	e := newEngine(width, cfg)
	e.cstore = newCountStore(width, window)
	return e, nil
}

// NewTimeWindow builds an Engine that keeps every arrival whose age is at
// most windowSeconds (spec.md S:4.1 time mode). clock supplies the stamp for
// each arrival in order; pass nil to use wall-clock time via time.Now.
func NewTimeWindow(width int, windowSeconds float64, clock Clock, opts ...Option) (*Engine, error) {
	if width <= 0 {
		return nil, fmt.Errorf("skyline: width must be positive, got %d", width)
	}
	if windowSeconds <= 0 {
		return nil, fmt.Errorf("skyline: windowSeconds must be positive, got %g", windowSeconds)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	e := newEngine(width, cfg)
	e.timed = true
	e.window = windowSeconds
	e.tstore = newTimeStore(width, cfg.cacheCapacity, cfg.blockShards, windowSeconds)
	if clock != nil {
		e.clock = clock
	} else {
		e.clock = func() Stamp { return Stamp(float64(time.Now().UnixNano()) / 1e9) }
	}
	return e, nil
}

func newEngine(width int, cfg *config) *Engine {
	indexes := make([]*dimIndex, width)
	for i := range indexes {
		indexes[i] = newDimIndex()
	}
	return &Engine{
		width:        width,
		cfg:          cfg,
		indexes:      indexes,
		tree:         newDominanceTree(cfg.sliceShards),
		entryScratch: make([]dimEntry, width),
		logger:       slog.Default(),
	}
}

// Result reports the outcome of processing one arrival.
type Result struct {
	Stamp     Stamp
	Dominated bool // true if the arrival was NOT added to the skyline
	PreWarmup bool // true while the window has not yet filled once
	Elapsed   time.Duration

	SkylineSize int
	WindowLen   int
	Count       int64 // post-warm-up tuples processed so far, inclusive
}

// MeanProcessingTime returns the accumulated processing time in seconds
// divided by the number of post-warm-up arrivals, or 0 if none have been
// processed yet. In count mode the accumulated time also includes the
// warm-up arrivals; in time mode it restarts at the warm-up transition.
func (e *Engine) MeanProcessingTime() float64 {
	if e.postWindowProcessed == 0 {
		return 0
	}
	return e.totalElapsed.Seconds() / float64(e.postWindowProcessed)
}

// Len returns the number of tuples currently held in the window.
func (e *Engine) Len() int {
	if e.timed {
		return e.tstore.size()
	}
	return e.cstore.size()
}

// SkylineSize returns the current skyline cardinality.
func (e *Engine) SkylineSize() int {
	return e.tree.size()
}

// SkylineTuples returns a snapshot of every tuple currently in the skyline,
// in no particular order.
func (e *Engine) SkylineTuples() []Tuple {
	keys := e.tree.keys()
	out := make([]Tuple, 0, len(keys))
	for _, s := range keys {
		tuple, ok := e.currentTuple(s)
		if !ok {
			continue
		}
		cp := make(Tuple, len(tuple))
		copy(cp, tuple)
		out = append(out, cp)
	}
	return out
}

// Done reports whether the configured post-warm-up tuple budget has been
// exhausted (spec.md S:6 POST_WINDOW_COUNT). A non-positive budget disables
// the limit.
func (e *Engine) Done() bool {
	if e.cfg.postWindowCount <= 0 {
		return false
	}
	return e.postWindowProcessed >= e.cfg.postWindowCount
}

// Arrive processes one incoming tuple: it expires any now-stale window
// members (recovering their dominance relationships with a local
// block-nested-loop pass), determines whether the new tuple is dominated,
// promotes or demotes skyline membership as needed, and finally records the
// tuple in the window (spec.md S:4.6).
func (e *Engine) Arrive(values Tuple) (Result, error) {
	if len(values) != e.width {
		return Result{}, fmt.Errorf("skyline: expected %d values, got %d", e.width, len(values))
	}
	start := time.Now()

	stamp := e.assignStamp()
	preWarmup := e.checkWarmup(stamp)

	for i, v := range values {
		e.entryScratch[i] = dimEntry{value: v, stamp: stamp}
	}

	for _, r := range e.expiringStamps(stamp) {
		e.recoverExpired(r)
	}

	dominated := e.insert(stamp, values, e.entryScratch)

	for i, idx := range e.indexes {
		idx.insert(e.entryScratch[i])
	}
	e.store(values, stamp, !dominated)

	elapsed := time.Since(start)
	e.totalElapsed += elapsed
	if !preWarmup {
		e.postWindowProcessed++
	}

	return Result{
		Stamp:       stamp,
		Dominated:   dominated,
		PreWarmup:   preWarmup,
		Elapsed:     elapsed,
		SkylineSize: e.tree.size(),
		WindowLen:   e.Len(),
		Count:       e.postWindowProcessed,
	}, nil
}

func (e *Engine) assignStamp() Stamp {
	if e.timed {
		return e.clock()
	}
	s := Stamp(e.now)
	e.now++
	return s
}

// checkWarmup reports whether stamp falls before the window has filled for
// the first time, flipping the one-way warmed latch on the arrival that
// fills it. In time mode the flip also rebases the running time totals to
// zero, mirroring rss-time.h's timer reset on the same transition; this
// implementation keeps the triggering tuple's own elapsed time in the fresh
// total rather than splitting it at the exact rebase instant, a deliberate
// simplification documented in DESIGN.md.
func (e *Engine) checkWarmup(stamp Stamp) bool {
	if e.warmed {
		return false
	}
	if !e.timed {
		window := e.cstore.window
		if int64(stamp) < int64(window) {
			return true
		}
		e.warmed = true
		return false
	}
	if !e.haveFirst {
		e.firstStamp = stamp
		e.haveFirst = true
		return true
	}
	if float64(stamp)-float64(e.firstStamp) <= e.window {
		return true
	}
	e.warmed = true
	e.totalElapsed = 0
	e.postWindowProcessed = 0
	return false
}

// expiringStamps returns the stamps that fall out of the window as of the
// arrival of stamp, in ascending order. Count mode expires at most one
// stamp per arrival (the slot this arrival's stamp overwrites); time mode
// may expire zero, one, or many (spec.md S:4.6 Step A).
func (e *Engine) expiringStamps(stamp Stamp) []Stamp {
	if e.timed {
		return e.tstore.expiredBefore(stamp)
	}
	window := e.cstore.window
	if int64(stamp) < int64(window) {
		return nil
	}
	r := stamp - Stamp(window)
	if !e.cstore.contains(r) {
		return nil
	}
	return []Stamp{r}
}

// recoverExpired implements spec.md S:4.6 Step A for a single expiring
// stamp r: drop r from every dimensional index, then - if r was a skyline
// key - re-derive skyline membership for everything r used to dominate via
// a local block-nested-loop pass, exactly as sdis-skyline.cpp's
// "skyline::remove" callers do in rss-count.h/rss-time.h.
func (e *Engine) recoverExpired(r Stamp) {
	tuple, ok := e.currentTuple(r)
	if !ok {
		e.logger.Warn("skyline: expiring stamp missing from cache during recovery", "stamp", r)
		e.finishExpire(r)
		return
	}
	rEntries := make([]dimEntry, e.width)
	for i, v := range tuple {
		rEntries[i] = dimEntry{value: v, stamp: r}
	}
	for i, idx := range e.indexes {
		idx.erase(rEntries[i])
	}

	if !e.tree.contains(r) {
		e.finishExpire(r)
		return
	}

	tail := e.tree.get(r)
	deal := make([]Stamp, 0, len(tail))

	for _, u := range tail {
		if u < r || !e.currentlyInWindow(u) {
			continue
		}
		deal = append(deal, u)

		uTuple, ok := e.currentTuple(u)
		if !ok {
			e.logger.Warn("skyline: dominance-tree tail referenced a missing tuple", "stamp", u)
			continue
		}
		uEntries := make([]dimEntry, e.width)
		for i, v := range uTuple {
			uEntries[i] = dimEntry{value: v, stamp: u}
		}

		dominatedU := false
		ld := lowerDimension(uEntries, e.indexes)
		e.indexes[ld].ascendWhileLE(uTuple[ld], func(c dimEntry) bool {
			if c.stamp == r || !e.isSkyline(c.stamp) {
				return false
			}
			cTuple, ok := e.currentTuple(c.stamp)
			if !ok {
				return false
			}
			if Dominate(cTuple, uTuple) {
				e.tree.append(c.stamp, u)
				dominatedU = true
				return true
			}
			return false
		})

		if !dominatedU {
			e.tree.add(u)
			e.setSkyline(u, true)
		}

		for _, w := range deal {
			if w == u || !e.isSkyline(w) {
				continue
			}
			wTuple, ok := e.currentTuple(w)
			if !ok {
				continue
			}
			if Dominate(uTuple, wTuple) {
				e.setSkyline(w, false)
				e.tree.move(w, u)
			}
		}
	}

	e.finishExpire(r)
}

func (e *Engine) finishExpire(r Stamp) {
	e.tree.remove(r)
	e.setSkyline(r, false)
	if e.timed {
		e.tstore.clean([]Stamp{r})
	}
}

// insert implements spec.md S:4.6 Step B: determine whether the arriving
// tuple at stamp is dominated by any current skyline member, and demote any
// current skyline member it dominates. It does not add the arriving tuple to
// the dimensional indexes or the tuple store - the caller does that afterward, once the
// arriving tuple can no longer collide with itself during the scans below.
func (e *Engine) insert(stamp Stamp, values Tuple, entries []dimEntry) bool {
	dominated := false

	ld := lowerDimension(entries, e.indexes)
	e.indexes[ld].ascendWhileLE(values[ld], func(c dimEntry) bool {
		if !e.isSkyline(c.stamp) {
			return false
		}
		cTuple, ok := e.currentTuple(c.stamp)
		if !ok {
			return false
		}
		switch {
		case Dominate(cTuple, values):
			e.tree.append(c.stamp, stamp)
			dominated = true
			return true
		case c.value == values[ld] && Dominate(values, cTuple):
			e.setSkyline(c.stamp, false)
			e.tree.move(c.stamp, stamp)
		}
		return false
	})

	if dominated {
		return true
	}

	e.tree.add(stamp)

	ud := upperDimension(entries, e.indexes)
	pivot := dimEntry{value: values[ud], stamp: stamp}

	e.indexes[ud].descendFrom(pivot, func(c dimEntry) bool {
		if c.value != values[ud] {
			return true
		}
		if !e.isSkyline(c.stamp) {
			return false
		}
		cTuple, ok := e.currentTuple(c.stamp)
		if ok && Dominate(values, cTuple) {
			e.setSkyline(c.stamp, false)
			e.tree.move(c.stamp, stamp)
		}
		return false
	})

	e.indexes[ud].ascendAfter(pivot, func(c dimEntry) bool {
		if !e.isSkyline(c.stamp) {
			return false
		}
		cTuple, ok := e.currentTuple(c.stamp)
		if ok && Dominate(values, cTuple) {
			e.setSkyline(c.stamp, false)
			e.tree.move(c.stamp, stamp)
		}
		return false
	})

	return false
}

func (e *Engine) currentTuple(stamp Stamp) (Tuple, bool) {
	if e.timed {
		return e.tstore.get(stamp)
	}
	return e.cstore.get(stamp)
}

func (e *Engine) currentlyInWindow(stamp Stamp) bool {
	if e.timed {
		return e.tstore.contains(stamp)
	}
	return e.cstore.contains(stamp)
}

// isSkyline reports current skyline membership. The dominance tree is the
// source of truth (spec.md Design Notes); the per-entry flag each store
// carries is a cached projection written by setSkyline alongside each tree
// change, and is not consulted here.
func (e *Engine) isSkyline(stamp Stamp) bool {
	return e.tree.contains(stamp)
}

func (e *Engine) setSkyline(stamp Stamp, v bool) {
	if e.timed {
		e.tstore.setSkylineFlag(stamp, v)
	} else {
		e.cstore.setSkylineFlag(stamp, v)
	}
}

func (e *Engine) store(values Tuple, stamp Stamp, isSkyline bool) {
	if e.timed {
		e.tstore.put(values, stamp, isSkyline)
		return
	}
	e.cstore.put(values, isSkyline)
}
