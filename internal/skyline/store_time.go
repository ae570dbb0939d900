package skyline

import "container/list"

// defaultCacheCapacity is the time-mode pool's default capacity (spec.md
// S:6 CACHE).
const defaultCacheCapacity = 1_000_000

// defaultBlockShards is the time-mode lookup map's default shard count
// (spec.md S:6 BLOCK).
const defaultBlockShards = 16

// poolEntry is one cell of a timeStore's bounded pool.
type poolEntry struct {
	values  Tuple
	stamp   Stamp
	skyline bool
}

// timeStore is the time-mode tuple store (spec.md S:4.1): a bounded pool
// with a free list and a FIFO list of occupied cells ordered by stamp;
// lookup by stamp uses a sharded hash map over floor(stamp) mod BLOCK to
// limit per-bucket size. The free-list/occupied-list pairing mirrors the
// map+container/list.List pattern Krishna8167-tempuscache uses for its own
// LRU bookkeeping (cache.go), adapted here to FIFO-by-stamp instead of
// recency order, since arrival order and stamp order coincide.
type timeStore struct {
	width    int
	capacity int
	block    int
	window   float64 // seconds

	shards []map[Stamp]*list.Element
	order  *list.List // *poolEntry, oldest (smallest stamp) at the front
	free   []*poolEntry
	count  int
}

func newTimeStore(width, capacity, blockShards int, windowSeconds float64) *timeStore {
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	if blockShards <= 0 {
		blockShards = defaultBlockShards
	}
	shards := make([]map[Stamp]*list.Element, blockShards)
	for i := range shards {
		shards[i] = make(map[Stamp]*list.Element)
	}
	free := make([]*poolEntry, 0, capacity)
	for i := 0; i < capacity; i++ {
		free = append(free, &poolEntry{values: make(Tuple, width)})
	}
	return &timeStore{
		width:    width,
		capacity: capacity,
		block:    blockShards,
		window:   windowSeconds,
		shards:   shards,
		order:    list.New(),
		free:     free,
	}
}

func (s *timeStore) shard(stamp Stamp) int {
	n := int64(stamp) % int64(s.block)
	if n < 0 {
		n += int64(s.block)
	}
	return int(n)
}

// put stores values under stamp, evicting the oldest occupied cell first if
// the pool is exhausted. That eviction is a safety valve beyond spec.md's
// described behavior (which assumes expired()/clean() keep the pool under
// capacity every arrival) - it only fires if arrivals outpace window-based
// cleanup, and trades window-exactness for the documented memory bound.
func (s *timeStore) put(values Tuple, stamp Stamp, isSkyline bool) {
	if len(s.free) == 0 {
		if front := s.order.Front(); front != nil {
			ent := front.Value.(*poolEntry)
			s.order.Remove(front)
			delete(s.shards[s.shard(ent.stamp)], ent.stamp)
			s.count--
			s.free = append(s.free, ent)
		} else {
			s.free = append(s.free, &poolEntry{values: make(Tuple, s.width)})
		}
	}
	ent := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]
	copy(ent.values, values)
	ent.stamp = stamp
	ent.skyline = isSkyline
	elem := s.order.PushBack(ent)
	s.shards[s.shard(stamp)][stamp] = elem
	s.count++
}

func (s *timeStore) contains(stamp Stamp) bool {
	_, ok := s.shards[s.shard(stamp)][stamp]
	return ok
}

func (s *timeStore) get(stamp Stamp) (Tuple, bool) {
	elem, ok := s.shards[s.shard(stamp)][stamp]
	if !ok {
		return nil, false
	}
	return elem.Value.(*poolEntry).values, true
}

func (s *timeStore) skylineFlag(stamp Stamp) (bool, bool) {
	elem, ok := s.shards[s.shard(stamp)][stamp]
	if !ok {
		return false, false
	}
	return elem.Value.(*poolEntry).skyline, true
}

func (s *timeStore) setSkylineFlag(stamp Stamp, v bool) bool {
	elem, ok := s.shards[s.shard(stamp)][stamp]
	if !ok {
		return false
	}
	elem.Value.(*poolEntry).skyline = v
	return true
}

// expiredBefore returns the stamps older than (now - window), in ascending
// stamp (FIFO) order. now is the stamp of the tuple currently arriving,
// which is not yet stored, so it is supplied explicitly rather than tracked
// internally.
func (s *timeStore) expiredBefore(now Stamp) []Stamp {
	var out []Stamp
	for e := s.order.Front(); e != nil; e = e.Next() {
		ent := e.Value.(*poolEntry)
		if float64(now)-float64(ent.stamp) > s.window {
			out = append(out, ent.stamp)
		} else {
			break
		}
	}
	return out
}

// clean releases the cells for the given stamps back to the free list.
func (s *timeStore) clean(stamps []Stamp) {
	for _, stamp := range stamps {
		elem, ok := s.shards[s.shard(stamp)][stamp]
		if !ok {
			continue
		}
		s.order.Remove(elem)
		delete(s.shards[s.shard(stamp)], stamp)
		s.free = append(s.free, elem.Value.(*poolEntry))
		s.count--
	}
}

func (s *timeStore) size() int {
	return s.count
}
