package skyline

// defaultSliceShards is the dominance tree's default shard count
// (spec.md S:6 SLICE, S:4.4 "Sharding: bucket keys by stamp mod SLICE").
const defaultSliceShards = 32

// dominanceTree maps a skyline stamp to the stamps it currently dominates
// (its "tail"). The tree is intentionally append-only per key: tails are
// never pruned as stamps expire or get re-promoted, because a reader always
// filters a tail against the live cache and skyline flags anyway (spec.md
// Design Notes, "Dominance-tree tails may reference expired or re-promoted
// stamps"). This keeps the hot insert path O(1) amortized.
//
// Keys are bucketed by stamp modulo the shard count to avoid one oversized
// map bucket, mirroring sdis-skyline.h's std::array<unordered_map, SLICE>.
type dominanceTree struct {
	shards []map[Stamp][]Stamp
	slices int
	count  int
}

func newDominanceTree(shards int) *dominanceTree {
	if shards <= 0 {
		shards = defaultSliceShards
	}
	t := &dominanceTree{
		shards: make([]map[Stamp][]Stamp, shards),
		slices: shards,
	}
	for i := range t.shards {
		t.shards[i] = make(map[Stamp][]Stamp)
	}
	return t
}

func (t *dominanceTree) slice(s Stamp) int {
	n := int64(s) % int64(t.slices)
	if n < 0 {
		n += int64(t.slices)
	}
	return int(n)
}

// add declares s a skyline key. No-op if s is already a key.
func (t *dominanceTree) add(s Stamp) {
	shard := t.shards[t.slice(s)]
	if _, ok := shard[s]; ok {
		return
	}
	shard[s] = nil
	t.count++
}

// append records that key currently dominates member, creating key as a
// skyline key first if necessary (mirrors sdis-skyline.cpp's append, which
// tolerates being called before a matching add).
func (t *dominanceTree) append(key, member Stamp) {
	shard := t.shards[t.slice(key)]
	if _, ok := shard[key]; !ok {
		t.count++
	}
	shard[key] = append(shard[key], member)
}

// contains reports whether s is currently a skyline key.
func (t *dominanceTree) contains(s Stamp) bool {
	_, ok := t.shards[t.slice(s)][s]
	return ok
}

// get returns a snapshot of s's tail, or nil if s is not a key. The caller
// must treat entries as possibly stale (expired or re-promoted) per the
// type's documented filtering contract.
func (t *dominanceTree) get(s Stamp) []Stamp {
	return t.shards[t.slice(s)][s]
}

// move transfers src and everything in src's tail into dst's tail, then
// deletes src as a key. Used when a current skyline tuple src becomes
// dominated by a newly-dominant tuple dst: every stamp that used to be
// "under" src now falls under dst. dst need not already be a skyline key -
// a tuple may demote an equal-value competitor before it has itself been
// declared a skyline key (spec.md S:4.6 Step B), so move creates dst on
// demand, mirroring the auto-vivifying operator[] sdis-skyline.cpp's move
// uses on its backing unordered_map.
func (t *dominanceTree) move(src, dst Stamp) {
	srcShard := t.shards[t.slice(src)]
	tail, ok := srcShard[src]
	if !ok {
		return
	}
	dstShard := t.shards[t.slice(dst)]
	if _, ok := dstShard[dst]; !ok {
		t.count++
	}
	dstTail := dstShard[dst]
	dstTail = append(dstTail, src)
	dstTail = append(dstTail, tail...)
	dstShard[dst] = dstTail
	delete(srcShard, src)
	t.count--
}

// remove deletes key s, used when s expires.
func (t *dominanceTree) remove(s Stamp) {
	shard := t.shards[t.slice(s)]
	if _, ok := shard[s]; !ok {
		return
	}
	delete(shard, s)
	t.count--
}

// size returns the number of skyline keys (the skyline cardinality).
func (t *dominanceTree) size() int {
	return t.count
}

// keys returns every current skyline key, in no particular order.
func (t *dominanceTree) keys() []Stamp {
	out := make([]Stamp, 0, t.count)
	for _, shard := range t.shards {
		for s := range shard {
			out = append(out, s)
		}
	}
	return out
}
