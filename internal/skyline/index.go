package skyline

import "github.com/google/btree"

// btreeDegree mirrors the degree launix-de/memcp uses for its own delta
// index (storage/index.go: btree.NewG[indexPair](8, ...)); a small degree
// keeps node splits cheap for the modest per-dimension cardinalities this
// engine deals with (bounded by the window size or cache capacity).
const btreeDegree = 8

// dimIndex is the per-dimension ordered set from spec.md S:4.2: a balanced
// ordered set of (value, stamp) entries supporting lower_bound/upper_bound,
// forward and reverse iteration from those positions, and O(log n)
// insert/erase. Backed by github.com/google/btree, the same ordered-set
// structure launix-de/memcp uses for its storage indexes.
type dimIndex struct {
	tree *btree.BTreeG[dimEntry]
}

func newDimIndex() *dimIndex {
	return &dimIndex{tree: btree.NewG(btreeDegree, entryLess)}
}

func (d *dimIndex) insert(e dimEntry) {
	d.tree.ReplaceOrInsert(e)
}

func (d *dimIndex) erase(e dimEntry) {
	d.tree.Delete(e)
}

func (d *dimIndex) len() int {
	return d.tree.Len()
}

func (d *dimIndex) min() (dimEntry, bool) {
	return d.tree.Min()
}

func (d *dimIndex) max() (dimEntry, bool) {
	return d.tree.Max()
}

// ascendWhileLE visits every entry in ascending order starting from the
// lowest value, stopping (without visiting) the first entry whose value
// exceeds limit. This is the "scan index entries from the lowest value
// upward while entry.value <= limit" pattern used throughout spec.md S:4.6.
func (d *dimIndex) ascendWhileLE(limit float64, visit func(dimEntry) (stop bool)) {
	d.tree.Ascend(func(e dimEntry) bool {
		if e.value > limit {
			return false
		}
		return !visit(e)
	})
}

// descendFrom visits entries in descending order starting from the greatest
// entry <= pivot (std::set::lower_bound(pivot) then reverse-iterate, per
// sdis-cache.cpp/rss-count.cpp's "upper_repeat" pass). Used for the
// equal-value reverse-dominance check on the upper side of an insertion.
func (d *dimIndex) descendFrom(pivot dimEntry, visit func(dimEntry) (stop bool)) {
	d.tree.DescendLessOrEqual(pivot, func(e dimEntry) bool {
		return !visit(e)
	})
}

// ascendAfter visits every entry strictly greater than pivot, in ascending
// order (std::set::upper_bound(pivot) then forward-iterate to end). Callers
// pass a pivot entry that is not itself present in the index (the tuple
// being inserted has not been added to its own indexes yet), so
// AscendGreaterOrEqual already yields upper_bound semantics.
func (d *dimIndex) ascendAfter(pivot dimEntry, visit func(dimEntry) (stop bool)) {
	d.tree.AscendGreaterOrEqual(pivot, func(e dimEntry) bool {
		return !visit(e)
	})
}
