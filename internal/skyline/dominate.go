package skyline

import "sync/atomic"

// dominanceTests counts every call to Dominate across all engines in the
// process, for diagnostics (spec.md S:4.5: "Implementations SHOULD maintain
// a global counter of dominance tests"), mirroring sdis-skyline.cpp's static
// skyline::DT. Package-level rather than per-Engine because the original
// counter is itself process-wide, not per-cache.
var dominanceTests atomic.Uint64

// DominanceTestCount returns the number of Dominate calls made so far in
// this process.
func DominanceTestCount() uint64 {
	return dominanceTests.Load()
}

// Dominate reports whether p dominates q under minimization semantics:
// p[i] <= q[i] for every dimension, and p[i] < q[i] for at least one
// dimension. Equal tuples do not dominate each other (strict). A single pass
// bails out as soon as any p[i] > q[i] is found.
func Dominate(p, q Tuple) bool {
	dominanceTests.Add(1)
	strictlyLess := false
	for i := range p {
		switch {
		case p[i] > q[i]:
			return false
		case p[i] < q[i]:
			strictlyLess = true
		}
	}
	return strictlyLess
}
