// Package skyline implements incremental skyline maintenance over a sliding
// window of multi-dimensional numeric tuples.
//
// ================================================================================
// ARCHITECTURAL OVERVIEW
// ================================================================================
//
// Engine combines four data structures, all keyed by Stamp (a monotonically
// increasing identifier assigned on arrival):
//
//  1. store   - stable storage for window-resident tuples (ring buffer in
//     count mode, free-list pool in time mode).
//  2. indexes - one balanced ordered set per dimension, giving O(log n)
//     lower_bound/upper_bound scans over (value, stamp) pairs.
//  3. tree    - the dominance tree: for every current skyline stamp, the list
//     of stamps it has ever been found to dominate ("tail").
//  4. bound estimator - picks, for an incoming or recovering tuple, the
//     dimension where it sits closest to the low or high end of that
//     dimension's current value range, to minimize scan length.
//
// ================================================================================
// CONCURRENCY MODEL
// ================================================================================
//
// None. The engine is driven by a single goroutine: Arrive is called once per
// input tuple, runs to completion (including any expirations), and the
// structures are consistent again before the next call. There is no internal
// locking and Engine is not safe for concurrent use - this mirrors the
// ingest loop the spec describes (one reader, one writer, no background
// workers).
//
// ================================================================================
// WINDOW MODES
// ================================================================================
//
// NewCountWindow builds an engine where the window is the last W arrivals;
// expiration is deterministic (stamp s expires when s+W arrives).
// NewTimeWindow builds an engine where the window is every tuple stamped
// within W seconds of the latest arrival; zero, one, or many tuples may
// expire per arrival.
package skyline

// Tuple is a fixed-width vector of floating point values. Its length (the
// dimensionality d) is fixed for the lifetime of an Engine.
type Tuple []float64

// Stamp uniquely and monotonically identifies an arrival within a run. In
// count mode it is the arrival index (0, 1, 2, ...); in time mode it is the
// wall-clock arrival time in fractional seconds. float64 represents both
// exactly for any window this engine is meant to run (count windows large
// enough to overflow 2^53 arrivals are not a realistic deployment).
type Stamp float64
