// Package combine implements the row-combine step of the maximum path sum
// reduction: folding one layer of a grid into the row it feeds.
//
// What:
//
//   - Combiner is the single capability every strategy provides:
//     rest[i] += max(layer[i], layer[i+1]) for i in [0, width-1).
//   - Scalar:     sequential index loop, the reference semantics.
//   - Vectorized: the same recurrence over three aligned, equal-length views,
//     one hwy vector of lanes per step, with a scalar tail.
//   - Parallel:   K ceil-divided chunks cut along the same boundaries in all
//     three views, one goroutine per chunk, joined before return.
//
// All strategies are observationally equivalent: for every valid input they
// leave identical values in rest. layer is never written.
//
// Concurrency:
//
//	Only Parallel spawns goroutines, and none outlives one Combine call.
//	Chunks write disjoint ranges of rest, so the join is the only barrier.
//
// Complexity:
//
//   - Time:   O(width) for every strategy (O(width/K) wall-clock for Parallel).
//   - Memory: O(1) extra; the update is in place.
//
// Errors:
//
//   - ErrUnknownStrategy: ByName was given a name no strategy answers to.
//
// Undersized views are programmer errors and panic through slice bounds checks.
package combine
