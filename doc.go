// Package pathsum computes the maximum-sum path through a triangular or
// square grid of unsigned integers, where each step moves from one row to an
// adjacent cell of the next.
//
// What is inside?
//
//	A small, pure-Go algorithms library built around one in-place fold:
//		• combine/  — the row-combine step: Scalar, Vectorized, Parallel(K)
//		• reduce/   — Pyramid and Rectangle drivers, size and layout helpers
//		• datagen/  — input buffers for benchmarks and tests
//		• cmd/pathsum — throughput comparison across strategies and sizes
//
// Quick ASCII example:
//
//	    7
//	   3 8        best path 7 → 3 → 8 → 7 → 5 = 30
//	  8 1 0
//	 2 7 4 4
//	4 5 2 6 5
//
// The drivers split one flat buffer at a single point per step into the layer
// being folded and the rest it folds into, so the two views never overlap and
// the parallel strategy can write disjoint chunks of rest without locks.
//
//	go get github.com/katalvlaran/pathsum
package pathsum
