// Package dlx is your engine for solving exact cover problems — from
// building the sparse matrix to enumerating every solution.
//
// What is dlx?
//
//	A single-threaded, dependency-light implementation of Knuth's
//	Dancing Links algorithm:
//		- Matrix: sparse doubly-linked rows x items, sparse and dense views
//		- Cover primitives: hide/unhide, cover/uncover, choose/unchoose
//		- MRV column selection for branching
//		- SearchRec: capped recursive enumeration of all solutions
//		- SearchIter: resumable one-at-a-time iterative search
//		- Choose/Reset: pinning a prefix and unwinding above it
//		- Clone, PermutedColumns/PermutedRows, SearchRandom
//
// Why dlx?
//
//   - Minimal API surface, index-addressed arena (no raw pointers)
//   - Deterministic enumeration order, documented and tested
//   - Zero-allocation hot path in the cover primitives
//   - Secondary items ("at most once") fall out of the same
//     cover/uncover machinery as primary items, no special-casing
//
// This package is the engine only. Encoding an actual puzzle (Sudoku,
// Langford pairs, exact polyomino tilings, ...) as a matrix and
// decoding row ids back into a grid is a job for the caller.
package dlx
