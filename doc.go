// Package dlxgo is your toolkit for solving exact cover problems with
// Dancing Links — from a bare sparse matrix to a fully identity-aware,
// randomized, resumable search.
//
// What is dlxgo?
//
//	A small, focused module built around Knuth's Dancing Links
//	technique:
//		- dlx     — the engine: matrix, cover primitives, MRV search,
//		            resumable iteration, permutation transforms
//		- named   — a generic facade mapping caller identities to and
//		            from the engine's dense indices
//		- dlxcfg  — functional-options configuration and map decoding
//		- dlxstat — bitmap rendering and search statistics
//
// Why dlxgo?
//
//   - Index-addressed arena, no pointer graphs, cheap Clone
//   - Both a capped recursive enumerator and a resumable one-solution-
//     at-a-time driver, sharing the same primitives
//   - Secondary ("at most once") items fall out of the same
//     cover/uncover machinery, no special-casing in the search loop
//   - Generic identity facade for callers who would rather not think
//     in column indices
//
// This module is the engine only: encoding a concrete puzzle (Sudoku,
// exact polyomino tiling, Langford pairs, ...) as items and options,
// and decoding a solution's row ids back into the puzzle's own shape,
// is left to the caller.
//
//	go get github.com/hivert/dlxgo
package dlxgo
