// File: random.go
// Role: randomized search built on top of the resumable iterative
// driver via random column/row permutations, per the original
// DLXMatrix::search_random.
package dlx

import (
	"math/rand"

	"github.com/samber/lo"
)

// SearchRandom samples a uniform permutation of options and a uniform
// permutation of primary items, searches the resulting transformed
// matrix for its first solution, and maps the row ids back through the
// inverse row permutation. It returns false if the instance has no
// solution. Consecutive calls are independent.
//
// rng controls the source of randomness. Passing nil uses the package
// default source (math/rand's top-level functions), matching the
// original's process-local, nondeterministically-seeded generator;
// passing a caller-owned *rand.Rand makes the draw reproducible.
func (m *Matrix) SearchRandom(rng *rand.Rand) ([]int, bool) {
	rowPerm := lo.Range(len(m.options))
	colPerm := lo.Range(m.nbItems)
	shuffle(rowPerm, rng)
	shuffle(colPerm[:m.nbPrimary], rng)

	transformed, err := m.PermutedColumns(colPerm, true)
	if err != nil {
		return nil, false
	}
	transformed, err = transformed.PermutedRows(rowPerm)
	if err != nil {
		return nil, false
	}

	if !transformed.SearchIter() {
		return nil, false
	}

	v := transformed.GetSolution()
	sol := make([]int, len(v))
	for i, r := range v {
		sol[i] = rowPerm[r]
	}
	return sol, true
}

// shuffle performs an in-place Fisher-Yates shuffle using rng, or the
// package-level default source when rng is nil.
func shuffle(s []int, rng *rand.Rand) {
	if rng != nil {
		rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		return
	}
	rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
