package dlx

import "sort"

// sortInts sorts s ascending in place; used by the *Sorted accessors.
func sortInts(s []int) {
	sort.Ints(s)
}
