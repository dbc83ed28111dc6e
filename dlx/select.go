// File: select.go
// Role: the minimum-remaining-values (MRV) column selector.
package dlx

// chooseMin scans the active ring of primary items starting at the
// master's right neighbour and returns the item index with the
// smallest active size, ties broken by earliest position in the ring.
// Secondary items never appear in this ring (see NewMatrix), so they
// are implicitly excluded without an explicit filter.
//
// The caller must ensure the ring is non-empty (i.e. some primary item
// is still active); chooseMin does not itself detect a fully-covered
// matrix.
//
// Complexity: O(number of active primary items).
func (m *Matrix) chooseMin() int {
	best := m.nodes[0].right
	bestSize := m.size[itemOfHeader(best)]
	for h := m.nodes[best].right; h != 0; h = m.nodes[h].right {
		s := m.size[itemOfHeader(h)]
		if s < bestSize {
			best, bestSize = h, s
		}
	}
	return itemOfHeader(best)
}
