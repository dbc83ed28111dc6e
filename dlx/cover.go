// File: cover.go
// Role: the four dancing-links primitives (hide/unhide/cover/uncover)
// plus choose/unchoose, which layer the working-stack bookkeeping on
// top of them.
//
// Ordering rule: hide and cover walk forward (right, then down);
// unhide and uncover walk backward (left, then up). Reversing the
// traversal direction on the way back out is what lets a node's own
// left/right/up/down fields serve as their own undo log — nothing
// else is recorded.
//
// hide/unhide/cover/uncover never allocate; choose may grow the
// working stack's backing array.
package dlx

// hide removes every cell in c's row other than c from its own column,
// decrementing that column's active size.
func (m *Matrix) hide(c int) {
	for nr := m.nodes[c].right; nr != c; nr = m.nodes[nr].right {
		n := m.nodes[nr]
		m.nodes[n.up].down = n.down
		m.nodes[n.down].up = n.up
		m.size[n.item]--
		m.nbDances++
	}
}

// unhide is the exact reverse of hide: it relinks every cell in c's row
// other than c back into its column, walking the row backward.
func (m *Matrix) unhide(c int) {
	for nr := m.nodes[c].left; nr != c; nr = m.nodes[nr].left {
		n := m.nodes[nr]
		m.size[n.item]++
		m.nodes[n.up].down = nr
		m.nodes[n.down].up = nr
	}
}

// cover removes item j from the active ring (a no-op on the ring
// itself for secondary items, which never joined it) and hides every
// row that touches it.
func (m *Matrix) cover(j int) {
	h := header(j)
	left, right := m.nodes[h].left, m.nodes[h].right
	m.nodes[left].right = right
	m.nodes[right].left = left

	for c := m.nodes[h].down; c != h; c = m.nodes[c].down {
		m.hide(c)
	}
	m.covered[j] = true
}

// uncover is the exact reverse of cover.
func (m *Matrix) uncover(j int) {
	h := header(j)
	for c := m.nodes[h].up; c != h; c = m.nodes[c].up {
		m.unhide(c)
	}
	left, right := m.nodes[h].left, m.nodes[h].right
	m.nodes[left].right = h
	m.nodes[right].left = h
	m.covered[j] = false
}

// choose commits cell c's row to the working stack and covers every
// other item that row touches. The caller is responsible for having
// already covered c's own item.
func (m *Matrix) choose(c int) {
	m.sess.stack = append(m.sess.stack, c)
	m.nbChoices++
	for nr := m.nodes[c].right; nr != c; nr = m.nodes[nr].right {
		m.cover(m.nodes[nr].item)
	}
}

// unchoose is the exact reverse of choose: it uncovers c's row's other
// items in reverse order and pops the working stack. c itself is left
// untouched, including its own up/down links, so callers may continue
// walking c's column immediately afterwards.
func (m *Matrix) unchoose(c int) {
	for nr := m.nodes[c].left; nr != c; nr = m.nodes[nr].left {
		m.uncover(m.nodes[nr].item)
	}
	m.sess.stack = m.sess.stack[:len(m.sess.stack)-1]
}
