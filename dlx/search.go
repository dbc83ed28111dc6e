// File: search.go
// Role: the recursive enumerator (SearchRec) and the resumable
// iterative state machine (SearchIter) built on top of the cover
// primitives and the MRV selector.
package dlx

// SearchRec resets NbChoices/NbDances/NbSolutions and recursively
// enumerates up to maxSolutions solutions, returning each as a
// sequence of row ids in choice order. A zero maxSolutions is treated
// as "no cap".
func (m *Matrix) SearchRec(maxSolutions uint64) [][]int {
	if maxSolutions == 0 {
		maxSolutions = ^uint64(0)
	}
	m.nbChoices, m.nbDances, m.nbSolutions = 0, 0, 0
	m.logDebug("search_rec start", "max_solutions", maxSolutions)

	res := make([][]int, 0)
	m.searchRecInternal(maxSolutions, &res)

	m.logDebug("search_rec done", "solutions", m.nbSolutions, "choices", m.nbChoices, "dances", m.nbDances)
	return res
}

func (m *Matrix) searchRecInternal(max uint64, res *[][]int) {
	if m.nodes[0].right == 0 {
		m.nbSolutions++
		*res = append(*res, m.GetSolution())
		return
	}

	j := m.chooseMin()
	if m.size[j] == 0 {
		return
	}

	m.cover(j)
	h := header(j)
	for c := m.nodes[h].down; c != h; {
		m.choose(c)
		m.searchRecInternal(max, res)
		m.unchoose(c)
		if m.nbSolutions >= max {
			break
		}
		c = m.nodes[c].down
	}
	m.uncover(j)
}

// SearchIter advances the resumable search by exactly one solution and
// returns true if it found one, or false once the search space (down
// to the pinned depth) is exhausted. Unlike SearchRec, it never resets
// NbChoices/NbDances itself: callers who want fresh statistics for a
// new session call Reset first.
func (m *Matrix) SearchIter() bool {
	for {
		if m.sess.direction == Down {
			if m.nodes[0].right == 0 {
				m.nbSolutions++
				m.sess.direction = Up
				m.logDebug("search_iter solution", "depth", len(m.sess.stack))
				return true
			}

			j := m.chooseMin()
			if m.size[j] == 0 {
				m.sess.direction = Up
				continue
			}

			m.cover(j)
			m.choose(m.nodes[header(j)].down)
			continue
		}

		// direction == Up
		if len(m.sess.stack) <= m.sess.pinnedDepth {
			m.logDebug("search_iter exhausted", "choices", m.nbChoices, "dances", m.nbDances)
			return false
		}

		c := m.sess.stack[len(m.sess.stack)-1]
		item := m.nodes[c].item
		m.unchoose(c)
		next := m.nodes[c].down
		if next != header(item) {
			m.choose(next)
			m.sess.direction = Down
		} else {
			m.uncover(item)
		}
	}
}

// SearchIterInto is SearchIter with the solution, if any, written into
// out instead of requiring a follow-up GetSolution call.
func (m *Matrix) SearchIterInto(out *[]int) bool {
	if ok := m.SearchIter(); ok {
		*out = m.GetSolution()
		return true
	}
	return false
}

func (m *Matrix) logDebug(msg string, args ...any) {
	if m.logger == nil {
		return
	}
	m.logger.Debug(msg, args...)
}
