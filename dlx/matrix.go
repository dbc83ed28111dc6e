// Package dlx implements Knuth's Dancing Links (DLX) algorithm for the
// exact cover problem with optional secondary items.
//
// A Matrix is a sparse 0/1 matrix whose columns (items) are partitioned
// into a primary prefix and a secondary suffix: a solution is a set of
// rows (options) covering every primary item exactly once and every
// secondary item at most once. The representation is a single growable
// node arena addressed by index rather than pointer, matching lvlath's
// preference for array-backed structures over pointer graphs: it makes
// deep copies (Clone) and mid-search replay straightforward, and it
// never invalidates a live index when the arena grows.
//
// What & Why:
//
//	Items live at node indices [1, nbItems]; index 0 is the master
//	sentinel of the active-item ring. Option cells are appended from
//	index nbItems+1 onward as rows are added. Only primary items are
//	linked into the master's horizontal ring; secondary items keep a
//	self-referential left/right pair so the MRV column selector never
//	branches on them, while their vertical rings behave identically to
//	primary items under cover/uncover.
//
// Complexity:
//
//	AddOptionSparse/AddOptionDense: O(len(row)).
//	OptionSparse/OptionDense: O(len(row)) / O(nbItems).
//	NewMatrix: O(nbItems).
package dlx

import (
	"fmt"
	"log/slog"
)

// node is one entry of the arena: either the master sentinel (index 0),
// an item header (indices [1, nbItems]), or an option cell (indices
// nbItems+1 and up). left/right thread the horizontal ring (active
// items for headers, an option's row for cells); up/down thread the
// vertical ring of a column.
type node struct {
	item  int // -1 for the master sentinel, else the owning item's index
	rowID int // -1 for master/header nodes, else the owning option's row id
	left  int
	right int
	up    int
	down  int
}

// Matrix is a sparse doubly-linked exact-cover matrix. It is not safe
// for concurrent use: DLX search mutates the arena on every step, and
// two goroutines racing over cover/uncover would corrupt the rings.
// Independent Matrix values may be used concurrently on separate
// goroutines.
type Matrix struct {
	nbItems   int
	nbPrimary int

	nodes   []node
	size    []int   // active cell count per item, len == nbItems
	covered []bool  // per-item covered flag, len == nbItems
	options [][]int // per-option cell node indices, insertion order

	sess Session

	nbChoices   uint64
	nbDances    uint64
	nbSolutions uint64

	logger *slog.Logger
}

// header returns the arena index of item j's header/sentinel node.
func header(j int) int { return j + 1 }

// itemOfHeader returns the item index owning header index h.
func itemOfHeader(h int) int { return h - 1 }

// NewMatrix creates an empty matrix over nbItems items, the first
// nbPrimary of which are primary. nbPrimary is clamped to [0, nbItems].
// Negative nbItems is clamped to zero.
//
// Complexity: O(nbItems).
func NewMatrix(nbItems, nbPrimary int) *Matrix {
	if nbItems < 0 {
		nbItems = 0
	}
	if nbPrimary < 0 {
		nbPrimary = 0
	}
	if nbPrimary > nbItems {
		nbPrimary = nbItems
	}

	m := &Matrix{
		nbItems:   nbItems,
		nbPrimary: nbPrimary,
		nodes:     make([]node, nbItems+1),
		size:      make([]int, nbItems),
		covered:   make([]bool, nbItems),
		options:   make([][]int, 0),
	}

	// Master sentinel: item/rowID unused, left/right form the active ring.
	m.nodes[0] = node{item: -1, rowID: -1}

	for j := 0; j < nbItems; j++ {
		h := header(j)
		// Vertical ring sentinel: empty column loops onto itself.
		m.nodes[h] = node{item: j, rowID: -1, up: h, down: h}
	}

	// Only primary items are threaded into the master's horizontal ring;
	// secondary items self-loop and are invisible to chooseMin and to
	// cover's ring-unlink step, which is what makes "at most once" fall out of
	// the ordinary cover/uncover machinery instead of needing a special
	// case in the search driver.
	prev := 0
	for j := 0; j < nbPrimary; j++ {
		h := header(j)
		m.nodes[prev].right = h
		m.nodes[h].left = prev
		prev = h
	}
	m.nodes[prev].right = 0
	m.nodes[0].left = prev

	for j := nbPrimary; j < nbItems; j++ {
		h := header(j)
		m.nodes[h].left = h
		m.nodes[h].right = h
	}

	return m
}

// SetLogger attaches a structured logger used for Debug-level tracing
// of search start/finish events. A nil logger (the default) disables
// tracing entirely at zero cost.
func (m *Matrix) SetLogger(logger *slog.Logger) { m.logger = logger }

// NbItems returns the number of items (columns).
func (m *Matrix) NbItems() int { return m.nbItems }

// NbOptions returns the number of options (rows) added so far.
func (m *Matrix) NbOptions() int { return len(m.options) }

// NbPrimary returns the number of primary items.
func (m *Matrix) NbPrimary() int { return m.nbPrimary }

// NbChoices returns the number of cells chosen since the last Reset.
func (m *Matrix) NbChoices() uint64 { return m.nbChoices }

// NbDances returns the number of cells hidden since the last Reset.
func (m *Matrix) NbDances() uint64 { return m.nbDances }

// NbSolutions returns the number of solutions recorded since the last
// Reset (or the last SearchRec call, which resets it itself).
func (m *Matrix) NbSolutions() uint64 { return m.nbSolutions }

// AddOptionSparse appends a new option (row) touching exactly the given
// item indices, in the order given. It returns the new option's row id
// (its 0-based insertion order). Bounds are validated before any
// mutation: on failure the matrix is left byte-for-byte unchanged.
//
// Complexity: O(len(items)).
func (m *Matrix) AddOptionSparse(items []int) (int, error) {
	if len(items) == 0 {
		return 0, ErrEmptyRow
	}
	for _, it := range items {
		if it < 0 || it >= m.nbItems {
			return 0, fmt.Errorf("AddOptionSparse: item %d: %w", it, ErrOutOfRange)
		}
	}

	rowID := len(m.options)
	cells := make([]int, len(items))
	for k, it := range items {
		idx := len(m.nodes)
		m.nodes = append(m.nodes, node{item: it, rowID: rowID})
		h := header(it)
		// Append at the bottom of item it's vertical ring: down always
		// points back to the sentinel, up chains onto the previous
		// bottom-most cell. This keeps top-to-bottom traversal in
		// insertion order, which is what cover/uncover rely on.
		m.nodes[idx].down = h
		m.nodes[idx].up = m.nodes[h].up
		m.nodes[m.nodes[h].up].down = idx
		m.nodes[h].up = idx
		m.size[it]++
		cells[k] = idx
	}
	for k := range cells {
		next := cells[(k+1)%len(cells)]
		m.nodes[cells[k]].right = next
		m.nodes[next].left = cells[k]
	}
	m.options = append(m.options, cells)

	return rowID, nil
}

// AddOptionDense appends a new option described as a dense boolean row
// of length NbItems. It is equivalent to translating the row to its
// sorted sparse form and calling AddOptionSparse.
//
// Complexity: O(NbItems).
func (m *Matrix) AddOptionDense(row []bool) (int, error) {
	if len(row) != m.nbItems {
		return 0, fmt.Errorf("AddOptionDense: got %d, want %d: %w", len(row), m.nbItems, ErrSizeMismatch)
	}
	items := make([]int, 0, len(row))
	for i, v := range row {
		if v {
			items = append(items, i)
		}
	}
	return m.AddOptionSparse(items)
}

// OptionSparse returns option i's item indices in the order they were
// given to AddOptionSparse/AddOptionDense.
func (m *Matrix) OptionSparse(i int) ([]int, error) {
	if i < 0 || i >= len(m.options) {
		return nil, fmt.Errorf("OptionSparse: option %d: %w", i, ErrOutOfRange)
	}
	cells := m.options[i]
	out := make([]int, len(cells))
	for k, idx := range cells {
		out[k] = m.nodes[idx].item
	}
	return out, nil
}

// OptionSparseSorted returns option i's item indices sorted ascending.
func (m *Matrix) OptionSparseSorted(i int) ([]int, error) {
	out, err := m.OptionSparse(i)
	if err != nil {
		return nil, err
	}
	sortInts(out)
	return out, nil
}

// OptionDense returns option i as a dense boolean row of length NbItems.
func (m *Matrix) OptionDense(i int) ([]bool, error) {
	items, err := m.OptionSparse(i)
	if err != nil {
		return nil, err
	}
	row := make([]bool, m.nbItems)
	for _, it := range items {
		row[it] = true
	}
	return row, nil
}

// RowToSparse translates a dense row into its sorted sparse form,
// independent of any option actually stored in the matrix.
func (m *Matrix) RowToSparse(row []bool) ([]int, error) {
	if len(row) != m.nbItems {
		return nil, fmt.Errorf("RowToSparse: got %d, want %d: %w", len(row), m.nbItems, ErrSizeMismatch)
	}
	out := make([]int, 0, len(row))
	for i, v := range row {
		if v {
			out = append(out, i)
		}
	}
	return out, nil
}

// RowToDense translates a sparse item list into a dense boolean row.
func (m *Matrix) RowToDense(items []int) ([]bool, error) {
	row := make([]bool, m.nbItems)
	for _, it := range items {
		if it < 0 || it >= m.nbItems {
			return nil, fmt.Errorf("RowToDense: item %d: %w", it, ErrOutOfRange)
		}
		row[it] = true
	}
	return row, nil
}

// IsItemActive reports whether item j is currently uncovered.
func (m *Matrix) IsItemActive(j int) (bool, error) {
	if j < 0 || j >= m.nbItems {
		return false, fmt.Errorf("IsItemActive: item %d: %w", j, ErrOutOfRange)
	}
	return !m.covered[j], nil
}

// IsOptionActive reports whether option i's cells are all still linked
// into their columns, i.e. no sibling cell of the row has been hidden
// by another option's cover.
func (m *Matrix) IsOptionActive(i int) (bool, error) {
	if i < 0 || i >= len(m.options) {
		return false, fmt.Errorf("IsOptionActive: option %d: %w", i, ErrOutOfRange)
	}
	for _, idx := range m.options[i] {
		if !m.isCellActive(idx) {
			return false, nil
		}
	}
	return true, nil
}

// isCellActive reports the mutual-link consistency of a cell's own
// vertical neighbours (invariant: a cell is active iff it has not been
// unlinked from its column by some other cell's hide).
func (m *Matrix) isCellActive(idx int) bool {
	return m.nodes[m.nodes[idx].up].down == idx
}

// CheckSizes verifies that each item's recorded active size matches the
// number of cells actually reachable from its vertical ring. This is a
// diagnostic used by tests and callers who want to assert internal
// consistency after a sequence of operations; it never mutates state.
func (m *Matrix) CheckSizes() error {
	for j := 0; j < m.nbItems; j++ {
		h := header(j)
		count := 0
		for c := m.nodes[h].down; c != h; c = m.nodes[c].down {
			count++
		}
		if count != m.size[j] {
			return fmt.Errorf("CheckSizes: item %d: recorded %d, walked %d: %w", j, m.size[j], count, ErrCheckFailed)
		}
	}
	return nil
}
