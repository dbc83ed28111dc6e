// Package named wraps dlx.Matrix behind identity-based item and option
// names, translating to and from the dense integer indices the engine
// works with. It mirrors the original DLXMatrixIdent<Item, OptId,
// ItemHash> template: callers think in their own vocabulary (grid
// cells, tile identifiers, Sudoku (row,col,digit) triples, ...) and
// never see a raw column or row index.
//
// What & Why:
//
//	Two maps (item identity to column index, option identity to row
//	id) and their inverse slices carry the translation both ways. New
//	rejects a repeated item identity and AddOption rejects a reused
//	option identity, mirroring the sentinel-error discipline of the
//	dlx package.
package named

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/hivert/dlxgo/dlx"
)

// Named is a generic identity-preserving façade over a dlx.Matrix.
// Item and OptionID must be comparable so they can key lookup maps.
type Named[Item comparable, OptionID comparable] struct {
	m *dlx.Matrix

	itemIndex map[Item]int
	items     []Item // inverse of itemIndex, indexed by column

	optionIndex map[OptionID]int
	optionIDs   []OptionID // inverse of optionIndex, indexed by row id
}

// Seed describes one option to be added at construction time, the
// generic analogue of the original's up-front OptPairs constructor
// argument.
type Seed[Item comparable, OptionID comparable] struct {
	ID    OptionID
	Items []Item
}

// Option configures New's optional up-front seeding.
type Option[Item comparable, OptionID comparable] func(*[]Seed[Item, OptionID])

// WithSeed schedules an option to be added immediately after
// construction, in the order given across all WithSeed calls.
func WithSeed[Item comparable, OptionID comparable](id OptionID, items []Item) Option[Item, OptionID] {
	return func(seeds *[]Seed[Item, OptionID]) {
		*seeds = append(*seeds, Seed[Item, OptionID]{ID: id, Items: items})
	}
}

// New builds a Named facade over nbPrimary primary items followed by
// len(items)-nbPrimary secondary items, named in the order given.
// items must not contain a duplicate identity. Any seeds registered
// via WithSeed are added in order; the first error returned by
// AddOption aborts construction.
func New[Item comparable, OptionID comparable](items []Item, nbPrimary int, opts ...Option[Item, OptionID]) (*Named[Item, OptionID], error) {
	itemIndex := make(map[Item]int, len(items))
	for i, it := range items {
		if _, dup := itemIndex[it]; dup {
			return nil, fmt.Errorf("named.New: item %v: %w", it, dlx.ErrDuplicateItem)
		}
		itemIndex[it] = i
	}

	n := &Named[Item, OptionID]{
		m:           dlx.NewMatrix(len(items), nbPrimary),
		itemIndex:   itemIndex,
		items:       append([]Item(nil), items...),
		optionIndex: make(map[OptionID]int),
		optionIDs:   make([]OptionID, 0),
	}

	var seeds []Seed[Item, OptionID]
	for _, opt := range opts {
		opt(&seeds)
	}
	for _, s := range seeds {
		if err := n.AddOption(s.ID, s.Items); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// itemsToCols translates a caller-facing item slice into column
// indices, failing on the first unrecognized identity.
func (n *Named[Item, OptionID]) itemsToCols(items []Item) ([]int, error) {
	var firstErr error
	cols := lo.Map(items, func(it Item, _ int) int {
		col, ok := n.itemIndex[it]
		if !ok && firstErr == nil {
			firstErr = fmt.Errorf("named: item %v: %w", it, dlx.ErrNotFound)
		}
		return col
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return cols, nil
}

// AddOption names a new option touching items, keyed by id. id must
// not already name an option.
func (n *Named[Item, OptionID]) AddOption(id OptionID, items []Item) error {
	if _, dup := n.optionIndex[id]; dup {
		return fmt.Errorf("named.AddOption: option %v: %w", id, dlx.ErrDuplicateItem)
	}
	cols, err := n.itemsToCols(items)
	if err != nil {
		return err
	}
	rowID, err := n.m.AddOptionSparse(cols)
	if err != nil {
		return err
	}
	if rowID != len(n.optionIDs) {
		return fmt.Errorf("named.AddOption: %w: row id %d out of sequence", dlx.ErrCheckFailed, rowID)
	}
	n.optionIndex[id] = rowID
	n.optionIDs = append(n.optionIDs, id)
	return nil
}

// IthOption returns the items named by option index i, in the order
// they were given to AddOption.
func (n *Named[Item, OptionID]) IthOption(i int) ([]Item, error) {
	cols, err := n.m.OptionSparse(i)
	if err != nil {
		return nil, err
	}
	return lo.Map(cols, func(c int, _ int) Item { return n.items[c] }), nil
}

// GetSolution returns the identities of the options in the current
// working stack, in chronological choice order.
func (n *Named[Item, OptionID]) GetSolution() []OptionID {
	rows := n.m.GetSolution()
	out := make([]OptionID, len(rows))
	for i, r := range rows {
		out[i] = n.optionIDs[r]
	}
	return out
}

// IsSolution reports whether the named options form a valid exact
// cover. An unrecognized identity makes it report false rather than
// erroring, since "not even a legal option set" is itself "not a
// solution".
func (n *Named[Item, OptionID]) IsSolution(ids []OptionID) bool {
	rows := make([]int, len(ids))
	for i, id := range ids {
		r, ok := n.optionIndex[id]
		if !ok {
			return false
		}
		rows[i] = r
	}
	ok, err := n.m.IsSolution(rows)
	return err == nil && ok
}

// Choose pins the named option onto the working stack, as dlx.Matrix.Choose does.
func (n *Named[Item, OptionID]) Choose(id OptionID) error {
	r, ok := n.optionIndex[id]
	if !ok {
		return fmt.Errorf("named.Choose: option %v: %w", id, dlx.ErrNotFound)
	}
	_, err := n.m.Choose(r)
	return err
}

// IsItemActive reports whether the named item is currently uncovered.
func (n *Named[Item, OptionID]) IsItemActive(item Item) (bool, error) {
	col, ok := n.itemIndex[item]
	if !ok {
		return false, fmt.Errorf("named.IsItemActive: item %v: %w", item, dlx.ErrNotFound)
	}
	return n.m.IsItemActive(col)
}

// IsOptionActive reports whether the named option's cells are all
// still linked into their columns.
func (n *Named[Item, OptionID]) IsOptionActive(id OptionID) (bool, error) {
	r, ok := n.optionIndex[id]
	if !ok {
		return false, fmt.Errorf("named.IsOptionActive: option %v: %w", id, dlx.ErrNotFound)
	}
	return n.m.IsOptionActive(r)
}

// SearchIter advances the underlying resumable search by one solution.
func (n *Named[Item, OptionID]) SearchIter() bool {
	return n.m.SearchIter()
}

// SearchRec enumerates up to max solutions, each translated back into
// option identities in choice order.
func (n *Named[Item, OptionID]) SearchRec(max uint64) [][]OptionID {
	raw := n.m.SearchRec(max)
	out := make([][]OptionID, len(raw))
	for i, sol := range raw {
		ids := make([]OptionID, len(sol))
		for k, r := range sol {
			ids[k] = n.optionIDs[r]
		}
		out[i] = ids
	}
	return out
}

// Reset delegates to the underlying matrix's Reset.
func (n *Named[Item, OptionID]) Reset(depth int) error { return n.m.Reset(depth) }

// Matrix exposes the underlying engine for operations named has no
// identity-aware equivalent of (statistics, CheckSizes, rendering).
func (n *Named[Item, OptionID]) Matrix() *dlx.Matrix { return n.m }
