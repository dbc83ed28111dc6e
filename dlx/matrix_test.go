package dlx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hivert/dlxgo/dlx"
)

func buildInstance3(t *testing.T) *dlx.Matrix {
	t.Helper()
	m := dlx.NewMatrix(6, 6)
	rows := [][]int{
		{0, 2}, {0, 1}, {1, 4}, {3}, {3, 4},
		{5}, {1}, {0, 1, 2}, {2, 3, 4}, {1, 4, 5},
	}
	for _, r := range rows {
		_, err := m.AddOptionSparse(r)
		require.NoError(t, err)
	}
	return m
}

func TestNewMatrix_ClampsBounds(t *testing.T) {
	m := dlx.NewMatrix(-3, 10)
	require.Equal(t, 0, m.NbItems())
	require.Equal(t, 0, m.NbPrimary())

	m2 := dlx.NewMatrix(4, 99)
	require.Equal(t, 4, m2.NbItems())
	require.Equal(t, 4, m2.NbPrimary())
}

func TestAddOptionSparse_RejectsEmptyAndOutOfRange(t *testing.T) {
	m := dlx.NewMatrix(3, 3)

	_, err := m.AddOptionSparse(nil)
	require.ErrorIs(t, err, dlx.ErrEmptyRow)

	_, err = m.AddOptionSparse([]int{0, 5})
	require.ErrorIs(t, err, dlx.ErrOutOfRange)

	// A failed mutation must not have touched the matrix.
	require.Equal(t, 0, m.NbOptions())
}

func TestAddOptionDense_SizeMismatch(t *testing.T) {
	m := dlx.NewMatrix(3, 3)
	_, err := m.AddOptionDense([]bool{true, false})
	require.ErrorIs(t, err, dlx.ErrSizeMismatch)
}

func TestDenseRoundTrip(t *testing.T) {
	m := buildInstance3(t)
	for i := 0; i < m.NbOptions(); i++ {
		dense, err := m.OptionDense(i)
		require.NoError(t, err)
		sparse, err := m.RowToSparse(dense)
		require.NoError(t, err)
		sortedWant, err := m.OptionSparseSorted(i)
		require.NoError(t, err)
		require.Equal(t, sortedWant, sparse)

		dense2, err := m.RowToDense(sparse)
		require.NoError(t, err)
		require.Equal(t, dense, dense2)
	}
}

func TestOptionSparse_InsertionOrderPreserved(t *testing.T) {
	m := dlx.NewMatrix(5, 5)
	rowID, err := m.AddOptionSparse([]int{3, 0, 4})
	require.NoError(t, err)
	got, err := m.OptionSparse(rowID)
	require.NoError(t, err)
	require.Equal(t, []int{3, 0, 4}, got)

	sorted, err := m.OptionSparseSorted(rowID)
	require.NoError(t, err)
	require.Equal(t, []int{0, 3, 4}, sorted)
}

func TestActiveSizeMatchesOccurrences(t *testing.T) {
	m := buildInstance3(t)
	require.NoError(t, m.CheckSizes())
}

func TestIsItemActive_TogglesWithCoverUncover(t *testing.T) {
	m := buildInstance3(t)
	active, err := m.IsItemActive(0)
	require.NoError(t, err)
	require.True(t, active)

	_, err = m.Choose(0) // option 0 touches items {0, 2}
	require.NoError(t, err)

	active, err = m.IsItemActive(0)
	require.NoError(t, err)
	require.False(t, active)

	require.NoError(t, m.Reset(0))
	active, err = m.IsItemActive(0)
	require.NoError(t, err)
	require.True(t, active)
}

func TestIsOptionActive(t *testing.T) {
	m := buildInstance3(t)
	active, err := m.IsOptionActive(0)
	require.NoError(t, err)
	require.True(t, active)

	_, err = m.Choose(0)
	require.NoError(t, err)

	// Option 1 shares item 0 with option 0, so covering option 0 hides it.
	active, err = m.IsOptionActive(1)
	require.NoError(t, err)
	require.False(t, active)
}

func TestOutOfRangeAccessors(t *testing.T) {
	m := dlx.NewMatrix(3, 3)
	_, err := m.OptionSparse(0)
	require.ErrorIs(t, err, dlx.ErrOutOfRange)

	_, err = m.IsItemActive(3)
	require.ErrorIs(t, err, dlx.ErrOutOfRange)

	_, err = m.IsOptionActive(0)
	require.ErrorIs(t, err, dlx.ErrOutOfRange)

	_, err = m.Choose(0)
	require.ErrorIs(t, err, dlx.ErrOutOfRange)

	err = m.Reset(1)
	require.ErrorIs(t, err, dlx.ErrOutOfRange)
}
