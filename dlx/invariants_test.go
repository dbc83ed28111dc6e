package dlx_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hivert/dlxgo/dlx"
)

// InvariantSuite exercises the universal invariants a matrix must hold
// at rest, independent of any particular seed scenario.
type InvariantSuite struct {
	suite.Suite
	m *dlx.Matrix
}

func (s *InvariantSuite) SetupTest() {
	s.m = buildInstance3(s.T())
}

// TestDenseSparseAgree verifies option_dense(i)[j] == true iff j is in
// option_sparse(i).
func (s *InvariantSuite) TestDenseSparseAgree() {
	for i := 0; i < s.m.NbOptions(); i++ {
		sparse, err := s.m.OptionSparse(i)
		require.NoError(s.T(), err)
		dense, err := s.m.OptionDense(i)
		require.NoError(s.T(), err)

		inSparse := make(map[int]bool, len(sparse))
		for _, j := range sparse {
			inSparse[j] = true
		}
		for j, present := range dense {
			require.Equal(s.T(), inSparse[j], present, "item %d of option %d", j, i)
		}
	}
}

// TestActiveSizeMatchesOccurrenceCount verifies active_size(j) equals
// the number of options touching j, at rest (nothing covered yet).
func (s *InvariantSuite) TestActiveSizeMatchesOccurrenceCount() {
	require.NoError(s.T(), s.m.CheckSizes())
	for j := 0; j < s.m.NbItems(); j++ {
		active, err := s.m.IsItemActive(j)
		require.NoError(s.T(), err)
		require.True(s.T(), active)
	}
}

// TestPermutedRowsIdentityIsStructurallyEquivalent verifies
// permuted_rows(identity) reproduces the source matrix's options.
func (s *InvariantSuite) TestPermutedRowsIdentityIsStructurallyEquivalent() {
	identity := make([]int, s.m.NbOptions())
	for i := range identity {
		identity[i] = i
	}
	res, err := s.m.PermutedRows(identity)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.m.NbOptions(), res.NbOptions())
	require.Equal(s.T(), s.m.SearchRec(0), res.SearchRec(0))
}

// TestEverySolutionCertifies verifies every recorded solution passes
// IsSolution, and that a solution missing a primary item is rejected.
func (s *InvariantSuite) TestEverySolutionCertifies() {
	for _, sol := range s.m.SearchRec(0) {
		ok, err := s.m.IsSolution(sol)
		require.NoError(s.T(), err)
		require.True(s.T(), ok)
	}
	ok, err := s.m.IsSolution(nil)
	require.NoError(s.T(), err)
	require.False(s.T(), ok, "an empty set misses every primary item on a non-trivial instance")
}

func TestInvariantSuite(t *testing.T) {
	suite.Run(t, new(InvariantSuite))
}
