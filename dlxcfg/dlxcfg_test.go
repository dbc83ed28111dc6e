package dlxcfg_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hivert/dlxgo/dlx"
	"github.com/hivert/dlxgo/dlxcfg"
)

// buildTriple returns a 3-item, 4-option matrix with exactly two exact
// covers: {0}, {1}, {2} together, and the fourth option {0,1,2} alone.
func buildTriple(t *testing.T) *dlx.Matrix {
	t.Helper()
	m := dlx.NewMatrix(3, 3)
	for _, row := range [][]int{{0}, {1}, {2}, {0, 1, 2}} {
		_, err := m.AddOptionSparse(row)
		require.NoError(t, err)
	}
	return m
}

func TestNewOptions_Defaults(t *testing.T) {
	o := dlxcfg.NewOptions()
	require.Equal(t, uint64(0), o.MaxSolutions)
	require.Equal(t, int64(0), o.Seed)
	require.Nil(t, o.Logger)
}

func TestNewOptions_AppliesOptionsInOrder(t *testing.T) {
	logger := slog.Default()
	o := dlxcfg.NewOptions(
		dlxcfg.WithMaxSolutions(10),
		dlxcfg.WithSeed(42),
		dlxcfg.WithLogger(logger),
	)
	require.Equal(t, uint64(10), o.MaxSolutions)
	require.Equal(t, int64(42), o.Seed)
	require.Same(t, logger, o.Logger)
}

func TestFromMap_Decodes(t *testing.T) {
	m := map[string]interface{}{
		"MaxSolutions": 5,
		"Seed":         "7", // WeaklyTypedInput coerces string -> int64
	}
	o, err := dlxcfg.FromMap(m)
	require.NoError(t, err)
	require.Equal(t, uint64(5), o.MaxSolutions)
	require.Equal(t, int64(7), o.Seed)
}

func TestFromMap_RejectsWrongShape(t *testing.T) {
	m := map[string]interface{}{
		"MaxSolutions": "not-a-number",
	}
	_, err := dlxcfg.FromMap(m)
	require.Error(t, err)
}

func TestRunSearchRec_CapsAtMaxSolutionsAndAttachesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	o := dlxcfg.NewOptions(dlxcfg.WithMaxSolutions(1), dlxcfg.WithLogger(logger))

	sols := o.RunSearchRec(buildTriple(t))
	require.Len(t, sols, 1)
	require.Contains(t, buf.String(), "search_rec start")
}

func TestRunSearchRandom_FindsASolutionDeterministically(t *testing.T) {
	o := dlxcfg.NewOptions(dlxcfg.WithSeed(1))
	sol1, ok := o.RunSearchRandom(buildTriple(t))
	require.True(t, ok)

	sol2, ok := o.RunSearchRandom(buildTriple(t))
	require.True(t, ok)
	require.ElementsMatch(t, sol1, sol2, "same seed reproduces the same draw on a fresh matrix")
}

func TestRand_ZeroSeedFallsBackToNil(t *testing.T) {
	o := dlxcfg.NewOptions()
	require.Nil(t, o.Rand())
}
