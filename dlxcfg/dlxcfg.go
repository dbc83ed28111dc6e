// Package dlxcfg configures a search run: how many solutions to look
// for, what to seed math/rand with for SearchRandom, and where to send
// slog tracing. It follows the functional-options shape used
// throughout this module's teacher lineage (core.GraphOption,
// matrix.MatrixOption) rather than a bare struct literal, so future
// fields can default sanely without breaking callers.
package dlxcfg

import (
	"log/slog"
	"math/rand"

	"github.com/mitchellh/mapstructure"

	"github.com/hivert/dlxgo/dlx"
)

// Options bundles the knobs a caller typically wants to set before
// running a search: how many solutions to enumerate, a deterministic
// seed for randomized search, and a logger for tracing.
type Options struct {
	// MaxSolutions caps SearchRec; zero means unbounded.
	MaxSolutions uint64
	// Seed, when non-zero, seeds a *rand.Rand for reproducible
	// SearchRandom draws. A zero Seed makes Rand return nil, so
	// SearchRandom uses math/rand's default source.
	Seed int64
	// Logger receives Debug-level search tracing when set.
	Logger *slog.Logger
}

// Option configures an Options value.
type Option func(*Options)

// WithMaxSolutions sets the solution cap for SearchRec.
func WithMaxSolutions(n uint64) Option {
	return func(o *Options) { o.MaxSolutions = n }
}

// WithSeed sets the deterministic seed used to build a *rand.Rand for
// SearchRandom.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger attaches a structured logger for search tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// NewOptions builds an Options value with MaxSolutions unbounded (0)
// and no logger by default, then applies opts in order.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		MaxSolutions: 0,
		Seed:         0,
		Logger:       nil,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FromMap decodes a generic map (as produced by JSON/YAML unmarshaling
// into map[string]interface{}, or assembled by a caller building
// config programmatically) into an Options value via mapstructure.
// Logger is not settable through FromMap since a *slog.Logger has no
// meaningful map representation; set it afterward or via WithLogger.
func FromMap(m map[string]interface{}) (*Options, error) {
	o := NewOptions()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           o,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, err
	}
	return o, nil
}

// RunSearchRec attaches Logger to m (if set) and enumerates up to
// MaxSolutions solutions via m.SearchRec, the config-driven equivalent
// of calling SetLogger and SearchRec by hand.
func (o *Options) RunSearchRec(m *dlx.Matrix) [][]int {
	if o.Logger != nil {
		m.SetLogger(o.Logger)
	}
	return m.SearchRec(o.MaxSolutions)
}

// Rand builds a *rand.Rand seeded from Seed, or nil when Seed is zero
// so SearchRandom falls back to the package default source.
func (o *Options) Rand() *rand.Rand {
	if o.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(o.Seed))
}

// RunSearchRandom attaches Logger to m (if set) and samples one
// solution via m.SearchRandom, seeded per Rand.
func (o *Options) RunSearchRandom(m *dlx.Matrix) ([]int, bool) {
	if o.Logger != nil {
		m.SetLogger(o.Logger)
	}
	return m.SearchRandom(o.Rand())
}
