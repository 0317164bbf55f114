package search

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// defaultSeed is used when no seed or RNG is supplied, and when the seed is 0.
const defaultSeed int64 = 1

// Options holds parameters and callbacks shared by all engines.
type Options struct {
	// Movement selects 4- or 8-directional travel. Engines that only ever move
	// orthogonally (wallfollow) ignore it.
	Movement Movement

	// Seed feeds the RNG used by InitMap when Rand is nil. 0 means defaultSeed.
	Seed int64

	// Rand, when set, is used by InitMap as is.
	Rand *rand.Rand

	// MaxIterations caps the generations of iterative engines. A value of 0
	// means the engine default (width×height).
	MaxIterations int

	// Ctx allows cancellation of long searches.
	Ctx context.Context

	// OnExpand is called each time a cell is closed.
	OnExpand func(p grid.Point)

	// OnEnqueue is called each time a cell is pushed on the open list,
	// with the priority it was pushed at.
	OnEnqueue func(p grid.Point, priority float64)

	// Recorder receives one observation per FindPath call.
	Recorder Recorder

	// internal error recorded during option parsing
	err error
}

// Option configures a manager via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation by the first InitMap, Attach or
// FindPath call.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Movement OnlyStraight
//   - Seed defaultSeed, no custom RNG
//   - MaxIterations 0 (engine default)
//   - context.Background()
//   - no hooks, no recorder.
func DefaultOptions() Options {
	return Options{
		Movement:      OnlyStraight,
		Seed:          defaultSeed,
		MaxIterations: 0,
		Ctx:           context.Background(),
	}
}

// Err returns the first option violation, if any.
func (o Options) Err() error { return o.err }

// NewRand builds the RNG InitMap draws from: Rand if set, else one seeded by Seed.
func (o Options) NewRand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// WithMovement selects the neighborhood.
func WithMovement(m Movement) Option {
	return func(o *Options) {
		switch m {
		case OnlyStraight, CanDiagonal:
			o.Movement = m
		default:
			o.fail(fmt.Errorf("%w: unknown movement %d", ErrOptionViolation, m))
		}
	}
}

// WithSeed seeds the map RNG. 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies the map RNG directly. A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithMaxIterations overrides the generation cap of iterative engines.
//
//	n > 0: cap at n
//	n == 0: engine default
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxIterations = n
	}
}

// WithContext sets a context polled once per expansion; a cancelled search
// returns ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run each time a cell is closed.
func WithOnExpand(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run each time a cell is pushed.
func WithOnEnqueue(fn func(p grid.Point, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithRecorder registers a Recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Recorder = r
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
