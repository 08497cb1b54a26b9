// Package bench verifies a set of trimming kernels against a reference
// implementation and then times each one over a shared sample set.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Config holds the timing parameters.
type Config struct {
	// MinDuration is the least wall time spent timing each candidate.
	MinDuration time.Duration
}

// Candidate pairs a trimming kernel with its display name. Run fills in
// AvgNs, the measured average call time in nanoseconds.
type Candidate[T constraints.Unsigned] struct {
	Name string
	Fn   func(T) (T, int)

	AvgNs float64
}

// VariantResult is one candidate's output for a disputed sample.
type VariantResult[T constraints.Unsigned] struct {
	Name    string
	Trimmed T
	Zeros   int
}

// MismatchError reports the first sample on which a candidate disagreed
// with the reference, along with every non-baseline candidate's result for
// that sample.
type MismatchError[T constraints.Unsigned] struct {
	Sample  T
	Results []VariantResult[T]
}

func (e *MismatchError[T]) Error() string {
	return fmt.Sprintf("candidates disagree on sample %d", uint64(e.Sample))
}

// Opt modifies how Run operates.
type Opt func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock substitutes the clock used for timing.
func WithClock(clock clockwork.Clock) Opt {
	return func(o *options) {
		o.clock = clock
	}
}

// Run checks every candidate after the second against the second, which
// serves as the reference, and then times all of them. The first candidate
// is a baseline that is timed but never verified; it exists to expose the
// fixed cost of the measurement loop and its result is wrong by
// construction. On disagreement Run returns a MismatchError and skips
// timing entirely.
func Run[T constraints.Unsigned](
	logger *zap.Logger,
	cfg Config,
	smpls []T,
	candidates []*Candidate[T],
	opts ...Opt,
) error {
	if len(candidates) < 2 {
		return fmt.Errorf("need at least a baseline and a reference, got %d candidates", len(candidates))
	}
	if len(smpls) == 0 {
		return errors.New("no samples to run")
	}
	o := &options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(o)
	}

	logger.Info("verifying candidates",
		zap.Int("samples", len(smpls)),
		zap.Int("candidates", len(candidates)),
	)
	if err := verify(smpls, candidates); err != nil {
		return err
	}

	for _, c := range candidates {
		logger.Info("benchmarking", zap.String("candidate", c.Name))
		c.AvgNs = measure(o.clock, cfg.MinDuration, smpls, c.Fn)
	}
	return nil
}

func verify[T constraints.Unsigned](smpls []T, candidates []*Candidate[T]) error {
	ref := candidates[1]
	for _, n := range smpls {
		want, zeros := ref.Fn(n)
		for _, c := range candidates[2:] {
			q, z := c.Fn(n)
			if q != want || z != zeros {
				merr := &MismatchError[T]{Sample: n}
				for _, rc := range candidates[1:] {
					rq, rz := rc.Fn(n)
					merr.Results = append(merr.Results, VariantResult[T]{
						Name:    rc.Name,
						Trimmed: rq,
						Zeros:   rz,
					})
				}
				return merr
			}
		}
	}
	return nil
}

// sink keeps the measured calls from being optimized away.
var sink uint64

func measure[T constraints.Unsigned](
	clock clockwork.Clock,
	minDuration time.Duration,
	smpls []T,
	fn func(T) (T, int),
) float64 {
	start := clock.Now()
	passes := 0
	for {
		for _, n := range smpls {
			q, z := fn(n)
			sink += uint64(q) + uint64(z)
		}
		passes++
		if elapsed := clock.Since(start); elapsed >= minDuration {
			return float64(elapsed.Nanoseconds()) / (float64(passes) * float64(len(smpls)))
		}
	}
}
