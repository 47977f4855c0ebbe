// Package boopy is a Boolean engine for 2D polygons. It combines sets of
// closed polygonal rings with union, intersection, difference and symmetric
// difference, at the throughput and robustness needed for large layout
// geometry such as photonic and semiconductor masks.
//
// The engine works on an integer grid: callers quantize their coordinates
// with a per-call scale factor (see Quantize) and all primary geometry
// predicates are exact, with no epsilon comparisons. Coverage follows the
// nonzero winding rule; counter-clockwise rings are outer boundaries and
// clockwise rings are holes. Inputs are never modified and results never
// alias inputs.
//
// Operations run a single-threaded Bentley-Ottmann plane sweep; parallelism
// is offered across independent operations by CombineBatch, never within one
// sweep. Cancellation is cooperative through the context and never leaves
// partial output.
package boopy

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Combine applies op to the operand polygon sets and returns a freshly
// constructed polygon set. Operands are read-only and may be shared between
// concurrent operations as long as they are not mutated. It fails with
// DegenerateGeometryError on malformed input, TopologyError when an internal
// invariant is violated, and OperationCancelledError when ctx is done; on
// failure no output is returned, so a retry starts from a clean slate.
func Combine(ctx context.Context, op Op, operands ...PolygonSet) (PolygonSet, error) {
	if len(operands) == 0 {
		return nil, &DegenerateGeometryError{-1, -1, "no operands"}
	}
	return combine(ctx, op, operands)
}

// Normalize removes self-intersections and overlaps within a single polygon
// set by an implicit self-union, commonly used as a pre-pass before further
// operations. Normalize is idempotent: normalizing a normalized set returns
// an equal set.
func Normalize(ctx context.Context, p PolygonSet) (PolygonSet, error) {
	return combine(ctx, Union, []PolygonSet{p})
}

// Job is one independent combine operation in a batch.
type Job struct {
	Op       Op
	Operands []PolygonSet
}

// CombineBatch runs independent operations concurrently on at most workers
// goroutines, or one per job when workers is zero or negative. A sweep is
// inherently sequential, so this is the engine's only source of parallelism.
// The first failing job cancels the rest and its error is returned.
func CombineBatch(ctx context.Context, workers int, jobs []Job) ([]PolygonSet, error) {
	g, ctx := errgroup.WithContext(ctx)
	if 0 < workers {
		g.SetLimit(workers)
	}
	results := make([]PolygonSet, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			r, err := Combine(ctx, job.Op, job.Operands...)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
