package boopy

import "fmt"

// DegenerateGeometryError reports malformed input geometry: zero-length
// segments, rings with fewer than three distinct vertices, coordinates out
// of range, or an invalid scale. The engine never repairs inputs silently;
// the caller fixes the input and retries.
type DegenerateGeometryError struct {
	Operand int // operand index, -1 when not applicable
	Ring    int // ring index within the operand, -1 when not applicable
	Reason  string
}

func (e *DegenerateGeometryError) Error() string {
	if e.Operand < 0 && e.Ring < 0 {
		return "degenerate geometry: " + e.Reason
	} else if e.Operand < 0 {
		return fmt.Sprintf("degenerate geometry: ring %d: %s", e.Ring, e.Reason)
	}
	return fmt.Sprintf("degenerate geometry: operand %d ring %d: %s", e.Operand, e.Ring, e.Reason)
}

// TopologyError reports a violated invariant during ring reconstruction,
// such as an odd number of fragment ends meeting at a vertex or a walk that
// does not close. It indicates a defect rather than a transient condition
// and is never retried internally; no partial output is returned.
type TopologyError struct {
	Point  Point
	Reason string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("topology error at %v: %s", e.Point, e.Reason)
}

// OperationCancelledError reports a cooperative abort of a running
// operation. The operation left no partial output and may be retried.
type OperationCancelledError struct {
	Err error
}

func (e *OperationCancelledError) Error() string {
	return "operation cancelled: " + e.Err.Error()
}

func (e *OperationCancelledError) Unwrap() error {
	return e.Err
}
