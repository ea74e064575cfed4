// Package geom2derrors defines the structured error kinds produced by the
// geom2d kernel. The kernel is an in-process library and never retries: a
// fallible operation either returns a successful result or a *[Error]
// describing precisely why it failed.
package geom2derrors

import (
	"errors"
	"fmt"
)

// Kind classifies why a kernel operation failed.
type Kind uint8

const (
	// InvalidInput marks a NaN or infinite coordinate, a negative epsilon,
	// an empty bounding rectangle passed to Voronoi construction, or a
	// duplicate site under epsilon.
	InvalidInput Kind = iota

	// PreconditionViolation marks a call that violates a documented
	// precondition: a face query against the unbounded face, the centroid
	// of a zero-area polygon, or a vertex/edge/face index out of range.
	PreconditionViolation

	// TopologyViolation marks an invariant violation detected by
	// Validate or an internal assertion: a twin mismatch, an unclosed
	// cycle, or a bounded face whose outer boundary has non-negative area.
	TopologyViolation

	// NotFound marks a locate/find query that matched nothing.
	NotFound

	// NumericIndeterminate marks a near-degeneracy that neither epsilon
	// mode can resolve deterministically. Callers should retry with a
	// larger epsilon.
	NumericIndeterminate
)

// String returns the constant's name, for use in error messages and logs.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case PreconditionViolation:
		return "PreconditionViolation"
	case TopologyViolation:
		return "TopologyViolation"
	case NotFound:
		return "NotFound"
	case NumericIndeterminate:
		return "NumericIndeterminate"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the structured error type returned by fallible kernel operations.
type Error struct {
	Kind Kind
	Op   string // the operation that failed, e.g. "dcel.FromPolygons"
	Msg  string
	Err  error // optional wrapped cause
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error with the given kind, operation name, and message.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap constructs an *Error wrapping an underlying cause.
func Wrap(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}

// Is reports whether err is a *Error of the given kind, so callers can
// branch with errors.Is-style checks: geom2derrors.Is(err, geom2derrors.NotFound).
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
