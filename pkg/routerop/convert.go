package routerop

import "errors"

var errNotFailure = errors.New("routerop: FailureFrom applied to a success outcome")

// From adapts the conventional data-layer result shape (an operational
// error, or success with an optional found value) into an Outcome. A non-nil
// error becomes InternalError, a nil value becomes NotFound, and a present
// value becomes Success.
func From[T any](v *T, err error) Outcome[T] {
	if err != nil {
		return InternalError[T](err)
	}
	if v == nil {
		return NotFound[T]()
	}
	return Success(*v)
}

// FromFound is the comma-ok variant of From for value-typed lookups.
func FromFound[T any](v T, found bool, err error) Outcome[T] {
	if err != nil {
		return InternalError[T](err)
	}
	if !found {
		return NotFound[T]()
	}
	return Success(v)
}

// FailureFrom copies a failure-class outcome across payload types, for
// terminating a handler that returns Outcome[Out] with a failed Outcome[In].
// Payloads cannot cross, so a success-class input degrades to an
// InternalError naming the misuse.
func FailureFrom[In, Out any](o Outcome[In]) Outcome[Out] {
	switch o.kind {
	case KindNotFound:
		return NotFound[Out]()
	case KindBadRequest:
		return BadRequest[Out](o.detail)
	case KindForbidden:
		return Forbidden[Out]()
	case KindInternalError:
		return InternalError[Out](o.err)
	default:
		return InternalError[Out](errNotFailure)
	}
}
