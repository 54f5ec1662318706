package routerop

import "fmt"

// Kind identifies the active variant of an Outcome.
type Kind uint8

const (
	// KindInternalError is deliberately the zero value: an Outcome that was
	// never constructed reports a server failure instead of a phantom success.
	KindInternalError Kind = iota
	KindSuccess
	KindCreated
	KindNotFound
	KindBadRequest
	KindForbidden
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "Success"
	case KindCreated:
		return "Created"
	case KindNotFound:
		return "NotFound"
	case KindBadRequest:
		return "BadRequest"
	case KindForbidden:
		return "Forbidden"
	case KindInternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Outcome is the terminal decision of a request handler, parameterized by the
// payload type sent on success. It is a plain immutable value: exactly one
// variant is active, the variant constructors are the only way to build one,
// and each value belongs to a single in-flight request.
type Outcome[T any] struct {
	kind     Kind
	payload  T
	location string
	detail   Serializable
	err      error
}

// Success returns a 200 OK outcome sending payload in the response body.
func Success[T any](payload T) Outcome[T] {
	return Outcome[T]{kind: KindSuccess, payload: payload}
}

// Created returns a 201 Created outcome sending payload in the response body
// and location in the Location header. The location string is opaque to this
// layer and never validated.
func Created[T any](payload T, location string) Outcome[T] {
	return Outcome[T]{kind: KindCreated, payload: payload, location: location}
}

// NotFound returns a 404 Not Found outcome carrying no payload.
func NotFound[T any]() Outcome[T] {
	return Outcome[T]{kind: KindNotFound}
}

// BadRequest returns a 400 Bad Request outcome. A non-nil detail is
// serialized into the response body to describe the problem to the caller;
// pass nil for a bare 400.
func BadRequest[T any](detail Serializable) Outcome[T] {
	return Outcome[T]{kind: KindBadRequest, detail: detail}
}

// Forbidden returns a 401 Unauthorized outcome carrying no payload.
func Forbidden[T any]() Outcome[T] {
	return Outcome[T]{kind: KindForbidden}
}

// InternalError returns a 500 Internal Server Error outcome. The cause is
// written to the operational log by the encoder and never sent to the client.
func InternalError[T any](err error) Outcome[T] {
	return Outcome[T]{kind: KindInternalError, err: err}
}

// Kind reports which variant is active.
func (o Outcome[T]) Kind() Kind { return o.kind }

// IsSuccess reports whether the outcome is success-class (Success or Created).
func (o Outcome[T]) IsSuccess() bool {
	return o.kind == KindSuccess || o.kind == KindCreated
}

// Payload returns the value carried by Success and Created outcomes. For
// every other variant it returns T's zero value.
func (o Outcome[T]) Payload() T { return o.payload }

// Location returns the Location header value carried by Created outcomes.
func (o Outcome[T]) Location() string { return o.location }

// Detail returns the diagnostic payload of a BadRequest outcome, or nil.
func (o Outcome[T]) Detail() Serializable { return o.detail }

// Err returns the cause carried by InternalError outcomes.
func (o Outcome[T]) Err() error { return o.err }

// String returns a debug rendering of the outcome for logs and test output.
func (o Outcome[T]) String() string {
	switch o.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%+v)", o.payload)
	case KindCreated:
		return fmt.Sprintf("Created(%+v, %q)", o.payload, o.location)
	case KindBadRequest:
		if o.detail == nil {
			return "BadRequest"
		}
		return fmt.Sprintf("BadRequest(%s)", o.detail.String())
	case KindInternalError:
		if o.err == nil {
			return "InternalError(unknown error)"
		}
		return fmt.Sprintf("InternalError(%s)", o.err.Error())
	default:
		return o.kind.String()
	}
}
