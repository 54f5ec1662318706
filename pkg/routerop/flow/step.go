package flow

import (
	"time"

	"github.com/google/uuid"
)

// Step is the two-case signal passed between sub-operations: proceed,
// optionally carrying a value, or abort with an error. The zero value is
// an empty proceed.
type Step[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	hasValue  bool
	aborted   bool
}

// Proceed continues the pipeline with a value.
func Proceed[T any](v T) Step[T] {
	return Step[T]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ProceedNone continues the pipeline without a value. It lifts back to a
// NotFound outcome.
func ProceedNone[T any]() Step[T] {
	return Step[T]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Abort stops the pipeline. Aborts built from an outcome keep its variant
// recoverable through the err value; see FromOutcome.
func Abort[T any](err error) Step[T] {
	return Step[T]{
		err:       err,
		aborted:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// AbortFrom carries an abort or an empty proceed across value types,
// keeping the source step's identity and metadata. The value itself
// cannot cross.
func AbortFrom[In, Out any](from Step[In]) Step[Out] {
	return Step[Out]{
		err:       from.err,
		aborted:   from.aborted,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (s Step[T]) Value() T {
	return s.value
}

func (s Step[T]) HasValue() bool {
	return s.hasValue
}

func (s Step[T]) Aborted() bool {
	return s.aborted
}

func (s Step[T]) Err() error {
	return s.err
}

func (s Step[T]) CreatedAt() time.Time {
	return s.createdAt
}

func (s Step[T]) Id() uuid.UUID {
	return s.id
}
