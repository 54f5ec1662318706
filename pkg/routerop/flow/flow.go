package flow

import (
	"context"
	"errors"

	"github.com/ib-77/routerop/pkg/routerop"
)

// FromOutcome lowers an outcome onto the step protocol. Success-class
// outcomes proceed with their payload (a Created location only means
// something at the final encoding step and is dropped here); every
// failure becomes an abort whose error identifies the variant.
func FromOutcome[T any](o routerop.Outcome[T]) Step[T] {
	switch o.Kind() {
	case routerop.KindSuccess, routerop.KindCreated:
		return Proceed(o.Payload())
	case routerop.KindNotFound:
		return Abort[T](ErrNotFound)
	case routerop.KindBadRequest:
		return Abort[T](badRequestError{detail: o.Detail()})
	case routerop.KindForbidden:
		return Abort[T](ErrForbidden)
	default:
		return Abort[T](o.Err())
	}
}

// Outcome lifts the step back to an outcome. A proceeding step becomes
// Success, an empty one NotFound, and an abort reconstructs the variant
// its error identifies, falling back to InternalError for operational
// failures.
func (s Step[T]) Outcome() routerop.Outcome[T] {
	if s.aborted {
		return abortOutcome[T](s.err)
	}
	if !s.hasValue {
		return routerop.NotFound[T]()
	}
	return routerop.Success(s.value)
}

func abortOutcome[T any](err error) routerop.Outcome[T] {
	var bad badRequestError
	switch {
	case errors.As(err, &bad):
		return routerop.BadRequest[T](bad.detail)
	case errors.Is(err, ErrNotFound):
		return routerop.NotFound[T]()
	case errors.Is(err, ErrBadRequest):
		return routerop.BadRequest[T](nil)
	case errors.Is(err, ErrForbidden):
		return routerop.Forbidden[T]()
	default:
		return routerop.InternalError[T](err)
	}
}

// Switch runs onValue when input proceeds with a value; aborts and empty
// proceeds pass through untouched and onValue never runs.
func Switch[In any, Out any](ctx context.Context,
	input Step[In],
	onValue func(ctx context.Context, v In) Step[Out]) Step[Out] {

	if !input.hasValue || input.aborted {
		return AbortFrom[In, Out](input)
	}
	return onValue(ctx, input.value)
}

// Map transforms the carried value; the pipeline state is untouched.
func Map[In any, Out any](ctx context.Context,
	input Step[In],
	onValue func(ctx context.Context, v In) Out) Step[Out] {

	if !input.hasValue || input.aborted {
		return AbortFrom[In, Out](input)
	}
	return Proceed(onValue(ctx, input.value))
}

// Try runs a fallible transform; a returned error aborts the pipeline.
func Try[In any, Out any](ctx context.Context,
	input Step[In],
	onValue func(ctx context.Context, v In) (Out, error)) Step[Out] {

	if !input.hasValue || input.aborted {
		return AbortFrom[In, Out](input)
	}

	out, err := onValue(ctx, input.value)
	if err != nil {
		return Abort[Out](err)
	}
	return Proceed(out)
}

// Tee runs a side effect on the carried value and passes input through.
func Tee[T any](ctx context.Context,
	input Step[T],
	onValue func(ctx context.Context, v T)) Step[T] {

	if input.hasValue && !input.aborted {
		onValue(ctx, input.value)
	}
	return input
}

// Finally collapses a step into a plain value.
func Finally[In any, Out any](ctx context.Context, input Step[In],
	onValue func(ctx context.Context, v In) Out,
	onNone func(ctx context.Context) Out,
	onAbort func(ctx context.Context, err error) Out) Out {

	if input.aborted {
		return onAbort(ctx, input.err)
	}
	if !input.hasValue {
		return onNone(ctx)
	}
	return onValue(ctx, input.value)
}

// AndThen chains outcome-producing operations under the step rules: the
// first failure short-circuits, next never runs after it, and the final
// outcome still names the failure that stopped the chain.
func AndThen[In any, Out any](ctx context.Context, o routerop.Outcome[In],
	next func(ctx context.Context, v In) routerop.Outcome[Out]) routerop.Outcome[Out] {

	s := FromOutcome(o)
	if !s.hasValue || s.aborted {
		return AbortFrom[In, Out](s).Outcome()
	}
	return next(ctx, s.value)
}
