package chain

import (
	"context"

	"github.com/ib-77/routerop/pkg/routerop"
	"github.com/ib-77/routerop/pkg/routerop/flow"
)

// Chain wraps a flow.Step with context to enable fluent chaining
type Chain[T any] struct {
	ctx  context.Context
	step flow.Step[T]
}

// Start creates a new chain from a flow.Step
func Start[T any](ctx context.Context, step flow.Step[T]) *Chain[T] {
	return &Chain[T]{
		ctx:  ctx,
		step: step,
	}
}

// FromValue creates a new chain from a proceeding value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:  ctx,
		step: flow.Proceed(value),
	}
}

// FromOutcome creates a new chain from an outcome, lowering it onto the
// step protocol
func FromOutcome[T any](ctx context.Context, o routerop.Outcome[T]) *Chain[T] {
	return &Chain[T]{
		ctx:  ctx,
		step: flow.FromOutcome(o),
	}
}

// Step returns the underlying flow.Step
func (c *Chain[T]) Step() flow.Step[T] {
	return c.step
}

// Outcome lifts the chain's final step back to an outcome for encoding
func (c *Chain[T]) Outcome() routerop.Outcome[T] {
	return c.step.Outcome()
}

// Then chains a function that returns flow.Step[U]
func Then[T, U any](c *Chain[T], onValue func(context.Context, T) flow.Step[U]) *Chain[U] {
	return &Chain[U]{
		ctx:  c.ctx,
		step: flow.Switch[T, U](c.ctx, c.step, onValue),
	}
}

// ThenOutcome chains an outcome-returning operation
func ThenOutcome[T, U any](c *Chain[T], onValue func(context.Context, T) routerop.Outcome[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		step: flow.Switch[T, U](c.ctx, c.step,
			func(ctx context.Context, v T) flow.Step[U] {
				return flow.FromOutcome(onValue(ctx, v))
			}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnValue func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:  c.ctx,
		step: flow.Try[T, U](c.ctx, c.step, tryOnValue),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValue func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:  c.ctx,
		step: flow.Map[T, U](c.ctx, c.step, onValue),
	}
}

// Ensure performs a side effect without changing the step
func (c *Chain[T]) Ensure(onValue func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:  c.ctx,
		step: flow.Tee[T](c.ctx, c.step, onValue),
	}
}

// Finally collapses the chain into a final value using flow.Finally
func Finally[T, U any](c *Chain[T], onValue func(context.Context, T) U, onNone func(context.Context) U, onAbort func(context.Context, error) U) U {
	return flow.Finally[T, U](c.ctx, c.step, onValue, onNone, onAbort)
}
