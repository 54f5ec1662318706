// Package chain provides a fluent wrapper around flow.Step[T]
// for building synchronous request pipelines out of flow primitives.
//
// It composes Switch, Map, Try, Tee and Finally behind a convenient
// Chain[T] type, so a handler reads as one pipeline from lookup to the
// outcome handed to the encoder. The first failed step stops the chain.
//
// Key operations:
// - Start/FromValue/FromOutcome: begin a chain from a step, value or outcome
// - Then: switch to a new Step[U] via a function
// - ThenOutcome: switch through an outcome-returning operation
// - ThenTry: call a function (U, error) and convert error to an abort
// - Map: transform the carried value (T -> U)
// - Ensure: run side effects on the value without changing the step
// - Step/Outcome/Finally: leave the chain
package chain
