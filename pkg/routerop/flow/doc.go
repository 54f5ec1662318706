// Package flow is the short-circuit protocol between outcome-producing
// sub-operations. A Step[T] either proceeds (with or without a value) or
// aborts with an error; the first abort wins and later callbacks never run.
// Lowering an Outcome onto a Step and lifting the Step back reconstructs
// the originating variant, so a NotFound in the middle of a chain still
// encodes as a 404 at the end.
//
// Highlights:
// - Proceed/ProceedNone/Abort: construct Step[T]
// - FromOutcome / (Step).Outcome(): cross between the two protocols
// - Switch/Map/Try/Tee/Finally: compose steps, context handed through
// - AndThen: outcome-level chaining built on the same rules
// - ErrNotFound/ErrBadRequest/ErrForbidden: abort identities for errors.Is
package flow
