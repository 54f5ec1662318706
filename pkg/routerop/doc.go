// Package routerop maps the outcome of a request-handling operation onto a
// closed set of HTTP response semantics. An Outcome[T] has exactly one active
// variant (Success, Created, NotFound, BadRequest, Forbidden or
// InternalError), constructed once by handler logic and consumed exactly once
// by the render package, or chained further through the flow package.
//
// Highlights:
// - Success/Created/NotFound/BadRequest/Forbidden/InternalError: construct Outcome[T]
// - From/FromFound: adapt (value, error) results from a data layer
// - FailureFrom: carry a failure outcome across payload types
// - Serializable/Detail: type-erased diagnostic payloads for BadRequest
// - Empty/NoBody: payload types that suppress response body emission
package routerop
