package flow

import (
	"errors"

	"github.com/ib-77/routerop/pkg/routerop"
)

// Abort identities. An abort carrying one of these (match with errors.Is,
// wrapping allowed) lifts back to the client-class outcome it names
// instead of degrading to a server failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrForbidden  = errors.New("forbidden")
)

// badRequestError carries the diagnostic detail of a BadRequest outcome
// through an abort. It matches ErrBadRequest under errors.Is.
type badRequestError struct {
	detail routerop.Serializable
}

func (e badRequestError) Error() string {
	if e.detail == nil {
		return ErrBadRequest.Error()
	}
	return "bad request: " + e.detail.String()
}

func (e badRequestError) Is(target error) bool {
	return target == ErrBadRequest
}
