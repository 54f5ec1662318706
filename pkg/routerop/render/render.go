package render

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ib-77/routerop/pkg/routerop"
)

// MediaTypeJSON is the only media type the encoder emits.
const MediaTypeJSON = "application/json"

// Response is a fully decided HTTP response. A nil Body means no body is
// written and no Content-Type is set; Header is never nil.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Encode maps an outcome onto its response. The mapping is total: every
// outcome value, the zero value included, produces one of the statuses
// 200, 201, 400, 401, 404 or 500. Server failures write exactly one record
// to log; serialization failures of a present payload or detail are
// promoted to a 500 with their own record.
func Encode[T any](o routerop.Outcome[T], log zerolog.Logger) Response {
	switch o.Kind() {
	case routerop.KindSuccess:
		return encodePayload(http.StatusOK, nil, o.Payload(), log)
	case routerop.KindCreated:
		h := http.Header{}
		h.Set("Location", o.Location())
		return encodePayload(http.StatusCreated, h, o.Payload(), log)
	case routerop.KindNotFound:
		return Response{Status: http.StatusNotFound, Header: http.Header{}}
	case routerop.KindBadRequest:
		return encodeDetail(o.Detail(), log)
	case routerop.KindForbidden:
		// The Forbidden variant answers with 401, keeping the original
		// contract of this outcome set.
		return Response{Status: http.StatusUnauthorized, Header: http.Header{}}
	default:
		return failure(log, o.Err(), "request failed")
	}
}

// Write encodes o and sends it over w.
func Write[T any](w http.ResponseWriter, o routerop.Outcome[T], log zerolog.Logger) {
	Apply(w, Encode(o, log))
}

// Apply sends a prepared response over w.
func Apply(w http.ResponseWriter, resp Response) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}
}

// Handler adapts an outcome-returning function to a plain net/http handler.
// Routing, middleware and request parsing stay with the caller.
func Handler[T any](h func(*http.Request) routerop.Outcome[T], log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		Write(w, h(r), log)
	}
}

func encodePayload[T any](status int, h http.Header, payload T, log zerolog.Logger) Response {
	if h == nil {
		h = http.Header{}
	}
	if _, bodyless := any(payload).(routerop.NoBody); bodyless {
		return Response{Status: status, Header: h}
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return failure(log, err, "response encoding failed")
	}
	h.Set("Content-Type", MediaTypeJSON)
	return Response{Status: status, Header: h, Body: b}
}

func encodeDetail(d routerop.Serializable, log zerolog.Logger) Response {
	if d == nil {
		return Response{Status: http.StatusBadRequest, Header: http.Header{}}
	}
	b, err := d.Serialize()
	if err != nil {
		return failure(log, err, "response encoding failed")
	}
	h := http.Header{}
	h.Set("Content-Type", MediaTypeJSON)
	return Response{Status: http.StatusBadRequest, Header: h, Body: b}
}

// stackTracer is the capture surface of github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// failure writes the single operational record for a server failure and
// returns the bare 500. The cause never reaches the response.
func failure(log zerolog.Logger, cause error, msg string) Response {
	ev := log.Error()
	if cause != nil {
		ev = ev.Err(cause)
	}
	var st stackTracer
	if errors.As(cause, &st) {
		ev = ev.Str("stack", fmt.Sprintf("%+v", st.StackTrace()))
	} else {
		ev = ev.Str("stack", "no stack trace available")
	}
	ev.Msg(msg)
	return Response{Status: http.StatusInternalServerError, Header: http.Header{}}
}
