package routerop

import (
	"encoding/json"
	"fmt"
)

// Serializable is the capability required of diagnostic payloads carried by
// BadRequest outcomes: a fallible rendering to the wire format plus a
// human-readable rendering for logs. Any type with both methods conforms
// structurally; Detail adapts ordinary values so callers never write
// boilerplate adapters.
type Serializable interface {
	// Serialize renders the value to its wire (JSON) representation.
	Serialize() ([]byte, error)
	// String returns a debug rendering. It must be safe to call regardless
	// of whether Serialize would succeed.
	String() string
}

// Detail wraps an arbitrary value as a Serializable, using the JSON codec for
// the wire rendering and the %+v verb for the debug rendering.
func Detail(v any) Serializable { return detail{v: v} }

type detail struct{ v any }

func (d detail) Serialize() ([]byte, error) { return json.Marshal(d.v) }

func (d detail) String() string { return fmt.Sprintf("%+v", d.v) }

// NoBody marks payload types whose success-class outcomes carry no response
// body. The encoder skips serialization entirely for such payloads, under
// both Success and Created.
type NoBody interface {
	NoResponseBody()
}

// Empty is the canonical bodyless payload: use Outcome[Empty] for handlers
// that respond with a status code only.
type Empty struct{}

// NoResponseBody marks Empty as bodyless.
func (Empty) NoResponseBody() {}
