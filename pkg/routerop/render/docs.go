package render

import (
	"net/http"
	"reflect"

	"github.com/ib-77/routerop/pkg/routerop"
)

// StatusDoc describes one response Encode can produce, for feeding API
// description generators. MediaType and Schema are empty for responses
// that never carry a body.
type StatusDoc struct {
	Status    int
	MediaType string
	Schema    string
}

// Docs lists the responses Encode emits for payload type T: the two
// success statuses carry T's schema name unless T suppresses its body,
// the failure statuses are content-less. BadRequest detail bodies are
// shaped at runtime and stay undocumented here.
func Docs[T any]() []StatusDoc {
	var zero T
	success := StatusDoc{Status: http.StatusOK}
	created := StatusDoc{Status: http.StatusCreated}
	if _, bodyless := any(zero).(routerop.NoBody); !bodyless {
		schema := reflect.TypeOf(&zero).Elem().String()
		success.MediaType, success.Schema = MediaTypeJSON, schema
		created.MediaType, created.Schema = MediaTypeJSON, schema
	}
	return []StatusDoc{
		success,
		created,
		{Status: http.StatusBadRequest},
		{Status: http.StatusUnauthorized},
		{Status: http.StatusNotFound},
		{Status: http.StatusInternalServerError},
	}
}
