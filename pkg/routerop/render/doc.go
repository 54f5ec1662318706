// Package render turns an Outcome into the HTTP response it stands for.
// Encoding is a pure mapping from variant to status, headers and body; its
// only side effect is one operational log record per server failure, and
// nothing about a failure is ever sent to the client.
//
// Highlights:
// - Encode: total mapping Outcome[T] -> Response (status, headers, body)
// - Write/Apply: send an outcome or a prepared Response over net/http
// - Handler: adapt an outcome-returning function to http.HandlerFunc
// - Docs: the fixed set of responses Encode can produce, for API description
package render
