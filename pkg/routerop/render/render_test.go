package render

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ib-77/routerop/pkg/routerop"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
}

// logRecords returns the individual records written to a zerolog buffer.
func logRecords(buf *bytes.Buffer) []string {
	var recs []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line != "" {
			recs = append(recs, line)
		}
	}
	return recs
}

func TestEncode_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	resp := Encode(routerop.Success(item{ID: 7}), log)
	if resp.Status != http.StatusOK {
		t.Fatalf("status=%d", resp.Status)
	}
	if string(resp.Body) != `{"id":7}` {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
	if resp.Header.Get("Content-Type") != MediaTypeJSON {
		t.Fatalf("unexpected content type: %q", resp.Header.Get("Content-Type"))
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got: %s", buf.String())
	}
}

func TestEncode_SuccessBodyless(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.Success(routerop.Empty{}), zerolog.New(&buf))
	if resp.Status != http.StatusOK {
		t.Fatalf("status=%d", resp.Status)
	}
	if resp.Body != nil {
		t.Fatalf("expected no body for Empty payload, got: %s", resp.Body)
	}
	if resp.Header.Get("Content-Type") != "" {
		t.Fatalf("expected no content type without body, got: %q", resp.Header.Get("Content-Type"))
	}
}

func TestEncode_Created(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.Created(item{ID: 7}, "/items/7"), zerolog.New(&buf))
	if resp.Status != http.StatusCreated {
		t.Fatalf("status=%d", resp.Status)
	}
	if resp.Header.Get("Location") != "/items/7" {
		t.Fatalf("unexpected location: %q", resp.Header.Get("Location"))
	}
	if string(resp.Body) != `{"id":7}` {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
	if resp.Header.Get("Content-Type") != MediaTypeJSON {
		t.Fatalf("unexpected content type: %q", resp.Header.Get("Content-Type"))
	}
}

func TestEncode_CreatedBodyless(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.Created(routerop.Empty{}, "/jobs/1"), zerolog.New(&buf))
	if resp.Status != http.StatusCreated || resp.Body != nil {
		t.Fatalf("expected bodyless 201, got status=%d body=%s", resp.Status, resp.Body)
	}
	if resp.Header.Get("Location") != "/jobs/1" {
		t.Fatalf("unexpected location: %q", resp.Header.Get("Location"))
	}
}

func TestEncode_NotFound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.NotFound[item](), zerolog.New(&buf))
	if resp.Status != http.StatusNotFound || resp.Body != nil {
		t.Fatalf("expected bare 404, got status=%d body=%s", resp.Status, resp.Body)
	}
	if len(resp.Header) != 0 {
		t.Fatalf("expected no headers, got: %v", resp.Header)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got: %s", buf.String())
	}
}

func TestEncode_BadRequestDetail(t *testing.T) {
	t.Parallel()

	d := routerop.Detail(struct {
		Field  string `json:"field"`
		Reason string `json:"reason"`
	}{Field: "name", Reason: "required"})

	var buf bytes.Buffer
	resp := Encode(routerop.BadRequest[item](d), zerolog.New(&buf))
	if resp.Status != http.StatusBadRequest {
		t.Fatalf("status=%d", resp.Status)
	}
	if string(resp.Body) != `{"field":"name","reason":"required"}` {
		t.Fatalf("unexpected body: %s", resp.Body)
	}
	if resp.Header.Get("Content-Type") != MediaTypeJSON {
		t.Fatalf("unexpected content type: %q", resp.Header.Get("Content-Type"))
	}
}

func TestEncode_BadRequestBare(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.BadRequest[item](nil), zerolog.New(&buf))
	if resp.Status != http.StatusBadRequest || resp.Body != nil {
		t.Fatalf("expected bare 400, got status=%d body=%s", resp.Status, resp.Body)
	}
}

func TestEncode_Forbidden401(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.Forbidden[item](), zerolog.New(&buf))
	if resp.Status != http.StatusUnauthorized || resp.Body != nil {
		t.Fatalf("expected bare 401, got status=%d body=%s", resp.Status, resp.Body)
	}
}

func TestEncode_InternalError_LogsOnce(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.InternalError[item](pkgerrors.New("db down")), zerolog.New(&buf))
	if resp.Status != http.StatusInternalServerError || resp.Body != nil {
		t.Fatalf("expected bare 500, got status=%d body=%s", resp.Status, resp.Body)
	}

	recs := logRecords(&buf)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one log record, got %d: %v", len(recs), recs)
	}
	if !strings.Contains(recs[0], `"level":"error"`) || !strings.Contains(recs[0], "db down") {
		t.Fatalf("unexpected log record: %s", recs[0])
	}
	// pkg/errors captured a trace at the construction site
	if !strings.Contains(recs[0], "render_test.go") {
		t.Fatalf("expected stack trace in log record: %s", recs[0])
	}
}

func TestEncode_InternalError_NoTraceMarker(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Encode(routerop.InternalError[item](errPlain), zerolog.New(&buf))

	recs := logRecords(&buf)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one log record, got %d", len(recs))
	}
	if !strings.Contains(recs[0], "no stack trace available") {
		t.Fatalf("expected no-trace marker, got: %s", recs[0])
	}
}

func TestEncode_SerializationFailureIs500(t *testing.T) {
	t.Parallel()

	type unencodable struct {
		C chan int `json:"c"`
	}

	var buf bytes.Buffer
	resp := Encode(routerop.Success(unencodable{C: make(chan int)}), zerolog.New(&buf))
	if resp.Status != http.StatusInternalServerError || resp.Body != nil {
		t.Fatalf("expected bare 500 for unencodable payload, got status=%d body=%s", resp.Status, resp.Body)
	}

	recs := logRecords(&buf)
	if len(recs) != 1 || !strings.Contains(recs[0], "response encoding failed") {
		t.Fatalf("expected one encoding-failure record, got: %v", recs)
	}
}

func TestEncode_DetailSerializationFailureIs500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	resp := Encode(routerop.BadRequest[item](routerop.Detail(make(chan int))), zerolog.New(&buf))
	if resp.Status != http.StatusInternalServerError || resp.Body != nil {
		t.Fatalf("expected bare 500 for unencodable detail, got status=%d body=%s", resp.Status, resp.Body)
	}
	if len(logRecords(&buf)) != 1 {
		t.Fatalf("expected exactly one log record, got: %s", buf.String())
	}
}

// A handler that never decided anything still answers as a server failure.
func TestEncode_ZeroOutcomeIs500(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var o routerop.Outcome[item]
	resp := Encode(o, zerolog.New(&buf))
	if resp.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for zero outcome, got %d", resp.Status)
	}
	if len(logRecords(&buf)) != 1 {
		t.Fatalf("expected exactly one log record, got: %s", buf.String())
	}
}

func TestWrite_AppliesStatusHeadersBody(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := httptest.NewRecorder()
	Write(w, routerop.Created(item{ID: 7}, "/items/7"), zerolog.New(&buf))

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("Location") != "/items/7" {
		t.Fatalf("unexpected location: %q", w.Header().Get("Location"))
	}
	if w.Body.String() != `{"id":7}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestHandler_EndToEnd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := Handler(func(r *http.Request) routerop.Outcome[item] {
		if r.URL.Path != "/items/7" {
			return routerop.NotFound[item]()
		}
		return routerop.Success(item{ID: 7})
	}, zerolog.New(&buf))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"id":7}` {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/8", nil))
	if w.Code != http.StatusNotFound || w.Body.Len() != 0 {
		t.Fatalf("expected bare 404, got: %d %s", w.Code, w.Body.String())
	}
}

// errPlain carries no stack capture.
var errPlain = errors.New("plain failure")
