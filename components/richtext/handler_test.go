package richtext

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resumegen/pkg/richtext"
)

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestHandler_PostMounted(t *testing.T) {
	h := NewHandler()

	body := `{"content":"<p>Hello <strong>World</strong></p>","style":{"color":"red"},"phase":"mounted"}`
	req := httptest.NewRequest(http.MethodPost, "/api/richtext", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	if resp.Phase != richtext.PhaseMounted || resp.Fallback != "" {
		t.Fatalf("unexpected phase/fallback %v %q", resp.Phase, resp.Fallback)
	}
	want := richtext.Nodes{
		richtext.Element(0, "p", richtext.Text(0, "Hello "), richtext.Element(1, "strong", richtext.Text(0, "World"))),
	}
	if diff := cmp.Diff(want, resp.Nodes); diff != "" {
		t.Fatalf("nodes mismatch (-want +got):\n%s", diff)
	}
	if resp.HTML != `<div style="color: red"><p>Hello <strong>World</strong></p></div>` {
		t.Fatalf("unexpected html %q", resp.HTML)
	}
}

func TestHandler_GetUnmounted(t *testing.T) {
	h := NewHandler()

	q := url.Values{"content": {"<ul><li>A &amp; B</li></ul>"}, "phase": {"unmounted"}}
	req := httptest.NewRequest(http.MethodGet, "/api/richtext?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	if resp.Phase != richtext.PhaseUnmounted {
		t.Fatalf("expected unmounted, got %v", resp.Phase)
	}
	if resp.Fallback != "A   B" {
		t.Fatalf("unexpected fallback %q", resp.Fallback)
	}
	if len(resp.Nodes) != 0 {
		t.Fatalf("expected no nodes before mount, got %v", resp.Nodes)
	}
	if resp.HTML != "<div>A   B</div>" {
		t.Fatalf("unexpected html %q", resp.HTML)
	}
}

func TestHandler_DefaultPhaseAndEmptyContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/richtext", nil))
	resp := decodeResponse(t, rec)
	if resp.Phase != richtext.PhaseMounted || len(resp.Nodes) != 0 || resp.HTML != "<div></div>" {
		t.Fatalf("unexpected empty response %#v", resp)
	}

	rec = httptest.NewRecorder()
	NewHandler(WithDefaultPhase(richtext.PhaseUnmounted)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/richtext?content=%3Cb%3Ex%3C%2Fb%3E", nil))
	resp = decodeResponse(t, rec)
	if resp.Phase != richtext.PhaseUnmounted || resp.Fallback != "x" {
		t.Fatalf("unexpected default-phase response %#v", resp)
	}
}

func TestHandler_Sanitize(t *testing.T) {
	h := NewHandler(WithSanitize(true))

	req := httptest.NewRequest(http.MethodPost, "/api/richtext", strings.NewReader(`{"content":"<p>x<script>alert(1)</script></p>"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := decodeResponse(t, rec)
	if resp.HTML != "<div><p>x</p></div>" {
		t.Fatalf("unexpected sanitised html %q", resp.HTML)
	}
}

func TestHandler_SanitizeKeepsFallbackText(t *testing.T) {
	h := NewHandler(WithSanitize(true))

	body := `{"content":"<p>I've led \"Apollo\" at R&D</p>","phase":"unmounted"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/richtext", strings.NewReader(body)))

	resp := decodeResponse(t, rec)
	if resp.Fallback != `I've led "Apollo" at R&D` {
		t.Fatalf("unexpected fallback %q", resp.Fallback)
	}
}

func TestHandler_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		req  *http.Request
	}{
		{name: "malformed json", req: httptest.NewRequest(http.MethodPost, "/api/richtext", strings.NewReader(`{"content":`))},
		{name: "unknown phase", req: httptest.NewRequest(http.MethodGet, "/api/richtext?phase=later", nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler().ServeHTTP(rec, tc.req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/richtext", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
}

func TestHandler_GuardStatus(t *testing.T) {
	h := NewHandler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusTooManyRequests}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/richtext", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := New().RegisterRoutes(mux, "/v1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pattern != "/v1/api/richtext" {
		t.Fatalf("unexpected pattern %q", pattern)
	}
	if got := MountPath("/", WithRoutePath("render")); got != "/render" {
		t.Fatalf("unexpected mount path %q", got)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pattern+"?content=hi", nil))
	resp := decodeResponse(t, rec)
	if resp.Nodes.TextContent() != "hi" {
		t.Fatalf("unexpected nodes %v", resp.Nodes)
	}
}
