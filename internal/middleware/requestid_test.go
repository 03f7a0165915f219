package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var fromCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if fromCtx == "" {
		t.Fatalf("request id must be generated when none is supplied")
	}
	if got := rec.Header().Get("X-Request-ID"); got != fromCtx {
		t.Fatalf("response header = %q, context = %q, want them equal", got, fromCtx)
	}
}

func TestRequestIDHonorsUpstreamID(t *testing.T) {
	var fromCtx string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "proxy-assigned-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if fromCtx != "proxy-assigned-id" {
		t.Fatalf("context id = %q, want the upstream id", fromCtx)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "proxy-assigned-id" {
		t.Fatalf("response header = %q, want the upstream id", got)
	}
}

func TestRequestIDFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := RequestIDFromContext(req.Context()); got != "" {
		t.Fatalf("id = %q, want empty without the middleware", got)
	}
}
