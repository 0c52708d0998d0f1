package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/corpuseditor/internal/pkg/pkglog"
)

type staticGenerator struct {
	value string
	calls int
}

func (g *staticGenerator) Generate() string {
	g.calls++
	return g.value
}

func TestMiddlewareCorrelationID(t *testing.T) {
	tests := []struct {
		name      string
		header    http.Header
		want      string
		generated bool
	}{
		{
			name:   "correlation header",
			header: http.Header{HeaderCorrelationID: {"header-cid"}},
			want:   "header-cid",
		},
		{
			name:   "request id fallback",
			header: http.Header{HeaderRequestID: {"req-1"}},
			want:   "req-1",
		},
		{
			name:   "correlation header preferred",
			header: http.Header{HeaderCorrelationID: {"cid"}, HeaderRequestID: {"req-1"}},
			want:   "cid",
		},
		{
			name:      "control characters rejected",
			header:    http.Header{HeaderCorrelationID: {"bad\x00id"}},
			want:      "generated",
			generated: true,
		},
		{
			name:      "missing",
			header:    http.Header{},
			want:      "generated",
			generated: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &staticGenerator{value: "generated"}

			var gotCID string
			wrapped := middlewareCorrelationID(gen)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCID = pkglog.GetCorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/article", nil)
			req.Header = tc.header
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if got := rec.Header().Get(HeaderCorrelationID); got != tc.want {
				t.Fatalf("expected response cid %q, got %q", tc.want, got)
			}
			if gotCID != tc.want {
				t.Fatalf("expected context cid %q, got %q", tc.want, gotCID)
			}
			if called := gen.calls == 1; called != tc.generated {
				t.Fatalf("expected generator called=%v, got %d calls", tc.generated, gen.calls)
			}
		})
	}
}

func TestMiddlewareCorrelationIDWithoutGenerator(t *testing.T) {
	var gotCID string
	wrapped := middlewareCorrelationID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCID = pkglog.GetCorrelationID(r.Context())
	}))

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get(HeaderCorrelationID); got != "" {
		t.Fatalf("expected no cid header, got %q", got)
	}
	if gotCID != "[invalid_chain_id]" {
		t.Fatalf("expected no cid in context, got %q", gotCID)
	}
}
