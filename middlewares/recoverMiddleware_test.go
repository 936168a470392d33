package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kitchen printer on fire")
	})

	rec := httptest.NewRecorder()
	Recover(log)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "kitchen printer on fire") {
		t.Fatalf("panic value not logged: %s", buf.String())
	}
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := CORS(ok)

	tests := []struct {
		name         string
		method       string
		headers      map[string]string
		status       int
		allowOrigin  string
		allowHeaders string
	}{
		{
			name:   "preflight",
			method: http.MethodOptions,
			headers: map[string]string{
				"Origin":                         "https://tables.example.com",
				"Access-Control-Request-Method":  http.MethodPatch,
				"Access-Control-Request-Headers": "Content-Type, X-Admin-Token",
			},
			status:       http.StatusNoContent,
			allowOrigin:  "*",
			allowHeaders: "Content-Type,X-Admin-Token",
		},
		{
			name:        "simple request",
			method:      http.MethodGet,
			headers:     map[string]string{"Origin": "https://tables.example.com"},
			status:      http.StatusOK,
			allowOrigin: "*",
		},
		{
			name:   "same origin",
			method: http.MethodGet,
			status: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/cart/update", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.allowOrigin {
				t.Fatalf("allow origin = %q, want %q", got, tt.allowOrigin)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); got != tt.allowHeaders {
				t.Fatalf("allow headers = %q, want %q", got, tt.allowHeaders)
			}
		})
	}
}
