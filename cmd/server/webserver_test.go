package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWebServer(t *testing.T) {
	srv := webServer(8080, 2)
	if srv.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", srv.Addr)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/regions", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /regions: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"seahorse-valley"`) {
		t.Errorf("GET /regions = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws/bench/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /ws/bench/nope: status %d, want 404", rec.Code)
	}
}
