package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(origins []string) http.Handler {
	return CORSMiddleware(origins)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSMiddlewareEchoesAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	corsHandler([]string{"http://localhost:3000"}).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want the request origin", got)
	}
}

func TestCORSMiddlewareSkipsDisallowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/convert", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()

	corsHandler([]string{"http://localhost:3000"}).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want no CORS headers", got)
	}
}

func TestCORSMiddlewarePreflightShortCircuits(t *testing.T) {
	called := false
	handler := CORSMiddleware([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/convert", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if called {
		t.Fatal("preflight request must not reach the handler")
	}
}
