package handlers_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csg33k/employee-admin/internal/handlers"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := handlers.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = handlers.RequestIDFrom(r.Context())
	}))

	w := serve(h, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(handlers.RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/employees", nil)
	r.Header.Set(handlers.RequestIDHeader, "abc-123")
	w = serve(h, r)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(handlers.RequestIDHeader))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := handlers.RequestID(handlers.Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	r := httptest.NewRequest(http.MethodDelete, "/employees/7", nil)
	r.Header.Set(handlers.RequestIDHeader, "req-1")
	serve(h, r)

	out := buf.String()
	assert.Contains(t, out, "method=DELETE")
	assert.Contains(t, out, "path=/employees/7")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "request_id=req-1")
}

func TestTrimTrailingSlash(t *testing.T) {
	h := handlers.TrimTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	w := serve(h, httptest.NewRequest(http.MethodGet, "/employees/edit/7/?x=1", nil))
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/employees/edit/7?x=1", w.Header().Get("Location"))

	w = serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(h, httptest.NewRequest(http.MethodGet, "/employees", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
