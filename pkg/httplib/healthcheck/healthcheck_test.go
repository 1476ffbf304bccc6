package healthcheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	hc := HealthCheck{
		Probes: []Probe{
			{Name: "postgres", Check: func(ctx context.Context) error { return nil }},
		},
	}
	handler := hc.Handler(next)

	testCases := []struct {
		name     string
		method   string
		path     string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", wantCode: http.StatusOK},
		{name: "passthrough", method: http.MethodGet, path: "/orders", wantCode: http.StatusTeapot},
		{name: "health wrong method passes through", method: http.MethodPost, path: "/health", wantCode: http.StatusTeapot},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestReadinessReportsFailedProbe(t *testing.T) {
	hc := HealthCheck{
		Probes: []Probe{
			{Name: "postgres", Check: func(ctx context.Context) error { return nil }},
			{Name: "redis", Check: func(ctx context.Context) error { return errors.New("connection refused") }},
		},
	}
	handler := hc.Handler(http.NotFoundHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"ok"`)
	assert.Contains(t, rec.Body.String(), `"redis":"connection refused"`)
}
