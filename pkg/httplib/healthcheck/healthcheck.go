package healthcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Probe checks a single dependency. Name identifies it in the
// readiness payload.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthCheck is the health check handler. With no probes it answers
// liveness only; probes make GET /ready report dependency status.
type HealthCheck struct {
	Probes  []Probe
	Timeout time.Duration
}

// Handler is used to control the flow of GET /health and GET /ready endpoints
func (hc HealthCheck) Handler(h http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if IsHealthCheckRequest(r) {
			hc.ServeHTTP(w, r)

			return
		}

		if IsReadinessRequest(r) {
			hc.serveReadiness(w, r)

			return
		}

		h.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// ServeHTTP serve http request for health check
func (hc HealthCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (hc HealthCheck) serveReadiness(w http.ResponseWriter, r *http.Request) {
	timeout := hc.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(hc.Probes))
	for _, probe := range hc.Probes {
		if err := probe.Check(ctx); err != nil {
			results[probe.Name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[probe.Name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(results)
}

// IsHealthCheckRequest is used to check if the request is a health check request
func IsHealthCheckRequest(r *http.Request) bool {
	return r.Method == "GET" && r.URL.Path == "/health"
}

// IsReadinessRequest reports whether the request targets the readiness endpoint
func IsReadinessRequest(r *http.Request) bool {
	return r.Method == "GET" && r.URL.Path == "/ready"
}
