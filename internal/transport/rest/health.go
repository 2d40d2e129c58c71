package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is a backing service checked by the readiness and health
// probes. A failing optional dependency degrades /health but keeps /ready up.
type Dependency struct {
	Name     string
	Check    pinger
	Optional bool
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	deps    []Dependency
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler over deps.
func NewHealthHandler(version string, deps ...Dependency) *HealthHandler {
	return &HealthHandler{deps: deps, version: version, started: time.Now()}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always answers 200 while the process runs.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when any required dependency is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	for _, d := range h.deps {
		if d.Optional {
			continue
		}
		if err := d.Check.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
			return
		}
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every dependency with its latency. Overall status is
// "down" when a required dependency fails and "degraded" when only optional
// ones do.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	// Probes run concurrently; each reports into its own slot.
	results := make([]CompStatus, len(h.deps))
	var g errgroup.Group
	for i, d := range h.deps {
		g.Go(func() error {
			start := time.Now()
			if err := d.Check.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return nil
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
			return nil
		})
	}
	_ = g.Wait()

	overall := "ok"
	components := make(map[string]CompStatus, len(h.deps))
	for i, d := range h.deps {
		components[d.Name] = results[i]
		if results[i].Status == "ok" {
			continue
		}
		switch {
		case !d.Optional:
			overall = "down"
		case overall == "ok":
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Uptime:     time.Since(h.started).Round(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}
