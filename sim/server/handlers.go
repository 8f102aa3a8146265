package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
	"github.com/cpusched/schedsim/sim/workload"
)

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

type schedulersResponse struct {
	Schedulers []string `json:"schedulers"`
}

type simulateResponse struct {
	RunID     string                 `json:"run_id"`
	RequestID string                 `json:"request_id"`
	Scheduler string                 `json:"scheduler"`
	Lines     []string               `json:"lines"`
	Events    []sim.Event            `json:"events"`
	Metrics   *sim.Metrics           `json:"metrics"`
	Trace     *trace.SimulationTrace `json:"trace,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client went away
}

func respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	respondJSON(w, status, errorResponse{RequestID: RequestIDFromContext(r.Context()), Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleListSchedulers(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, schedulersResponse{Schedulers: sim.ValidSchedulerNames()})
}

// handleSimulate runs the workload in the request body. The body is the text format
// unless Content-Type names YAML. ?trace=decisions|ticks attaches the decision trace.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("trace")
	if !trace.IsValidTraceLevel(level) {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("unknown trace level %q; valid: none, decisions, ticks", level))
		return
	}

	body := http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	wl, err := workload.Decode(body, formatFromContentType(r.Header.Get("Content-Type")))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, r, http.StatusRequestEntityTooLarge, err)
			return
		}
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	if wl.RunFor > s.maxRunFor {
		respondError(w, r, http.StatusBadRequest, fmt.Errorf("runfor %d exceeds the server limit of %d ticks", wl.RunFor, s.maxRunFor))
		return
	}

	res, err := sim.Simulate(wl, sim.WithTrace(trace.TraceConfig{Level: trace.TraceLevel(level)}))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err)
		return
	}

	runID := "run_" + uuid.New().String()[:8]
	s.logger.WithField("run_id", runID).Infof("simulated %d processes with %s for %d ticks",
		len(res.Processes), res.SchedulerName, res.RunFor)

	respondJSON(w, http.StatusOK, simulateResponse{
		RunID:     runID,
		RequestID: RequestIDFromContext(r.Context()),
		Scheduler: res.SchedulerName,
		Lines:     res.Lines(),
		Events:    res.Events,
		Metrics:   res.Metrics,
		Trace:     res.Trace,
	})
}

func formatFromContentType(contentType string) workload.Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return workload.FormatText
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return workload.FormatYAML
	default:
		return workload.FormatText
	}
}
