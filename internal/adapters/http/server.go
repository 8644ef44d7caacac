// Package http exposes the engine over a small JSON API: one-shot
// simulations plus health and metrics endpoints.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nbertram/kauffman"
	"github.com/nbertram/kauffman/internal/config"
	"github.com/nbertram/kauffman/pkg/adapters/memory"
	"github.com/nbertram/kauffman/pkg/domain"
	"github.com/nbertram/kauffman/pkg/observability"
)

// maxResponseCells bounds steps*nodes for a single simulate call, since
// the whole run is returned in one JSON body.
const maxResponseCells = 1 << 22

// Server runs stateless simulations on request.
type Server struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// SimulateResponse is the JSON reply to POST /simulate.
type SimulateResponse struct {
	Seed   int64        `json:"seed"`
	Stats  domain.Stats `json:"stats"`
	Frames [][]int      `json:"frames"`
}

// NewHandler creates the HTTP handler. Metrics are registered on a private
// registry exposed at /metrics, so multiple handlers can coexist in tests.
func NewHandler(logger *slog.Logger) http.Handler {
	reg := prometheus.NewRegistry()
	s := &Server{
		logger:  logger,
		metrics: observability.NewMetrics(reg),
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/simulate", s.Simulate)
	return r
}

// Simulate handles POST /simulate: an experiment definition in, the full
// run out.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		s.logger.Warn("simulate: invalid request body", "error", err)
		return
	}

	exp, err := config.FromMap(fields)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		s.logger.Warn("simulate: bad experiment", "error", err)
		return
	}
	if exp.Nodes*(exp.Steps+1) > maxResponseCells {
		http.Error(w, fmt.Sprintf("run too large: nodes*(steps+1) must not exceed %d", maxResponseCells), http.StatusBadRequest)
		return
	}

	seed := exp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen, err := exp.Generator()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	net, err := kauffman.New(exp.Nodes, exp.Edges,
		kauffman.WithSeed(seed),
		kauffman.WithGenerator(gen),
		kauffman.WithActivationProbability(exp.ActivationProbability),
		kauffman.WithInitialStateProbability(exp.InitialStateProbability),
		kauffman.WithLifecycleHooks(s.metrics.Hooks()),
	)
	if err != nil {
		s.fail(w, err)
		return
	}

	rec := memory.NewRecorder()
	runner := &kauffman.Runner{
		Steps:                  exp.Steps,
		Disturbances:           exp.Disturbances,
		DisturbanceProbability: exp.DisturbanceProbability,
		Sink:                   rec,
	}
	if err := runner.Run(net); err != nil {
		s.fail(w, err)
		return
	}

	resp := SimulateResponse{
		Seed:   seed,
		Stats:  net.Stats(),
		Frames: make([][]int, rec.Len()),
	}
	for i := range resp.Frames {
		frame := rec.Frame(i)
		row := make([]int, len(frame))
		for j, b := range frame {
			row[j] = int(b)
		}
		resp.Frames[i] = row
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("simulate: encode response", "error", err)
	}
	s.logger.Info("simulation served",
		"nodes", exp.Nodes,
		"edges", exp.Edges,
		"steps", exp.Steps,
		"seed", seed,
	)
}

// fail maps engine errors to status codes: caller mistakes are 400,
// anything else is 500.
func (s *Server) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidParameter) || errors.Is(err, domain.ErrEdgeBudgetExceeded) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
	s.logger.Error("simulation failed", "error", err)
}
