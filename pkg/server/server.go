// Package server exposes the analysis pipeline over an HTTP API.
//
// The server is bound to one dataset pair at startup and serves summary
// statistics, centrality leaderboards, and rendered artifacts for it. All
// heavy computation goes through the shared pipeline Runner, so repeated
// requests hit the load memo and the result cache instead of recomputing.
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matchnet/matchnet/pkg/centrality"
	"github.com/matchnet/matchnet/pkg/config"
	"github.com/matchnet/matchnet/pkg/errors"
	"github.com/matchnet/matchnet/pkg/metrics"
	"github.com/matchnet/matchnet/pkg/pipeline"
	"github.com/matchnet/matchnet/pkg/rank"
)

// Server serves analysis results for one dataset pair.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	cfg    config.Config
	logger *log.Logger
}

// New creates a server for the dataset configured in opts.
func New(runner *pipeline.Runner, opts pipeline.Options, cfg config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, opts: opts, cfg: cfg, logger: logger}
}

// Handler builds the HTTP route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(Logger(s.logger))

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/rankings/{metric}", s.handleRankings)
		r.Get("/render", s.handleRender)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// summaryResponse is the JSON shape of the structural summary. Undefined
// statistics (diameter of a disconnected graph, assortativity of a uniform
// one) serialize as null with the reason alongside.
type summaryResponse struct {
	NodeCount        int      `json:"node_count"`
	EdgeCount        int      `json:"edge_count"`
	Density          float64  `json:"density"`
	Clustering       float64  `json:"clustering"`
	Assortativity    *float64 `json:"assortativity"`
	AssortativityErr string   `json:"assortativity_error,omitempty"`
	Diameter         *float64 `json:"diameter"`
	DiameterErr      string   `json:"diameter_error,omitempty"`
	WeakComponents   int      `json:"weak_components"`
	StrongComponents int      `json:"strong_components"`
}

func toSummaryResponse(s metrics.Summary) summaryResponse {
	resp := summaryResponse{
		NodeCount:        s.NodeCount,
		EdgeCount:        s.EdgeCount,
		Density:          s.Density,
		Clustering:       s.Clustering,
		WeakComponents:   s.WeakComponents,
		StrongComponents: s.StrongComponents,
	}
	if s.Assortativity.Defined() {
		v := s.Assortativity.Value
		resp.Assortativity = &v
	} else {
		resp.AssortativityErr = s.Assortativity.Err.Error()
	}
	if s.Diameter.Defined() {
		v := s.Diameter.Value
		resp.Diameter = &v
	} else {
		resp.DiameterErr = s.Diameter.Err.Error()
	}
	return resp
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	full, _, _, _, err := s.runner.Load(r.Context(), s.opts.FullPath, s.opts.ViewPath)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	summary := s.runner.Metrics(r.Context(), full)
	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// rankingsResponse is the JSON shape of a leaderboard.
type rankingsResponse struct {
	Metric   centrality.Metric `json:"metric"`
	K        int               `json:"k"`
	Degraded bool              `json:"degraded,omitempty"`
	Entries  []rank.Entry      `json:"entries"`
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	metric, err := centrality.ParseMetric(chi.URLParam(r, "metric"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	k := s.cfg.Rank.TopK
	if raw := r.URL.Query().Get("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidArgument, "k must be an integer, got %q", raw))
			return
		}
		if k < config.MinTopK || k > config.MaxTopK {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidArgument,
				"k must be between %d and %d, got %d", config.MinTopK, config.MaxTopK, k))
			return
		}
	}

	full, _, hash, _, err := s.runner.Load(r.Context(), s.opts.FullPath, s.opts.ViewPath)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	table, err := s.runner.Centrality(r.Context(), full, hash, s.opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entries, err := rank.TopK(table, metric, k)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rankingsResponse{
		Metric:   metric,
		K:        k,
		Degraded: table.Degraded(),
		Entries:  entries,
	})
}

var contentTypes = map[string]string{
	pipeline.FormatHTML: "text/html; charset=utf-8",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatJSON
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts := s.opts
	opts.Formats = []string{format}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// handleIndex serves the interactive HTML viewer.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts := s.opts
	opts.Formats = []string{pipeline.FormatHTML}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[pipeline.FormatHTML])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatHTML])
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error     string      `json:"error"`
	Code      errors.Code `json:"code,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// statusFor maps structured error codes to HTTP statuses.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidMetric,
		errors.ErrCodeInvalidFormat, errors.ErrCodeEmptyView:
		return http.StatusBadRequest
	case errors.ErrCodeMalformedGraph:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      errors.GetCode(err),
		RequestID: GetRequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
