// Package server streams sorting traces over HTTP as newline-delimited JSON.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/trace"
)

const maxValues = 1000

// StepMessage is one trace step on the wire.
type StepMessage struct {
	Index       int      `json:"index"`
	Array       []int    `json:"array"`
	Highlighted []int    `json:"highlighted"`
	Log         []string `json:"log"`
}

type errorMessage struct {
	Error string `json:"error"`
}

type Server struct {
	registry *driver.Registry
	logger   *log.Logger
	router   chi.Router
}

func New(registry *driver.Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{registry: registry, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/algorithms", s.listAlgorithms)
	r.Get("/api/trace/{algorithm}", s.streamTrace)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) listAlgorithms(w http.ResponseWriter, r *http.Request) {
	type entry struct {
		Name        trace.Algorithm `json:"name"`
		Description string          `json:"description"`
	}
	algs := s.registry.List()
	out := make([]entry, len(algs))
	for i, a := range algs {
		out[i] = entry{Name: a, Description: a.Description()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) streamTrace(w http.ResponseWriter, r *http.Request) {
	values, err := inputFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorMessage{err.Error()})
		return
	}
	delay, err := delayFromQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorMessage{err.Error()})
		return
	}

	run, err := s.registry.Start(chi.URLParam(r, "algorithm"), values)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, trace.ErrUnknownAlgorithm) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorMessage{err.Error()})
		return
	}
	defer run.Stop()

	logger := s.logger.With("run", run.ID, "algorithm", run.Algorithm)
	logger.Debug("trace started", "size", len(values))

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("X-Run-ID", run.ID.String())
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	var writeErr error

	err = run.Walk(r.Context(), func(i int, step trace.Step) bool {
		if i > 0 && delay > 0 {
			select {
			case <-r.Context().Done():
				return false
			case <-time.After(delay):
			}
		}
		writeErr = enc.Encode(StepMessage{
			Index:       i,
			Array:       step.Array,
			Highlighted: step.Highlighted,
			Log:         step.Log,
		})
		if writeErr != nil {
			return false
		}
		if flusher != nil {
			flusher.Flush()
		}
		return true
	})

	switch {
	case err != nil:
		// headers are gone; the error line ends the stream
		_ = enc.Encode(errorMessage{err.Error()})
		logger.Error("trace aborted", "steps", run.Steps(), "err", err)
	case writeErr != nil:
		logger.Warn("client went away", "steps", run.Steps(), "err", writeErr)
	default:
		logger.Info("trace finished", "steps", run.Steps(), "done", run.Done())
	}
}

// inputFromQuery reads values=5,3,8,1 or generates an array from
// size/min/max/seed/shape.
func inputFromQuery(r *http.Request) ([]int, error) {
	q := r.URL.Query()
	if raw := q.Get("values"); raw != "" {
		parts := strings.Split(raw, ",")
		if len(parts) > maxValues {
			return nil, fmt.Errorf("at most %d values allowed", maxValues)
		}
		values := make([]int, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid value %q", p)
			}
			values = append(values, v)
		}
		return values, nil
	}

	cfg := config.DefaultConfig()
	ints := map[string]*int{"size": &cfg.Size, "min": &cfg.Min, "max": &cfg.Max}
	for name, dst := range ints {
		if raw := q.Get(name); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s %q", name, raw)
			}
			*dst = v
		}
	}
	if raw := q.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q", raw)
		}
		cfg.Seed = seed
	}
	if shape := q.Get("shape"); shape != "" {
		cfg.Shape = shape
	}
	if cfg.Size > maxValues {
		return nil, fmt.Errorf("size must be at most %d", maxValues)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Input(), nil
}

func delayFromQuery(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get("delay")
	if raw == "" {
		return 0, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("invalid delay %q", raw)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
