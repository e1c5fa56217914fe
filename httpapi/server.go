// seehuhn.de/go/areachart - layered area charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package httpapi serves chart rendering over HTTP.
//
// Endpoints:
//
//	POST /render?format=png|pdf|json&width=W&height=H  render a chart document
//	POST /validate?width=W&height=H                    check a document without drawing
//	GET  /healthz                                      liveness probe
//	GET  /metrics                                      Prometheus metrics
//
// Request bodies are chart documents in YAML or JSON form.
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seehuhn.de/go/areachart"
	"seehuhn.de/go/areachart/internal/output"
	"seehuhn.de/go/areachart/metrics"
	"seehuhn.de/go/areachart/palette"
)

// Default surface size, used when the request does not specify one.
const (
	DefaultWidth  = 640
	DefaultHeight = 360

	maxSize     = 8192
	maxBodySize = 8 << 20
)

// Server renders charts for HTTP clients. All requests share one palette,
// so that a label keeps its colour across requests.
type Server struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	palette  *palette.Palette
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry registers the chart metrics with reg and serves them on
// /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metrics = metrics.New(reg)
		s.gatherer = reg
	}
}

// NewHandler creates the HTTP handler.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger:  slog.Default(),
		palette: &palette.Palette{},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok\n"))
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	r.Post("/render", s.Render)
	r.Post("/validate", s.Validate)
	return r
}

// Render handles the POST /render request.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	format, err := output.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	doc, width, height, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	// Render into a buffer first, so that errors can still change the
	// status code.
	buf := &bytes.Buffer{}
	err = output.Render(buf, s.chart(), doc, format, width, height)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("Render: response write failed", "error", err)
	}
}

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	doc, width, height, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	if err := doc.Check(float64(width), float64(height)); err != nil {
		s.renderError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "series": len(doc.Series)})
}

func (s *Server) chart() *areachart.Chart {
	return areachart.New(
		areachart.WithLogger(s.logger),
		areachart.WithMetrics(s.metrics),
		areachart.WithPalette(s.palette),
	)
}

// readRequest decodes the document and the surface size. If something is
// wrong, the error response is written and ok is false.
func (s *Server) readRequest(w http.ResponseWriter, r *http.Request) (doc *areachart.Document, width, height int, ok bool) {
	q := r.URL.Query()
	width, err := sizeParam(q.Get("width"), DefaultWidth)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return nil, 0, 0, false
	}
	height, err = sizeParam(q.Get("height"), DefaultHeight)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return nil, 0, 0, false
	}

	doc, err = areachart.LoadDocument(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return nil, 0, 0, false
	}
	return doc, width, height, true
}

var errBadSize = errors.New("size must be an integer between 1 and 8192")

func sizeParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > maxSize {
		return 0, errBadSize
	}
	return n, nil
}

// renderError maps chart errors to 422, bad documents to 400 and
// everything else to 500.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var ce *areachart.ChartError
	switch {
	case errors.As(err, &ce):
		s.logger.Info("chart rejected", "path", r.URL.Path, "kind", ce.Kind.String())
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: ce.Message,
			Kind:  ce.Kind.String(),
		})
	case errors.Is(err, areachart.ErrBadDocument):
		s.fail(w, r, http.StatusBadRequest, err)
	default:
		s.fail(w, r, http.StatusInternalServerError, err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status >= 500 {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Warn("bad request", "path", r.URL.Path, "error", err)
	}
	kind := "bad_request"
	if status >= 500 {
		kind = "internal"
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
