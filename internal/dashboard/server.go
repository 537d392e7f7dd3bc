// Copyright 2026 The Surveydash Authors
// SPDX-License-Identifier: MIT

// Package dashboard serves the survey dashboard as HTML pages, JSON
// resources and SVG charts.
package dashboard

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/davetashner/surveydash/internal/chart"
	"github.com/davetashner/surveydash/internal/fetcher"
	"github.com/davetashner/surveydash/internal/report"
	"github.com/davetashner/surveydash/internal/survey"
)

//go:embed templates/*.html static/*
var embeddedFiles embed.FS

// Config holds dashboard settings.
type Config struct {
	// APIURL is shown in the page footer.
	APIURL  string
	Options report.Options
}

// Server is the dashboard HTTP handler.
type Server struct {
	router    *chi.Mux
	fetcher   *fetcher.Fetcher
	templates *template.Template
	opts      report.Options
	apiURL    string
}

// New parses the embedded templates and sets up routes.
func New(f *fetcher.Fetcher, cfg Config) (*Server, error) {
	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		router:    chi.NewRouter(),
		fetcher:   f,
		templates: templates,
		opts:      cfg.Options.WithDefaults(),
		apiURL:    cfg.APIURL,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	static, _ := fs.Sub(embeddedFiles, "static")
	s.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	s.router.Get("/", s.handleIndex)
	s.router.Get("/pages/{section}", s.handlePage)
	s.router.Get("/api/{resource}", s.handleResource)
	s.router.Get("/charts/{chart}.svg", s.handleChart)
	s.router.Get("/healthz", s.handleHealth)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down dashboard: %w", err)
		}
		return nil
	}
}

// navItem is one entry of the page navigation.
type navItem struct {
	Name   string
	Title  string
	Active bool
}

// pageChart is a chart drawn from the states already loaded for the page.
type pageChart struct {
	Name  string
	Title string
	SVG   template.HTML
}

type pageData struct {
	Title    string
	Nav      []navItem
	Fallback bool
	Notices  []string
	Skipped  string
	Content  string
	Charts   []pageChart
	APIURL   string
	Mode     fetcher.Mode
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderSection(w, r, "overview")
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.renderSection(w, r, chi.URLParam(r, "section"))
}

func (s *Server) renderSection(w http.ResponseWriter, r *http.Request, name string) {
	sec := report.Get(name)
	if sec == nil {
		http.NotFound(w, r)
		return
	}

	rec := &fetcher.Recorder{}
	states := fetcher.LoadAll(r.Context(), s.fetcher.Observe(rec), sec.Resources())
	in := report.NewInput(states, s.opts)

	data := pageData{
		Title:    sec.Description(),
		Nav:      s.nav(name),
		Fallback: in.UsedFallback(sec.Resources()...),
		Notices:  noticeLines(rec.Notices()),
		APIURL:   s.apiURL,
		Mode:     s.fetcher.Mode(),
	}

	if err := sec.Analyze(in); err != nil {
		if !errors.Is(err, report.ErrDataNotAvailable) {
			slog.Error("dashboard: analyze failed", "section", name, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.Skipped = err.Error()
	} else {
		var buf bytes.Buffer
		if err := sec.Render(&buf); err != nil {
			slog.Error("dashboard: render failed", "section", name, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.Content = stripANSI(buf.String())
		data.Charts = s.drawCharts(name, states)
	}

	s.renderTemplate(w, "page.html", data)
}

// noticeLines renders notices in resource order; LoadAll delivers them in
// completion order.
func noticeLines(notices []fetcher.Notice) []string {
	sort.Slice(notices, func(i, j int) bool { return notices[i].Resource < notices[j].Resource })
	out := make([]string, 0, len(notices))
	for _, n := range notices {
		out = append(out, n.Text())
	}
	return out
}

// drawCharts renders the section's charts inline from states, so a page
// view issues one GET per resource.
func (s *Server) drawCharts(section string, states map[survey.Resource]fetcher.State[json.RawMessage]) []pageChart {
	var out []pageChart
	for _, c := range chartsFor(section) {
		var buf bytes.Buffer
		if err := c.Draw(&buf, states[c.Resource], s.opts); err != nil {
			if !errors.Is(err, chart.ErrNoData) {
				slog.Error("dashboard: chart failed", "chart", c.Name, "error", err)
			}
			continue
		}
		out = append(out, pageChart{Name: c.Name, Title: c.Title, SVG: template.HTML(buf.String())}) //nolint:gosec // SVG produced by go-chart
	}
	return out
}

func (s *Server) nav(active string) []navItem {
	names := report.List()
	out := make([]navItem, 0, len(names))
	for _, n := range names {
		sec := report.Get(n)
		out = append(out, navItem{Name: n, Title: sec.Description(), Active: n == active})
	}
	return out
}

func (s *Server) handleResource(w http.ResponseWriter, r *http.Request) {
	res, err := survey.Parse(chi.URLParam(r, "resource"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	st := fetcher.Fetch[json.RawMessage](r.Context(), s.fetcher, res)
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	spec, ok := lookupChart(chi.URLParam(r, "chart"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	st := fetcher.Fetch[json.RawMessage](r.Context(), s.fetcher, spec.Resource)
	var buf bytes.Buffer
	if err := spec.Draw(&buf, st, s.opts); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			http.Error(w, "no chart data", http.StatusNotFound)
			return
		}
		slog.Error("dashboard: chart failed", "chart", spec.Name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if st.UsedFallback {
		w.Header().Set("X-Demo-Data", "true")
	}
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("dashboard: template failed", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		slog.Debug("dashboard: writing response", "error", err)
	}
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

// stripANSI removes terminal color sequences from section output.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// requestLogger logs each request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Debug("dashboard: request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
