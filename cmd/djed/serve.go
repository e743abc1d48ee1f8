package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/djed/internal/config"
	"github.com/vango-dev/djed/internal/errors"
	"github.com/vango-dev/djed/pkg/middleware"
	"github.com/vango-dev/djed/pkg/render"
)

func serveCmd(load func() (*config.Config, error)) *cobra.Command {
	var (
		addr string
		demo string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live demo over HTTP",
		Long: `Mount a demo and serve it over HTTP.

Routes:
  GET  /         current markup
  POST /tick     send one tick and report the mutations it caused
  GET  /metrics  Prometheus metrics
  GET  /healthz  liveness probe

Examples:
  djed serve
  djed serve --addr :8080 --demo todo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Metrics.Addr = addr
			}
			if cmd.Flags().Changed("demo") {
				cfg.Demo.Name = demo
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd.ErrOrStderr(), newStack(cfg, os.Stderr))
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from config)")
	cmd.Flags().StringVarP(&demo, "demo", "d", config.DefaultDemo, "Demo to mount (counter, todo)")

	return cmd
}

func runServe(ctx context.Context, out io.Writer, st *stack) error {
	preview, err := newPreview(st)
	if err != nil {
		return err
	}
	defer preview.close()

	srv := &http.Server{
		Addr:              st.cfg.Metrics.Addr,
		Handler:           preview.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	success(out, "Serving %s on http://%s", preview.session.name, srv.Addr)
	st.logger.Info("preview server started", "addr", srv.Addr, "demo", preview.session.name)

	select {
	case err := <-errCh:
		return errors.New("E141").Wrap(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("E141").Wrap(err)
	}
	st.logger.Info("preview server stopped")
	return nil
}

// preview serves one mounted demo session. The component runtime is single
// threaded, so every request touching the session holds mu.
type preview struct {
	st *stack

	mu      sync.Mutex
	session *session
	ticks   int
}

func newPreview(st *stack) (*preview, error) {
	s, err := newSession(st.cfg.Demo.Name, st.sched)
	if err != nil {
		return nil, err
	}
	return &preview{st: st, session: s}, nil
}

func (p *preview) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session.destroy()
}

// locked runs fn while holding mu. The lock is released even if fn panics.
func (p *preview) locked(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}

// Router returns the preview's HTTP routes. It registers the request
// metrics, so call it once per preview.
func (p *preview) Router() http.Handler {
	cfg := p.st.cfg
	r := chi.NewRouter()
	r.Use(
		chimw.Recoverer,
		middleware.Prometheus(
			middleware.WithNamespace(cfg.Metrics.Namespace),
			middleware.WithRegistry(p.st.registry),
		),
		middleware.OpenTelemetry(
			middleware.WithTracerName(cfg.Tracing.TracerName),
			middleware.WithFilter(func(r *http.Request) bool {
				return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
			}),
		),
	)

	r.Get("/", p.handleIndex)
	r.Post("/tick", p.handleTick)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "ok\n")
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.st.registry, promhttp.HandlerOpts{}))

	return r
}

func (p *preview) handleIndex(w http.ResponseWriter, r *http.Request) {
	var body, name string
	p.locked(func() {
		body = p.session.HTML()
		name = p.session.name
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html><head><title>djed: %s</title></head><body>%s</body></html>\n",
		render.EscapeText(name), body)
}

type tickResponse struct {
	Tick      int    `json:"tick"`
	Mutations int    `json:"mutations"`
	Summary   string `json:"summary"`
	HTML      string `json:"html"`
}

func (p *preview) handleTick(w http.ResponseWriter, r *http.Request) {
	var resp tickResponse
	p.locked(func() {
		journal := p.session.Tick()
		p.ticks++
		resp = tickResponse{
			Tick:      p.ticks,
			Mutations: len(journal),
			Summary:   summarize(journal),
			HTML:      p.session.HTML(),
		}
	})

	p.st.logger.Debug("tick", "demo", p.session.name, "tick", resp.Tick, "mutations", resp.Mutations)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		p.st.logger.Warn("tick response failed", "error", err)
	}
}
