// Package api configures the HTTP server: the operator API under /v1, the
// inbound provider webhook receiver, metrics, docs and profiling.
package api

import (
	"atsconnect/internal/api/handler/v1handler"
	"atsconnect/internal/config"
	"atsconnect/internal/receiver"
	"atsconnect/pkg/controller"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options configures the HTTP server.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds a single request, zero disables it.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath serves prometheus metrics and is left out of access logs.
	MetricsPath string
}

// NewOptions maps the HTTP settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the services behind the routes.
type Deps struct {
	v1handler.Deps

	Receiver *receiver.Receiver
}

// NewServer wires up and returns a configured *http.Server. Only /v1 requires
// a bearer token, providers authenticate to the receiver with signatures.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	router := chi.NewRouter()

	// prometheus metrics, otel instruments export through the default registry
	router.Handle(opts.MetricsPath, promhttp.Handler())

	router.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	router.Handle("/v1/docs/*", v5emb.New(
		"ATS Connect",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	router.Route("/v1", func(r chi.Router) {
		r.Use(secHandler.Middleware)
		v1handler.New(deps.Deps).Routes(r)
	})

	// provider webhooks
	deps.Receiver.Routes(router)

	router.Handle(controller.PprofPrefix+"*", controller.PprofMux())

	handler := controller.WithLogger(controller.WithCORS(router), opts.MetricsPath)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
