package service

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// HealthzServer answers liveness probes. It reports healthy whenever the
// process is up; run outcomes are exposed through metrics, not health.
type HealthzServer struct {
	ctx    context.Context
	server *http.Server
}

func (h *HealthzServer) Start(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Handle)
	h.server = &http.Server{
		Addr:    addr,
		Handler: cors.AllowAll().Handler(mux),
	}
	h.ctx = ctx
	return h.server.ListenAndServe()
}

func (h *HealthzServer) Shutdown() error {
	if h.server == nil {
		return nil
	}
	return h.server.Shutdown(h.ctx)
}

func (h *HealthzServer) Handle(w http.ResponseWriter, r *http.Request) {
	log.Debug().Str("remote", r.RemoteAddr).Msg("healthz probe")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK")) //nolint:errcheck
}
