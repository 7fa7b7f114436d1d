// Package service hosts the optional HTTP side-servers of a suitekit run:
// a healthz endpoint and a prometheus metrics endpoint.
package service

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/suitekit/suitekit/metrics"
)

const (
	HealthzHost = "0.0.0.0"
	HealthzPort = "8080"

	MetricsHost = "0.0.0.0"
	MetricsPort = "7300"
)

type Service struct {
	Healthz *HealthzServer
	Metrics *MetricsServer
}

func New() *Service {
	s := &Service{
		Healthz: &HealthzServer{},
		Metrics: &MetricsServer{},
	}
	return s
}

func (s *Service) Start(ctx context.Context) {
	log.Info().Msg("service starting")

	go func() {
		addr := net.JoinHostPort(HealthzHost, HealthzPort)
		log.Info().Str("addr", addr).Msg("starting healthz server")
		if err := s.Healthz.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("error starting healthz server")
			metrics.RecordErrorDetails("error starting healthz server", err)
		}
	}()

	go func() {
		addr := net.JoinHostPort(MetricsHost, MetricsPort)
		log.Info().Str("addr", addr).Msg("starting metrics server")
		if err := s.Metrics.Start(ctx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("error starting metrics server")
			metrics.RecordErrorDetails("error starting metrics server", err)
		}
	}()

	log.Info().Msg("service started")
}

func (s *Service) Shutdown() {
	log.Info().Msg("service shutting down")
	if err := s.Healthz.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error shutting down healthz server")
	}
	if err := s.Metrics.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error shutting down metrics server")
	}
	log.Info().Msg("service stopped")
}
