package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/evgeniy-krivenko/notes-api/pkg/grpcx"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

var _ grpcx.Service = (*Service)(nil)

type pinger interface {
	Ping(ctx context.Context) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	pinger   pinger        `option:"mandatory" validate:"required"`
	interval time.Duration `default:"10s" validate:"required"`
	timeout  time.Duration `default:"2s" validate:"required"`
}

// Service probes the database and publishes the result over gRPC health and GET /healthz.
type Service struct {
	Options
	grpcHealth *health.Server
	healthy    atomic.Bool
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate health service options: %v", err)
	}

	s := &Service{Options: opts, grpcHealth: health.NewServer()}
	s.grpcHealth.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	return s, nil
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(r, s.grpcHealth)
}

func (s *Service) Register(r chi.Router) {
	r.Get("/healthz", s.healthz)
}

// Run probes immediately and then every interval until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.Check(ctx)

		select {
		case <-ctx.Done():
			s.grpcHealth.Shutdown()
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Service) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.pinger.Ping(ctx)
	healthy := err == nil

	if prev := s.healthy.Swap(healthy); prev != healthy || !healthy {
		if healthy {
			slogx.Info(ctx, "database is reachable")
		} else {
			slogx.Warn(ctx, "database is unreachable", slogx.Err(err))
		}
	}

	st := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	s.grpcHealth.SetServingStatus("", st)

	return healthy
}

func (s *Service) Healthy() bool {
	return s.healthy.Load()
}

func (s *Service) healthz(w http.ResponseWriter, _ *http.Request) {
	code, st := http.StatusOK, "ok"
	if !s.Healthy() {
		code, st = http.StatusServiceUnavailable, "unavailable"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": st})
}
