package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakePinger struct {
	fail  atomic.Bool
	calls atomic.Int32
}

func (p *fakePinger) Ping(context.Context) error {
	p.calls.Add(1)
	if p.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func healthz(t *testing.T, s *Service) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	s.Register(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	return rr
}

func grpcStatus(t *testing.T, s *Service) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := s.grpcHealth.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestService_Check(t *testing.T) {
	p := &fakePinger{}
	s, err := New(NewOptions(p))
	require.NoError(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, healthz(t, s).Code)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, grpcStatus(t, s))

	require.True(t, s.Check(context.Background()))
	rr := healthz(t, s)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, grpcStatus(t, s))

	p.fail.Store(true)
	require.False(t, s.Check(context.Background()))
	assert.Equal(t, http.StatusServiceUnavailable, healthz(t, s).Code)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, grpcStatus(t, s))
}

func TestService_Run(t *testing.T) {
	p := &fakePinger{}
	s, err := New(NewOptions(p, WithInterval(10*time.Millisecond)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	assert.True(t, s.Healthy())

	cancel()
	require.NoError(t, <-done)
}

func TestNew_RequiresPinger(t *testing.T) {
	_, err := New(NewOptions(nil))
	require.Error(t, err)
}
