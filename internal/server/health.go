package server

import (
	"context"
	"net/http"
	"sort"
	"time"

	"agilefinance/internal/common"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Check reports whether one backing service answers.
type Check func(ctx context.Context) error

// Checks maps a dependency name (database, mongo, redis) to its probe.
type Checks map[string]Check

const checkTimeout = 2 * time.Second

type healthReport struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// Run probes every dependency and reports whether all of them are up.
func (c Checks) Run(ctx context.Context) (map[string]string, bool) {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]string, len(c))
	healthy := true
	for _, name := range names {
		ctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := c[name](ctx)
		cancel()
		if err != nil {
			out[name] = "down"
			healthy = false
			continue
		}
		out[name] = "up"
	}
	return out, healthy
}

func NewHealthHandler(checks Checks, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps, healthy := checks.Run(r.Context())
		if !healthy {
			log.Warn("health check degraded", zap.Any("dependencies", deps))
			common.WriteJSON(w, http.StatusServiceUnavailable, healthReport{Status: "degraded", Dependencies: deps})
			return
		}
		common.WriteJSON(w, http.StatusOK, healthReport{Status: "ok", Dependencies: deps})
	}
}

// HealthServer exposes grpc.health.v1 beside the REST API so orchestrators
// can probe the process without a token.
type HealthServer struct {
	Server *grpc.Server
	health *health.Server
	checks Checks
	log    *zap.Logger
}

func NewHealthServer(checks Checks, log *zap.Logger) *HealthServer {
	hs := health.NewServer()
	srv := grpc.NewServer(grpc.UnaryInterceptor(loggingUnaryInterceptor(log)))
	healthpb.RegisterHealthServer(srv, hs)
	return &HealthServer{Server: srv, health: hs, checks: checks, log: log}
}

// Refresh sets the overall serving status from the dependency probes.
func (h *HealthServer) Refresh(ctx context.Context) {
	_, healthy := h.checks.Run(ctx)
	status := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.health.SetServingStatus("", status)
}

// Watch refreshes the status every interval until ctx is done.
func (h *HealthServer) Watch(ctx context.Context, interval time.Duration) {
	h.Refresh(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Refresh(ctx)
		}
	}
}

func (h *HealthServer) Stop() {
	h.health.Shutdown()
	h.Server.GracefulStop()
}

func loggingUnaryInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			log.Warn("grpc call failed", zap.String("method", info.FullMethod), zap.Duration("duration", time.Since(start)), zap.Error(err))
			return resp, err
		}
		log.Debug("grpc call", zap.String("method", info.FullMethod), zap.Duration("duration", time.Since(start)))
		return resp, err
	}
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 15 * time.Second
	}
	return time.Duration(n) * time.Second
}
