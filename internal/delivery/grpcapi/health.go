package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is reported by the health service next to the overall ("")
// status.
const ServiceName = "shvark.gig.v1.GigService"

type HealthHandler struct {
	hs    *health.Server
	ready func(ctx context.Context) error
}

func NewHealthHandler(ready func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{hs: health.NewServer(), ready: ready}
}

// NewServer builds the gRPC server with the health service registered.
func NewServer(h *HealthHandler, opts ...grpc.ServerOption) *grpc.Server {
	srv := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(srv, h.hs)
	reflection.Register(srv)
	return srv
}

func (h *HealthHandler) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.hs.SetServingStatus("", status)
	h.hs.SetServingStatus(ServiceName, status)
}

// Check runs the readiness check once and publishes the result.
func (h *HealthHandler) Check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if h.ready != nil {
		checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := h.ready(checkCtx); err != nil {
			slog.Warn("readiness check failed", "error", err)
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.set(status)
}

// Watch checks every interval until ctx is done, then reports NOT_SERVING.
func (h *HealthHandler) Watch(ctx context.Context, interval time.Duration) {
	h.Check(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			h.hs.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
