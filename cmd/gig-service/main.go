package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/app/background"
	"github.com/LavaJover/shvark-gig-service/internal/app/setup"
	"github.com/LavaJover/shvark-gig-service/internal/config"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-gig-service/internal/infrastructure/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.MustLoad()

	logg, closer, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer closer.Close()
	slog.SetDefault(logg)

	deps, err := setup.InitializeDependencies(cfg, logg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Close()

	ucs, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}
	httpDeps := setup.InitializeHTTP(deps, ucs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	background.NewBackgroundTasks(
		ucs.Tasks,
		ucs.Quota,
		logg,
		cfg.Scheduler.SweepInterval,
		cfg.Scheduler.GrantExpiryInterval,
	).StartAll(ctx)
	go httpDeps.Limiter.RunCleanup(ctx, time.Minute)

	// gRPC health
	health := grpcapi.NewHealthHandler(deps.Ready)
	grpcServer := grpcapi.NewServer(health)
	go health.Watch(ctx, 10*time.Second)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	go func() {
		slog.Info("grpc server started", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("grpc server stopped", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:      httpDeps.Engine,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}
	go func() {
		slog.Info("http server started", "addr", httpServer.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown", "error", err)
	}
	grpcServer.GracefulStop()
}
