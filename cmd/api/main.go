package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"agilefinance/internal/dbsql"
	"agilefinance/internal/server"
	"agilefinance/internal/systemconfig"
	"agilefinance/internal/wire"

	"go.uber.org/zap"
)

const (
	shutdownTimeout     = 10 * time.Second
	healthRefreshPeriod = 15 * time.Second
)

func main() {
	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	logger := app.Logger
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := dbsql.AutoMigrate(app.DB); err != nil {
		logger.Warn("auto migration failed, continuing with the current schema", zap.Error(err))
	}
	app.SystemConfig.RegisterDefaults(ctx, systemconfig.Defaults)

	if app.Relay != nil {
		go func() {
			if err := app.Relay.Run(ctx); err != nil {
				logger.Error("realtime relay stopped", zap.Error(err))
			}
		}()
	}
	app.Workers.Start()

	lis, err := net.Listen("tcp", ":"+app.Config.Server.GRPCHealthPort)
	if err != nil {
		logger.Fatal("failed to listen for grpc health", zap.String("port", app.Config.Server.GRPCHealthPort), zap.Error(err))
	}
	go func() {
		if err := app.Health.Server.Serve(lis); err != nil {
			logger.Error("grpc health server stopped", zap.Error(err))
		}
	}()
	go app.Health.Watch(ctx, healthRefreshPeriod)

	srv := server.NewHTTPServer(app.Config, app.Router)
	go func() {
		logger.Info("api listening",
			zap.String("addr", srv.Addr),
			zap.String("grpc_health_port", app.Config.Server.GRPCHealthPort),
			zap.String("env", app.Config.Server.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown incomplete", zap.Error(err))
	}
	app.Workers.Shutdown()
	app.Health.Stop()

	logger.Info("api stopped")
}
