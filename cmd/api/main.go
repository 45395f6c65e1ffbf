package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mrewrin/LeadTransfer/internal/infrastructure/di"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/worker"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/router"
	"github.com/mrewrin/LeadTransfer/internal/interface/server"
	"github.com/mrewrin/LeadTransfer/internal/interface/validator"
	"github.com/mrewrin/LeadTransfer/pkg/config"
	"github.com/mrewrin/LeadTransfer/pkg/logger"
)

// @title LeadTransfer API
// @version 1.0
// @description 不動産物件とカタログを管理する LeadTransfer の REST API
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := logger.Setup(logger.DefaultConfig()); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 設定値でロガーを再構成
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	if err := logger.Setup(logCfg); err != nil {
		slog.Error("failed to setup logger", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	container.InitUseCases()
	handlers := di.NewHandlers(container)
	middlewares := di.NewMiddlewares(container)

	serverConfig := server.DefaultConfig()
	serverConfig.Port = cfg.Server.Port
	serverConfig.Debug = cfg.Server.Debug
	if cfg.Server.ShutdownTimeout > 0 {
		serverConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	}
	srv := server.NewServer(serverConfig)
	e := srv.Echo()

	e.Validator = validator.NewCustomValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	// Global middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityHeadersConfig{
		EnableHSTS:    cfg.Security.EnableHSTS,
		CSPDirectives: middleware.DefaultSecurityHeadersConfig().CSPDirectives,
	}))
	e.Use(middleware.CORSWithOrigins(cfg.Security.CORSOrigins))

	registry := container.Metrics.Registry()
	if !cfg.Metrics.Enabled {
		registry = nil
	}
	router.NewRouter(e, handlers, middlewares, registry).Setup()

	workerMgr := worker.NewManager()
	if cfg.Worker.Enabled {
		if err := registerJobs(workerMgr, container, cfg); err != nil {
			return err
		}
		workerMgr.Start()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting server", "address", srv.Address())
		return srv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server...")

		workerMgr.Shutdown(10 * time.Second)
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
			return err
		}
		return nil
	})

	return g.Wait()
}

// registerJobs は定期実行ジョブを登録します
func registerJobs(m *worker.Manager, c *di.Container, cfg *config.Config) error {
	retention := worker.NewAuditRetentionJob(c.AuditLogRepo.DeleteOlderThan, worker.AuditRetentionJobConfig{
		RetentionDays: cfg.Audit.RetentionDays,
		Spec:          cfg.Worker.AuditRetentionSpec,
	})
	if err := m.Register(retention); err != nil {
		return err
	}

	if c.PgClient != nil {
		if err := m.Register(worker.NewDatabaseHealthJob(c.PgClient.Health, cfg.Worker.DatabaseHealthSpec)); err != nil {
			return err
		}
	}
	return nil
}
