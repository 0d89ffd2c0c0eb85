package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/evgeniy-krivenko/notes-api/internal/api/health"
	"github.com/evgeniy-krivenko/notes-api/internal/api/notes"
	"github.com/evgeniy-krivenko/notes-api/internal/config"
	"github.com/evgeniy-krivenko/notes-api/internal/ctxtr"
	"github.com/evgeniy-krivenko/notes-api/internal/migrations"
	"github.com/evgeniy-krivenko/notes-api/internal/repository"
	notesuc "github.com/evgeniy-krivenko/notes-api/internal/usecase/notes"
	"github.com/evgeniy-krivenko/notes-api/pkg/database"
	"github.com/evgeniy-krivenko/notes-api/pkg/grpcx"
	"github.com/evgeniy-krivenko/notes-api/pkg/httpx"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	logOut, closeLog := logWriter(cfg.App)
	defer closeLog()

	if err := slogx.InitGlobal(logOut, cfg.App.LogLevel, cfg.App.Pretty, slogx.NewContextHandler); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}
	logger := slogx.Default()

	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Database.Addr(),
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		database.WithRetryAttempts(cfg.Database.RetryAttempts),
		database.WithMaxConns(cfg.Database.MaxConns),
		database.WithLogger(logger),
	))
	if err != nil {
		return fmt.Errorf("init database: %v", err)
	}
	db := database.NewDatabase(pool)
	defer db.Close()

	if cfg.Database.Migrate {
		if err := migrations.Up(ctx, pool); err != nil {
			return fmt.Errorf("migrate database: %v", err)
		}
	}

	notesUsecase, err := notesuc.New(notesuc.NewOptions(repository.New(db)))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	notesSvc, err := notes.New(notes.NewOptions(notesUsecase, ctxtr.MockUser(cfg.Auth.MockUserID)))
	if err != nil {
		return fmt.Errorf("init notes service: %v", err)
	}

	healthSvc, err := health.New(health.NewOptions(db, health.WithInterval(cfg.Health.Interval)))
	if err != nil {
		return fmt.Errorf("init health service: %v", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP, middleware.Recoverer)
	notesSvc.Register(router)
	healthSvc.Register(router)

	httpSrv, err := httpx.New(httpx.NewOptions(
		cfg.HTTP.Addr,
		router,
		httpx.WithMiddlewares(slogx.HTTPMiddleware),
		httpx.WithLogger(logger),
		httpx.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	grpcSrv, err := grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(healthSvc),
		grpcx.WithLogger(logger),
		grpcx.WithUnaryInterceptors(slogx.LoggingInterceptor),
		grpcx.WithTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithTimeout(cfg.GRPC.KeepaliveTimeout),
	))
	if err != nil {
		return fmt.Errorf("init grpc server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return healthSvc.Run(ctx) })
	eg.Go(func() error { return httpSrv.Run(ctx) })
	eg.Go(func() error { return grpcSrv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	logger.Info(ctx, "app stopped")
	return nil
}

func logWriter(cfg config.AppConfig) (io.Writer, func()) {
	if cfg.LogFile == "" {
		return os.Stdout, func() {}
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogFileMaxSizeMB,
		MaxBackups: cfg.LogFileMaxBackups,
	}

	return io.MultiWriter(os.Stdout, rotating), func() { _ = rotating.Close() }
}
