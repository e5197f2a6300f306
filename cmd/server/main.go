package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "sionlog-blog-service/internal/cache/redis"
	"sionlog-blog-service/internal/config"
	delivery_http "sionlog-blog-service/internal/delivery/http"
	"sionlog-blog-service/internal/delivery/http/middleware"
	post_http "sionlog-blog-service/internal/delivery/http/post"
	profile_http "sionlog-blog-service/internal/delivery/http/profile"
	metrics_server "sionlog-blog-service/internal/delivery/metrics"
	"sionlog-blog-service/internal/logger"
	prometheus_metrics "sionlog-blog-service/internal/metrics/prometheus"
	post_repository "sionlog-blog-service/internal/repository/post"
	post_postgres "sionlog-blog-service/internal/repository/post/postgres"
	profile_postgres "sionlog-blog-service/internal/repository/profile/postgres"
	post_service "sionlog-blog-service/internal/service/post"
	profile_service "sionlog-blog-service/internal/service/profile"
	s3_storage "sionlog-blog-service/internal/storage/s3"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(cfg.Database.MigrationsPath, dsn); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewMetricsProvider()
	metrics.SetServiceHealth(true)

	imageStore := s3_storage.New(s3_storage.Config{
		Endpoint:        cfg.S3.Endpoint,
		Region:          cfg.S3.Region,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Bucket:          cfg.S3.Bucket,
		PublicBaseURL:   cfg.S3.PublicBaseURL,
	}, log)

	postRepo := post_repository.NewImageCleanupRepository(
		post_postgres.NewPostRepository(pool, log),
		imageStore,
		log,
	)
	profileRepo := profile_postgres.NewProfileRepository(pool, log)

	postCache := redis_cache.NewPostCache(redisClient, log)

	postSvc := post_service.NewPostServiceCacheDecorator(
		post_service.NewPostService(postRepo, profileRepo, imageStore, log, metrics),
		postCache,
		log,
		metrics,
	)
	profileSvc := profile_service.NewProfileService(profileRepo, log, metrics)

	postAPI := post_http.NewPostHTTPApi(postSvc, log)
	profileAPI := profile_http.NewProfileHTTPApi(profileSvc, log)
	authMw := middleware.NewAuth(cfg.Auth.JWTSecret)

	router := delivery_http.NewRouter(postAPI, profileAPI, authMw, cfg.HTTPServer.AllowedOrigins, log, metrics)
	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)

	metricsServer := metrics_server.NewServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(migrationsPath, dsn string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
