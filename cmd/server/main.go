package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"moajim/internal/app/di"
	"moajim/internal/app/router"
	regionsadapters "moajim/internal/feature/regions/adapters"
	"moajim/internal/platform/db"
	infrahttp "moajim/internal/platform/http"
	"moajim/internal/platform/logger"
	platformredis "moajim/internal/platform/redis"
	"moajim/internal/platform/scheduler"
)

func main() {
	_ = godotenv.Load()
	logger.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.OpenDB(db.LoadConfigFromEnv(), regionsadapters.Models()...)
	if err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(platformredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Caching trades in memory.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	app, err := di.NewApp(ctx, gdb, rdb)
	if err != nil {
		slog.Error("failed to wire application", "error", err)
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(ctx, app.Regions, scheduler.LoadConfig())
	if err := sched.Register(); err != nil {
		slog.Error("failed to register scheduler", "error", err)
		os.Exit(1)
	}
	sched.Start()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router.NewRouter(app.Handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		slog.Error("failed to listen", "addr", srv.Addr, "error", err)
		os.Exit(1)
	}

	slog.Info("starting moajim server", "port", port)
	if err := infrahttp.Serve(ctx, srv, ln, 30*time.Second); err != nil {
		slog.Error("server error", "error", err)
	}

	// drain background work before the stores close
	app.Search.Wait()
	sched.Stop()
	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}
	slog.Info("server stopped gracefully")
}
