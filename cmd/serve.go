package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmehdipour/notify-gateway/internal/db"
	"github.com/jmehdipour/notify-gateway/internal/dispatcher"
	httpSrv "github.com/jmehdipour/notify-gateway/internal/http"
	"github.com/jmehdipour/notify-gateway/internal/logger"
	"github.com/jmehdipour/notify-gateway/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		metrics.MustRegister(prometheus.DefaultRegisterer)

		// connected lazily on first use (/readyz or a caller)
		mongo := db.NewMongo(mongoOpts(cfg))

		var redisClient *redis.Client
		if cfg.Redis.Addr != "" {
			redisClient, err = db.NewRedisClient(db.RedisOpts{
				Addr:        cfg.Redis.Addr,
				Password:    cfg.Redis.Password,
				DB:          cfg.Redis.DB,
				DialTimeout: cfg.Redis.DialTimeout,
			})
			if err != nil {
				return fmt.Errorf("redis connect: %w", err)
			}
			defer func() { _ = redisClient.Close() }()
		} else {
			logger.Log.Warn("redis not configured, rate limiting disabled")
		}

		senders, err := dispatcher.New(cmd.Context(), dispatcherOpts(cfg))
		if err != nil {
			return fmt.Errorf("aws config: %w", err)
		}
		if cfg.Development() {
			logger.Log.Info("development mode: email and SMS are logged, not sent")
		}

		server := httpSrv.NewServer(cfg, httpSrv.Deps{
			Mongo: mongo,
			Redis: redisClient,
			Email: senders.Email,
			SMS:   senders.SMS,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return runServer(ctx, cfg.HTTP.Addr, server, mongo)
	},
}

type httpServer interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

type closer interface {
	Close(ctx context.Context) error
}

// runServer serves until ctx is done (SIGINT/SIGTERM in serve) or the listener
// fails, then shuts HTTP down and closes Mongo, in that order.
// A listener failure other than ErrServerClosed is returned.
func runServer(ctx context.Context, addr string, server httpServer, mongo closer) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(addr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Log.Info("signal received, shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("http server exited", zap.Error(err))
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Warn("http shutdown", zap.Error(err))
	}
	if err := mongo.Close(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("mongo close: %w", err)
	}

	return runErr
}
