package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "annotation-registry.com/annotation-registry/internal/configs"
	httpapi "annotation-registry.com/annotation-registry/internal/http"
	"annotation-registry.com/annotation-registry/internal/queue"
	repository "annotation-registry.com/annotation-registry/internal/repositories"
	"annotation-registry.com/annotation-registry/internal/services"
	"annotation-registry.com/annotation-registry/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the annotation task HTTP API and the pending task dispatcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.OTelEnabled {
			shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
				ServiceName:  cfg.ServiceName,
				OTLPEndpoint: cfg.OTelEndpoint,
			})
			if err != nil {
				return err
			}
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
				defer cancel()
				_ = shutdownTracing(sctx)
			}()
		}

		database, err := config.NewDatabaseClient(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = config.CloseDatabase(database) }()

		taskRepo := repository.NewTaskRepository(database)
		if err := taskRepo.Migrate(ctx); err != nil {
			return err
		}

		var taskQueue queue.TaskQueue = queue.NoopTaskQueue{}
		if cfg.RedisAddr != "" {
			redisClient, err := config.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisClient.Close()

			taskQueue = queue.NewRedisTaskQueue(redisClient, cfg.RedisQueueKey)
			log.Info().Str("addr", cfg.RedisAddr).Str("key", cfg.RedisQueueKey).Msg("announcing pending tasks to redis")
		}

		dispatch := services.NewDispatchService(taskRepo, taskQueue, cfg.DispatchInterval(), cfg.DispatchBatchSize)
		dispatch.Start(ctx)

		allocator := services.NewIDAllocator(taskRepo, cfg.IDMaxAttempts)
		taskService := services.NewTaskService(taskRepo, allocator, dispatch)

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, httpapi.NewHandler(taskService), cfg.APIPrefix, cfg.RateLimit)

		log.Info().Msgf("HTTP server listening on %s", cfg.AppURL())
		startErr := runHTTPServer(ctx, e, cfg.AppURL())
		if startErr != nil {
			log.Error().Err(startErr).Msg("HTTP server stopped")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		dispatch.Shutdown(shutdownCtx)

		if startErr != nil {
			return startErr
		}
		log.Info().Msg("HTTP server and dispatcher shut down gracefully")
		return nil
	},
}

// runHTTPServer serves on addr until ctx is done. It returns the error that
// stopped the listener early, or nil once ctx is done.
func runHTTPServer(ctx context.Context, e *echo.Echo, addr string) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-serverErr:
		return err
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
