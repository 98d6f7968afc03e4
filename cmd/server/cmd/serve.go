package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/placementiq/placement-api/internal/api"
	"github.com/placementiq/placement-api/pkg/logger"
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the PlacementIQ HTTP server.

The server will:
- Connect to MongoDB and create the collection indexes
- Connect to Redis when REDIS_ADDR is set
- Seed sample data into an empty database when AUTO_SEED is true
- Handle graceful shutdown on SIGINT/SIGTERM

Examples:
  # Start with configuration from the environment
  server serve

  # Start on another port with debug logging
  server serve --port 9090 --log-level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 8000)")
}

func runServer() error {
	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	a, err := newApp(startCtx)
	cancel()
	if err != nil {
		return err
	}
	cfg, log := a.cfg, logger.Get()
	if serverPort != "" {
		cfg.Port = serverPort
	}

	if cfg.AutoSeed {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
		res, err := a.seed.Seed(seedCtx)
		seedCancel()
		switch {
		case err != nil:
			log.Error().Err(err).Msg("startup seed failed")
		case res.AlreadySeeded:
			log.Info().Msg(res.Message)
		default:
			log.Info().
				Int("students", res.Students).
				Int("companies", res.Companies).
				Int("drives", res.Drives).
				Int("offers", res.Offers).
				Msg(res.Message)
		}
	}

	router := api.NewRouter(api.Options{
		APIPrefix:     cfg.APIPrefix,
		CORSOrigins:   cfg.CORS.Origins,
		AuthRateLimit: cfg.Auth.RateLimit,
		Logger:        log,
	}, api.Services{
		Auth:      a.auth,
		Students:  a.students,
		Companies: a.companies,
		Drives:    a.drives,
		Offers:    a.offers,
		Analytics: a.analytics,
		Seed:      a.seed,
		Readiness: a.readiness,
	})

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			_ = a.close(context.Background())
			return fmt.Errorf("http server error: %w", err)
		}
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if err := a.close(ctx); err != nil {
		log.Error().Err(err).Msg("closing connections")
	}
	return nil
}
