package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/jhartmann/carwatch/internal/api/handlers"
	mw "github.com/jhartmann/carwatch/internal/api/middleware"
	"github.com/jhartmann/carwatch/internal/config"
	"github.com/jhartmann/carwatch/internal/engine"
	"github.com/jhartmann/carwatch/internal/store"
	"github.com/jhartmann/carwatch/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	eng := engine.NewEngine(st,
		engine.WithLogger(log),
		engine.WithParams(cfg.Scoring.Params()),
		engine.WithOverlays(cfg.Scoring.OverlayTable()),
		engine.WithTiers(cfg.Scoring.TierList()),
	)

	sched, err := engine.NewScheduler(eng, st,
		cfg.Schedule.ScoringInterval,
		cfg.Schedule.DeactivateInterval,
		cfg.Schedule.DeactivateAfter,
		log,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(mw.RequestLog(log))
	e.Use(mw.Recovery(log))
	e.Use(mw.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("carwatch API", Version))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(st))
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler(eng))
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))

	recoverCtx, recoverCancel := context.WithTimeout(context.Background(), 30*time.Second)
	sched.RecoverStaleJobRuns(recoverCtx)
	recoverCancel()
	sched.Start()

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	stopCtx := sched.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(30 * time.Second):
		log.Warn("scheduler jobs still running at shutdown deadline")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
