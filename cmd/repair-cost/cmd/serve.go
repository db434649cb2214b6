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

	"github.com/donaldgifford/repair-cost/api/openapi"
	"github.com/donaldgifford/repair-cost/internal/api/handlers"
	mw "github.com/donaldgifford/repair-cost/internal/api/middleware"
	"github.com/donaldgifford/repair-cost/internal/engine"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and recost scheduler",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer a.close()

	e := newServer(a)

	var sched *engine.Scheduler
	if a.cfg.Recost.Enabled {
		sched, err = engine.NewScheduler(a.engine, a.cfg.Recost.Interval, a.log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	a.log.Info("starting server", "addr", addr, "database", a.store != nil)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-ctx.Done():
			a.log.Warn("scheduled recost still running at shutdown")
		}
	}

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	a.log.Info("server stopped")
	return nil
}

// newServer builds the Echo server with operational endpoints and the
// huma-described API. Inspection and recost routes need a store.
func newServer(a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	e.Use(mw.Recovery(a.log))
	e.Use(mw.RequestLog(a.log))
	e.Use(mw.Metrics())

	var pinger handlers.Pinger
	if a.store != nil {
		pinger = a.store
	}
	handlers.RegisterHealthRoutes(e, handlers.NewHealthHandler(pinger))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("repair-cost API", Version)
	api := humaecho.New(e, humaCfg)
	openapi.RegisterRoutes(e, humaCfg.OpenAPIPath+".json")

	handlers.RegisterEstimateRoutes(api, handlers.NewEstimateHandler(a.engine))
	handlers.RegisterFamilyRoutes(api, handlers.NewFamiliesHandler(a.engine.Estimator().Catalog()))
	handlers.RegisterPriceRoutes(api, handlers.NewPricesHandler(a.engine, a.engine, a.source))

	if a.store != nil {
		handlers.RegisterInspectionRoutes(api, handlers.NewInspectionsHandler(a.store, a.engine))
		handlers.RegisterRecostRoutes(api, handlers.NewRecostHandler(a.engine))
	}

	return e
}
