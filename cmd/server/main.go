package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sleepsound/storefront/internal/config"
	"github.com/sleepsound/storefront/internal/events"
	"github.com/sleepsound/storefront/internal/hash"
	"github.com/sleepsound/storefront/internal/httpserver"
	"github.com/sleepsound/storefront/internal/logging"
	"github.com/sleepsound/storefront/internal/service"
	"github.com/sleepsound/storefront/internal/store"
	"github.com/sleepsound/storefront/internal/store/gormstore"
	"github.com/sleepsound/storefront/internal/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	var st store.Store
	switch cfg.StoreDriver {
	case config.DriverMemory:
		st = memory.New()
	case config.DriverSQLite, config.DriverPostgres:
		gs, err := gormstore.Open(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			logger.Error("open store", "driver", cfg.StoreDriver, "error", err)
			os.Exit(1)
		}
		st = gs
	default:
		logger.Error("unknown store driver", "driver", cfg.StoreDriver)
		os.Exit(1)
	}

	ctx := context.Background()
	pwHash, err := hash.HashPassword(cfg.MainAdminPassword)
	if err != nil {
		logger.Error("hash main admin password", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureMainAdmin(ctx, st, cfg.MainAdminUsername, pwHash); err != nil {
		logger.Error("seed main admin", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureCatalog(ctx, st); err != nil {
		logger.Error("seed catalog", "error", err)
		os.Exit(1)
	}

	var publisher events.Publisher = events.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	}

	admins := service.NewAdminService(st, publisher)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	// the storefront is served from arbitrary origins
	e.Use(middleware.CORS())
	e.Use(httpserver.RequestLogger(logger))

	deps := httpserver.Deps{
		UserHandler:    &httpserver.UserHTTP{Svc: service.NewUserService(st, publisher)},
		AdminHandler:   &httpserver.AdminHTTP{Svc: admins},
		OrderHandler:   &httpserver.OrderHTTP{Svc: service.NewOrderService(st, publisher)},
		ProductHandler: &httpserver.ProductHTTP{Svc: service.NewProductService(st)},
		Admins:         admins,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("listening", "addr", cfg.Addr(), "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("event publisher close error", "error", err)
	}

	logger.Info("shutdown complete")
}
