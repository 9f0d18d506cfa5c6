package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	app "github.com/ticketera/backend/internal/application/ticket"
	"github.com/ticketera/backend/internal/infrastructure/config"
	"github.com/ticketera/backend/internal/infrastructure/logger"
	"github.com/ticketera/backend/internal/infrastructure/persistence"
	"github.com/ticketera/backend/internal/interfaces/http/handler"
	"github.com/ticketera/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	log.Info("Starting ticket backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	ticketRepo := persistence.NewGormTicketRepository(db.DB)
	printerRepo := persistence.NewGormPrinterRepository(db.DB)

	fctx := app.DefaultContext()
	if cfg.Tickets.DateLayout != "" {
		fctx.DateLayout = cfg.Tickets.DateLayout
	}
	if cfg.Tickets.TimeLayout != "" {
		fctx.TimeLayout = cfg.Tickets.TimeLayout
	}

	ticketService := app.NewTicketService(ticketRepo, printerRepo, fctx, cfg.Tickets.ServiceFooterText, log)
	ticketHandler := handler.NewTicketHandler(ticketService)

	engine := router.New(cfg, log, ticketHandler)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
