package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog/log"

	"github.com/reservon/booking-bot/internal/config"
	"github.com/reservon/booking-bot/internal/handler/health"
	"github.com/reservon/booking-bot/internal/handler/telegram"
	"github.com/reservon/booking-bot/internal/reservon"
	"github.com/reservon/booking-bot/internal/router"
	adminService "github.com/reservon/booking-bot/internal/service/admin"
	flowService "github.com/reservon/booking-bot/internal/service/flow"
	"github.com/reservon/booking-bot/internal/session"
	"github.com/reservon/booking-bot/pkg/logger"
	"github.com/reservon/booking-bot/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLog := logger.NewLogger(nil)
	m := metrics.NewMetrics("booking_bot")

	// Initialize session store and remote API client
	sessions := session.NewStore(cfg.Session, cfg.Booking.DefaultLanguage, m)
	api := reservon.NewClient(cfg.API, m, appLog)

	// Initialize dialogue services
	flowSvc := flowService.NewService(sessions, api, cfg.Booking, appLog, m)
	adminSvc := adminService.NewService(sessions, api, cfg.Booking, appLog, m)

	// Initialize Telegram transport
	tgHandler := telegram.NewHandler(flowSvc, adminSvc, appLog)
	b, err := bot.New(cfg.Telegram.Token, tgHandler.Options()...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Telegram bot")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tgHandler.Register(ctx, b)

	// Setup ops router
	healthHandler := health.NewHandler(api)
	r := router.NewRouter(healthHandler, "booking_bot_ops")
	r.Setup()

	srv := &http.Server{
		Addr:    cfg.Ops.Addr,
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start ops server")
		}
	}()

	// Start long polling
	go func() {
		log.Info().Msg("bot started")
		b.Start(ctx)
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("ops server forced to shutdown")
	}

	log.Info().Msg("bot exited properly")
}
