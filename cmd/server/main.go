package main // Entry point package

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/config"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/database"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/handler"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/logging"
	appmw "github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/middleware"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/queue"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/repository"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/router"
	"github.com/mdtanbirhosen/Modern-Hotel-Booking-Server/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly

	cfg := config.Load()
	log := logging.New(cfg.Env)

	// A store connection failure at startup is fatal; serving
	// requests against a dead connection helps nobody.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := database.Open(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	db := client.Database(cfg.DBName)
	roomRepo := repository.NewRoomRepo(db.Collection(database.RoomsCollection))
	bookingRepo := repository.NewBookingRepo(db.Collection(database.BookingsCollection))
	reviewRepo := repository.NewReviewRepo(db.Collection(database.ReviewsCollection))

	events := service.NewPublisher(cfg.QueueURL, log)
	if cfg.ConsumerOn && cfg.QueueURL != "" {
		go queue.StartBookingConsumer(cfg.QueueURL, log)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
		}))
	}
	e.Use(appmw.RateLimit(config.LoadRateLimitConfig(), config.NewRedisClient(), log))

	router.RegisterRoutes(e, cfg,
		handler.NewSessionHandler(cfg, log),
		handler.NewRoomHandler(roomRepo, log),
		handler.NewBookingHandler(bookingRepo, events, log),
		handler.NewReviewHandler(reviewRepo, log),
	)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Block until interrupted, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
