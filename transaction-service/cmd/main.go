package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaglebank/transactions/shared/events"
	"github.com/eaglebank/transactions/shared/logger"
	"github.com/eaglebank/transactions/shared/middleware"
	redisClient "github.com/eaglebank/transactions/shared/redis"
	txcmd "github.com/eaglebank/transactions/transaction-service/internal/command"
	"github.com/eaglebank/transactions/transaction-service/internal/config"
	"github.com/eaglebank/transactions/transaction-service/internal/handler"
	txqry "github.com/eaglebank/transactions/transaction-service/internal/query"
	"github.com/eaglebank/transactions/transaction-service/internal/store"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		l := logger.New("info", false)
		l.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event publishing is optional; without Redis the service still serves requests.
	var publisher txcmd.EventPublisher = events.Discard{}
	if cfg.EventsEnabled() {
		redis, err := redisClient.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client)
		log.Info().Str("addr", cfg.RedisAddr).Str("stream", events.TransactionEventsStream).Msg("Publishing transaction events")
	}

	transactions := store.New()

	commandSvc := txcmd.NewTransactionCommandService(transactions, publisher, log.With().Str("component", "command").Logger())
	querySvc := txqry.NewTransactionQueryService(transactions)

	transactionHandler := handler.NewTransactionHandler(commandSvc, querySvc)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware(log))

	router.GET("/health", handler.HealthCheck(transactions))

	transactionHandler.Register(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Transaction service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Transaction service shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
