package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	handler "github.com/validately/api/internal/adapters/handler/http"
	"github.com/validately/api/internal/adapters/repository/memory"
	"github.com/validately/api/internal/adapters/repository/postgres"
	"github.com/validately/api/internal/adapters/session"
	"github.com/validately/api/internal/config"
	"github.com/validately/api/internal/core/ports"
	"github.com/validately/api/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var cardRepo ports.CardRepository
	var feedbackRepo ports.FeedbackRepository
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		cardRepo = postgres.NewCardRepository(db)
		feedbackRepo = postgres.NewFeedbackRepository(db)
	} else {
		log.Println("No DATABASE_URL set, using in-memory store")
		cardRepo = memory.NewCardRepository()
		feedbackRepo = memory.NewFeedbackRepository()
	}

	var decidedStore ports.DecidedSetStore
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		defer redisStore.Close()
		decidedStore = redisStore
	} else {
		log.Println("No REDIS_URL set, using in-memory sessions")
		decidedStore = session.NewMemoryStore()
	}

	cardSvc := services.NewCardService(cardRepo)
	feedbackSvc := services.NewFeedbackService(cardRepo, feedbackRepo)
	metricsSvc := services.NewMetricsService(feedbackRepo)
	visibilitySvc := services.NewVisibilityService(cardRepo)
	reviewSvc := services.NewReviewService(visibilitySvc, feedbackSvc, decidedStore)

	cardHandler := handler.NewCardHandler(cardSvc, visibilitySvc)
	feedbackHandler := handler.NewFeedbackHandler(feedbackSvc, metricsSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	router := handler.NewHandler(cardHandler, feedbackHandler, reviewHandler, []byte(cfg.JWTSecret))

	server := &stdhttp.Server{Addr: cfg.ListenAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
