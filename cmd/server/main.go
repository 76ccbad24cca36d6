package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveyhub/internal/cache"
	"surveyhub/internal/config"
	"surveyhub/internal/repository"
	"surveyhub/internal/service"
	"surveyhub/internal/transport/rest"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.DBName)

	// Redis connection (optional survey cache)
	var surveyCache cache.SurveyCache
	if cfg.RedisURI != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: strings.TrimPrefix(cfg.RedisURI, "redis://"),
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		surveyCache = cache.NewSurveyCache(rdb)
	} else {
		log.Println("Warning: REDIS_URI not set, running without survey cache")
	}

	// Initialize repositories
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	// Initialize services
	surveySvc := service.NewSurveyService(surveyRepo, surveyCache)
	responseSvc := service.NewResponseService(responseRepo, surveyRepo)
	statsSvc := service.NewStatsService(surveyRepo, responseRepo)

	router := rest.NewRouter(&rest.Container{
		SurveyService:   surveySvc,
		ResponseService: responseSvc,
		StatsService:    statsSvc,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
