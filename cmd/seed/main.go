// Command seed inserts the default survey templates directly into MongoDB.
// It mirrors POST /api/init-templates for bootstrapping environments where
// the HTTP service is not up yet, and is just as idempotent.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveyhub/internal/config"
	"surveyhub/internal/repository"
	"surveyhub/internal/service"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	surveyRepo := repository.NewSurveyRepo(client.Database(cfg.DBName))
	surveySvc := service.NewSurveyService(surveyRepo, nil)

	created, err := surveySvc.EnsureSeedTemplates(ctx)
	if err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	if created {
		fmt.Println("Seeded default survey templates")
	} else {
		fmt.Println("Templates already present, nothing to do")
	}
}
