package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "healthchat/internal/adapter/http"
	"healthchat/internal/adapter/memory"
	"healthchat/internal/adapter/postgres"
	"healthchat/internal/app"
	"healthchat/internal/domain"
)

func main() {
	addr := env("ADDR", ":8080")
	webDir := env("WEB_DIR", "web")

	var (
		measurementRepo  domain.MeasurementRepository
		conversationRepo domain.ConversationRepository
	)
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		db, err := postgres.Open(connStr)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		measurementRepo, conversationRepo = db, db
	} else {
		log.Print("DATABASE_URL not set, using in-memory store")
		db := memory.New()
		measurementRepo, conversationRepo = db, db
	}

	measurementSvc := app.NewMeasurementService(measurementRepo)
	chatSvc := app.NewChatService(measurementRepo, conversationRepo, app.NewComposer())
	insightsSvc := app.NewInsightsService(measurementRepo)

	h := adapthttp.New(measurementSvc, chatSvc, insightsSvc, webDir).Handler()
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
