package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"stagecraftAi/internal/config"
	"stagecraftAi/internal/events"
	"stagecraftAi/internal/render"
	"stagecraftAi/internal/server"
	"stagecraftAi/internal/staging"
	"stagecraftAi/internal/vision"
)

const generativeLanguageScope = "https://www.googleapis.com/auth/generative-language"

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx := context.Background()

	var tokenSource oauth2.TokenSource
	if cfg.Gemini.ServiceAccountJSON != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(cfg.Gemini.ServiceAccountJSON), generativeLanguageScope)
		if err != nil {
			log.Fatalf("failed to load service account credentials: %v", err)
		}
		tokenSource = creds.TokenSource
	}

	visionClient := vision.NewClient(cfg.Gemini.APIKey, cfg.Gemini.VisionModel, cfg.Gemini.AnalysisTimeout, tokenSource)
	analyzer := vision.NewAnalyzer(visionClient)

	var renderer render.Renderer
	switch {
	case cfg.UseVertex():
		renderer = render.NewVertexRenderer(render.VertexConfig{
			ProjectID: cfg.Vertex.ProjectID,
			Location:  cfg.Vertex.Location,
			Model:     cfg.Vertex.Model,
			APIKey:    cfg.Gemini.ImageAPIKey,
			Timeout:   cfg.Gemini.RenderTimeout,
		})
		log.Println("renderer ready: Vertex AI Imagen")
	case cfg.Gemini.ImageAPIKey != "":
		renderer = render.NewGeminiRenderer(cfg.Gemini.ImageAPIKey, cfg.Gemini.ImageModel, cfg.Gemini.RenderTimeout)
		log.Println("renderer ready: Gemini image model")
	default:
		log.Println("renderer disabled: no image credential configured")
	}

	broker := events.NewBroker()
	service := &staging.Service{
		Analyzer: analyzer,
		Text:     visionClient,
		Renderer: renderer,
		Events:   broker,
	}

	if cfg.Debug {
		log.Printf("debug: vision configured=%t, renderer configured=%t", visionClient.Configured(), renderer != nil)
	}

	srv := server.New(cfg.Port, staging.Handler{
		Service: service,
		Events:  broker,
	})

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("shutting down server...")
		if err := srv.Close(); err != nil {
			log.Printf("server close error: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server failed: %v", err)
	}
}
