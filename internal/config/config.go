package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration values.
type Config struct {
	Port  string
	Debug bool

	Gemini GeminiConfig
	Vertex VertexConfig
}

// GeminiConfig describes credentials and models for the Gemini services.
type GeminiConfig struct {
	// APIKey authorizes the text/vision model (scene analysis, staging
	// descriptions).
	APIKey string
	// ImageAPIKey authorizes the image-generation model. Falls back to
	// APIKey when unset.
	ImageAPIKey string

	VisionModel string
	ImageModel  string

	// ServiceAccountJSON optionally carries service-account credentials
	// used instead of the API key for the REST client.
	ServiceAccountJSON string

	AnalysisTimeout time.Duration
	RenderTimeout   time.Duration
}

// VertexConfig selects the Vertex AI Imagen backend when populated.
type VertexConfig struct {
	ProjectID string
	Location  string
	Model     string
}

// FromEnv loads configuration from environment variables and applies defaults.
func FromEnv() Config {
	cfg := Config{
		Port:  getenv("APP_PORT", "8080"),
		Debug: getenvBool("DEBUG", false),
		Gemini: GeminiConfig{
			APIKey:             os.Getenv("GEMINI_API_KEY"),
			ImageAPIKey:        os.Getenv("IMAGE_API_KEY"),
			VisionModel:        getenv("VISION_MODEL", "gemini-2.0-flash"),
			ImageModel:         getenv("IMAGE_MODEL", "gemini-2.5-flash-image"),
			ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
			AnalysisTimeout:    getenvDuration("ANALYSIS_TIMEOUT", 45*time.Second),
			RenderTimeout:      getenvDuration("RENDER_TIMEOUT", 2*time.Minute),
		},
		Vertex: VertexConfig{
			ProjectID: os.Getenv("VERTEX_PROJECT"),
			Location:  os.Getenv("VERTEX_LOCATION"),
			Model:     getenv("VERTEX_IMAGE_MODEL", "imagegeneration@006"),
		},
	}

	if cfg.Gemini.ImageAPIKey == "" {
		cfg.Gemini.ImageAPIKey = cfg.Gemini.APIKey
	}

	return cfg
}

// UseVertex reports whether the Imagen backend should replace the Gemini
// image model.
func (c Config) UseVertex() bool {
	return strings.TrimSpace(c.Vertex.ProjectID) != "" && strings.TrimSpace(c.Vertex.Location) != ""
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getenvBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}

	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil || parsed <= 0 {
		return fallback
	}

	return parsed
}
