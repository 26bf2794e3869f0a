package staging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"stagecraftAi/internal/catalog"
	"stagecraftAi/internal/events"
	"stagecraftAi/internal/media"
	"stagecraftAi/internal/prompts"
	"stagecraftAi/internal/render"
	"stagecraftAi/internal/vision"
)

const maxImageBytes = vision.MaxImageBytes

var (
	errMissingImage = errors.New("No image provided")
	errEmptyImage   = errors.New("Empty image file")
)

// Handler exposes the HTTP surface of the staging pipeline.
type Handler struct {
	Service *Service
	Events  *events.Broker
}

// Health handles GET /health.
func (h Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": Version,
		"features": map[string]bool{
			"staging_description": h.Service.CanDescribe(),
			"image_generation":    h.Service.CanGenerate(),
		},
	})
}

// Styles handles GET /styles.
func (h Handler) Styles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"room_types": catalog.RoomTypes(),
		"styles":     catalog.Styles(),
	})
}

// Stage handles POST /stage: a textual staging recommendation.
func (h Handler) Stage(w http.ResponseWriter, r *http.Request) {
	if !h.Service.CanDescribe() {
		writeError(w, http.StatusServiceUnavailable, "staging description service not configured")
		return
	}

	image, mimeType, err := readImageField(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	roomType := formValue(r, "room_type", catalog.DefaultRoomType)
	style := formValue(r, "style", catalog.DefaultStyle)

	description, err := h.Service.Describe(r.Context(), DescribeRequest{
		RequestID: uuid.NewString(),
		Image:     image,
		MIME:      mimeType,
		RoomType:  roomType,
		Style:     style,
	})
	if err != nil {
		writeTextServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"description": description,
		"room_type":   roomType,
		"style":       style,
		"status":      "success",
	})
}

// Analyze handles POST /analyze: the raw scene analysis.
func (h Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if !h.Service.CanAnalyze() {
		writeError(w, http.StatusServiceUnavailable, "scene analysis service not configured")
		return
	}

	image, mimeType, err := readImageField(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := h.Service.Analyze(r.Context(), image, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, vision.ErrTimeout):
			writeError(w, http.StatusGatewayTimeout, "scene analysis timed out")
		case errors.Is(err, vision.ErrNotConfigured):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"analysis": analysis,
		"status":   "success",
	})
}

// GenerateImage handles POST /generate-image: a synthetically staged photo.
func (h Handler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	if !h.Service.CanGenerate() {
		writeError(w, http.StatusServiceUnavailable, "image generation service not configured")
		return
	}

	image, mimeType, err := readImageField(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	continuity, err := prompts.ParseContinuity(r.FormValue("house_continuity"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid house_continuity payload")
		return
	}

	requestID := uuid.NewString()
	staged, err := h.Service.Generate(r.Context(), GenerateRequest{
		RequestID:      requestID,
		Image:          image,
		MIME:           mimeType,
		RoomType:       formValue(r, "room_type", catalog.DefaultRoomType),
		Style:          formValue(r, "style", catalog.DefaultStyle),
		EnableAnalysis: formBool(r, "enable_analysis", true),
		AspectRatio:    r.FormValue("aspect_ratio"),
		Continuity:     continuity,
	})
	if err != nil {
		writeRenderError(w, err)
		return
	}

	payload := map[string]any{
		"image":      staged.DataURI,
		"status":     "success",
		"request_id": requestID,
		"output_dimensions": map[string]int{
			"width":  staged.Width,
			"height": staged.Height,
		},
	}
	if staged.Scene != nil {
		payload["scene_analysis"] = staged.Scene
	}
	writeJSON(w, http.StatusOK, payload)
}

// StreamEvents handles GET /api/events by streaming pipeline progress as
// server-sent events.
func (h Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	ch := h.Events.Subscribe()
	defer h.Events.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-ch:
			data, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}

// writeTextServiceError maps text/vision model failures for /stage.
func writeTextServiceError(w http.ResponseWriter, err error) {
	var upstream *vision.UpstreamError
	switch {
	case errors.Is(err, vision.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "staging description timed out")
	case errors.Is(err, vision.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &upstream):
		switch upstream.StatusCode {
		case http.StatusUnauthorized, http.StatusTooManyRequests:
			writeError(w, upstream.StatusCode, upstream.Error())
		default:
			writeError(w, http.StatusInternalServerError, upstream.Error())
		}
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// writeRenderError maps image-generation failures for /generate-image. The
// remote service's status code passes through where one exists.
func writeRenderError(w http.ResponseWriter, err error) {
	var status *render.StatusError
	switch {
	case errors.Is(err, render.ErrTimedOut):
		writeError(w, http.StatusGatewayTimeout, "image generation timed out")
	case errors.Is(err, render.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &status):
		code := status.Code
		if code < 400 || code > 599 {
			code = http.StatusBadGateway
		}
		writeError(w, code, status.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// readImageField extracts the required multipart image upload, bounding its
// size and sniffing the MIME type from the filename.
func readImageField(r *http.Request) ([]byte, string, error) {
	if err := r.ParseMultipartForm(maxImageBytes + (1 << 20)); err != nil {
		return nil, "", errMissingImage
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return nil, "", errMissingImage
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("could not read image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", errEmptyImage
	}
	if len(data) > maxImageBytes {
		return nil, "", fmt.Errorf("image exceeds %d MB", maxImageBytes/(1024*1024))
	}

	return data, media.SniffMIME(header.Filename), nil
}

func formValue(r *http.Request, key, fallback string) string {
	if value := strings.TrimSpace(r.FormValue(key)); value != "" {
		return value
	}
	return fallback
}

func formBool(r *http.Request, key string, fallback bool) bool {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
