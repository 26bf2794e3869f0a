package render

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"
)

// VertexRenderer runs edit-mode generation on Vertex AI Imagen. It is the
// alternative backend selected when a Vertex project is configured.
type VertexRenderer struct {
	projectID string
	location  string
	model     string
	apiKey    string
	timeout   time.Duration
}

// VertexConfig describes how to connect to Imagen.
type VertexConfig struct {
	ProjectID string
	Location  string
	Model     string
	APIKey    string
	Timeout   time.Duration
}

// NewVertexRenderer wires a VertexRenderer.
func NewVertexRenderer(cfg VertexConfig) *VertexRenderer {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &VertexRenderer{
		projectID: strings.TrimSpace(cfg.ProjectID),
		location:  strings.TrimSpace(cfg.Location),
		model:     strings.TrimSpace(cfg.Model),
		apiKey:    strings.TrimSpace(cfg.APIKey),
		timeout:   timeout,
	}
}

// Render runs one Imagen edit request against the uploaded photo.
func (v *VertexRenderer) Render(ctx context.Context, req Request) (Result, error) {
	if v == nil || v.projectID == "" || v.location == "" || v.model == "" {
		return Result{}, ErrNotConfigured
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return Result{}, fmt.Errorf("render: empty prompt")
	}
	if len(req.Image) == 0 {
		return Result{}, fmt.Errorf("render: empty image data")
	}

	childCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	instance, err := structpb.NewValue(map[string]any{
		"prompt": req.Prompt,
		"image": map[string]any{
			"bytesBase64Encoded": base64.StdEncoding.EncodeToString(req.Image),
		},
	})
	if err != nil {
		return Result{}, err
	}

	params, err := structpb.NewValue(map[string]any{
		"sampleCount": 1,
		"editMode":    "inpainting-free-form",
		"aspectRatio": NormalizeAspectRatio(req.AspectRatio),
	})
	if err != nil {
		return Result{}, err
	}

	endpoint := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", v.projectID, v.location, v.model)
	options := []option.ClientOption{option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", v.location))}
	if v.apiKey != "" {
		options = append(options, option.WithAPIKey(v.apiKey))
	}

	client, err := aiplatform.NewPredictionClient(childCtx, options...)
	if err != nil {
		return Result{}, fmt.Errorf("render: prediction client: %w", err)
	}
	defer client.Close()

	resp, err := client.Predict(childCtx, &aiplatformpb.PredictRequest{
		Endpoint:   endpoint,
		Instances:  []*structpb.Value{instance},
		Parameters: params,
	})
	if err != nil {
		if errors.Is(childCtx.Err(), context.DeadlineExceeded) {
			return Result{}, fmt.Errorf("render: %w", ErrTimedOut)
		}
		return Result{}, fmt.Errorf("render: predict: %w", err)
	}
	if len(resp.Predictions) == 0 {
		return Result{}, fmt.Errorf("render: %w", ErrNoImage)
	}

	field := resp.Predictions[0].GetStructValue().GetFields()["bytesBase64Encoded"]
	if field == nil {
		return Result{}, fmt.Errorf("render: %w", ErrNoImage)
	}

	data, err := base64.StdEncoding.DecodeString(field.GetStringValue())
	if err != nil {
		return Result{}, fmt.Errorf("render: decode result: %w", err)
	}
	return Result{Data: data, MIME: "image/png"}, nil
}
