// Package staging orchestrates the per-request pipeline: media sniff,
// optional scene analysis, prompt compilation, image generation, and
// response assembly. Each request is a single linear pass; no retries.
package staging

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"stagecraftAi/internal/events"
	"stagecraftAi/internal/media"
	"stagecraftAi/internal/prompts"
	"stagecraftAi/internal/render"
	"stagecraftAi/internal/scene"
)

// Version identifies the service iteration reported by /health.
const Version = "4.0.0"

// Analyzer produces a structured scene analysis for a room photo.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*scene.Analysis, error)
	Configured() bool
}

// TextClient generates text from a prompt plus an optional inline image.
type TextClient interface {
	Generate(ctx context.Context, system, prompt string, image []byte, mimeType string) (string, error)
	Configured() bool
}

// Service bundles the pipeline's collaborators. All fields are injected at
// startup; the service itself holds no per-request state.
type Service struct {
	Analyzer Analyzer
	Text     TextClient
	Renderer render.Renderer
	Events   *events.Broker
}

// DescribeRequest asks for a textual staging recommendation.
type DescribeRequest struct {
	RequestID string
	Image     []byte
	MIME      string
	RoomType  string
	Style     string
}

// GenerateRequest asks for a staged image.
type GenerateRequest struct {
	RequestID      string
	Image          []byte
	MIME           string
	RoomType       string
	Style          string
	EnableAnalysis bool
	AspectRatio    string
	Continuity     *prompts.HouseContinuity
}

// StagedImage is the assembled generation result.
type StagedImage struct {
	DataURI string
	MIME    string
	Width   int
	Height  int
	Scene   *scene.Summary
}

const describeDirective = `
Do not generate an image. Instead, write a detailed staging recommendation for this room following all of the guidance above: name the concrete furniture pieces, their placement, and the finishing touches a professional stager would add.`

// Describe runs the pipeline in text mode: analyze (best effort), compile,
// then ask the text model for a staging description.
func (s *Service) Describe(ctx context.Context, req DescribeRequest) (string, error) {
	analysis := s.analyze(ctx, req.RequestID, req.Image, req.MIME)

	s.publish(req.RequestID, events.StepCompiling, "")
	prompt := prompts.Build(prompts.Request{
		RoomType: req.RoomType,
		Style:    req.Style,
		Analysis: analysis,
	})

	s.publish(req.RequestID, events.StepDescribing, "")
	description, err := s.Text.Generate(ctx, "", prompt+describeDirective, req.Image, req.MIME)
	if err != nil {
		s.publish(req.RequestID, events.StepFailed, err.Error())
		return "", err
	}

	s.publish(req.RequestID, events.StepDone, "")
	return description, nil
}

// Generate runs the pipeline in image mode and assembles the response
// payload.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (StagedImage, error) {
	if s.Renderer == nil {
		return StagedImage{}, render.ErrNotConfigured
	}

	ratio := render.NormalizeAspectRatio(req.AspectRatio)

	var analysis *scene.Analysis
	if req.EnableAnalysis {
		analysis = s.analyze(ctx, req.RequestID, req.Image, req.MIME)
	}

	s.publish(req.RequestID, events.StepCompiling, "")
	prompt := prompts.Build(prompts.Request{
		RoomType:    req.RoomType,
		Style:       req.Style,
		Analysis:    analysis,
		Continuity:  req.Continuity,
		AspectRatio: ratio,
	})

	s.publish(req.RequestID, events.StepRendering, "")
	result, err := s.Renderer.Render(ctx, render.Request{
		Image:       req.Image,
		MIME:        req.MIME,
		Prompt:      prompt,
		AspectRatio: ratio,
	})
	if err != nil {
		s.publish(req.RequestID, events.StepFailed, err.Error())
		return StagedImage{}, err
	}

	width, height := media.Dimensions(result.Data)
	staged := StagedImage{
		DataURI: fmt.Sprintf("data:%s;base64,%s", result.MIME, base64.StdEncoding.EncodeToString(result.Data)),
		MIME:    result.MIME,
		Width:   width,
		Height:  height,
		Scene:   scene.Summarize(analysis),
	}

	s.publish(req.RequestID, events.StepDone, "")
	return staged, nil
}

// Analyze exposes the scene analyzer for the /analyze endpoint.
func (s *Service) Analyze(ctx context.Context, image []byte, mimeType string) (*scene.Analysis, error) {
	return s.Analyzer.Analyze(ctx, image, mimeType)
}

// CanDescribe reports whether the text/vision credential is present.
func (s *Service) CanDescribe() bool {
	return s.Text != nil && s.Text.Configured()
}

// CanGenerate reports whether an image backend is wired.
func (s *Service) CanGenerate() bool {
	return s.Renderer != nil
}

// CanAnalyze reports whether the analysis credential is present.
func (s *Service) CanAnalyze() bool {
	return s.Analyzer != nil && s.Analyzer.Configured()
}

// analyze is the degradation path: any analyzer failure is logged and the
// pipeline continues with no scene context.
func (s *Service) analyze(ctx context.Context, requestID string, image []byte, mimeType string) *scene.Analysis {
	if !s.CanAnalyze() {
		return nil
	}

	s.publish(requestID, events.StepAnalyzing, "")
	analysis, err := s.Analyzer.Analyze(ctx, image, mimeType)
	if err != nil {
		log.Printf("staging: scene analysis unavailable, continuing without it: %v", err)
		s.publish(requestID, events.StepAnalyzing, "unavailable, continuing without scene context")
		return nil
	}
	return analysis
}

func (s *Service) publish(requestID, step, detail string) {
	if s.Events == nil || requestID == "" {
		return
	}
	s.Events.Publish(events.Event{RequestID: requestID, Step: step, Detail: detail})
}
