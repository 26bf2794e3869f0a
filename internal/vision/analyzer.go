package vision

import (
	"context"
	"fmt"

	"stagecraftAi/internal/scene"
)

// analysisPrompt requests the fixed-schema spatial breakdown. Door and
// outlet sizes are named as calibration anchors so the model's estimates
// stay physically plausible.
const analysisPrompt = `You are a spatial analyst for real estate staging. Study this photo of an empty room and estimate its geometry. Calibrate all sizes against standard references visible in the photo: interior doors are 80 in tall and 30-36 in wide, electrical outlets sit 12-18 in above the floor, baseboards are 3-5 in tall.

Respond with ONLY a JSON object using this exact structure (omit any field you cannot estimate, never invent placeholders):
{
  "room_type": "best guess at the room's intended use",
  "confidence": 0.0,
  "room_dimensions": {
    "width_estimate_ft": 0,
    "width_range": "e.g. 11-13 ft",
    "length_estimate_ft": 0,
    "length_range": "e.g. 14-16 ft",
    "ceiling_height_ft": 0,
    "floor_area_sqft": 0
  },
  "perspective": {
    "camera_height_ft": 0,
    "camera_angle": "e.g. eye-level, slightly tilted down",
    "lens_estimate": "e.g. wide angle ~24mm",
    "vanishing_point": "e.g. center-right of frame"
  },
  "depth_zones": {
    "foreground": {"depth_range_ft": "0-4 ft", "suitable_items": ["..."]},
    "midground": {"depth_range_ft": "4-10 ft", "suitable_items": ["..."]},
    "background": {"depth_range_ft": "10+ ft", "suitable_items": ["..."]}
  },
  "furniture_sizing_guide": [
    {"item": "sofa", "recommended_dimensions": "84 in wide x 36 in deep", "placement": "against the left wall"}
  ],
  "doorways": [{"position": "left wall, near corner", "width_ft": 3, "note": "open passage"}],
  "windows": [{"position": "back wall, centered", "width_ft": 5, "note": "double-hung"}],
  "architectural_features": ["..."],
  "spatial_layout": "one sentence describing how the space reads",
  "lighting_analysis": {"primary_source": "...", "direction": "...", "quality": "..."},
  "staging_recommendations": {
    "anchor_piece": "the single piece to place first",
    "placement_guide": ["ordered placements from foreground to background"],
    "traffic_path": "where people will walk",
    "areas_to_avoid": ["..."]
  }
}

All numeric estimates must be bounded and carry implicit foot/inch units as shown. Keep every list short and concrete.`

// Analyzer requests structured scene analyses from the vision model.
type Analyzer struct {
	client *Client
}

// NewAnalyzer constructs an Analyzer on top of the shared client.
func NewAnalyzer(client *Client) *Analyzer {
	return &Analyzer{client: client}
}

// Configured reports whether the underlying credential is present.
func (a *Analyzer) Configured() bool {
	return a != nil && a.client.Configured()
}

// Analyze asks the vision model for the fixed-schema room description. Any
// failure is returned as an error; the staging pipeline treats it as an
// expected degradation and proceeds without scene context.
func (a *Analyzer) Analyze(ctx context.Context, image []byte, mimeType string) (*scene.Analysis, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("vision: empty image data")
	}
	if len(image) > MaxImageBytes {
		return nil, fmt.Errorf("vision: image exceeds %d bytes", MaxImageBytes)
	}

	text, err := a.client.Generate(ctx, "", analysisPrompt, image, mimeType)
	if err != nil {
		return nil, err
	}
	return scene.Parse(text)
}
