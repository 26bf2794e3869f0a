// Package scene models the structured spatial analysis produced by the
// vision model. Every sub-record is optional; a partially filled document
// is the normal case, not an error.
package scene

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Analysis is the fixed-schema room description requested from the vision
// model. It is built per request and discarded after prompt compilation.
type Analysis struct {
	RoomType   string  `json:"room_type,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`

	Dimensions  *Dimensions      `json:"room_dimensions,omitempty"`
	Perspective *Perspective     `json:"perspective,omitempty"`
	DepthZones  *DepthZones      `json:"depth_zones,omitempty"`
	Sizing      []SizingEntry    `json:"furniture_sizing_guide,omitempty"`
	Doorways    []Opening        `json:"doorways,omitempty"`
	Windows     []Opening        `json:"windows,omitempty"`
	Features    []string         `json:"architectural_features,omitempty"`
	Layout      string           `json:"spatial_layout,omitempty"`
	Lighting    *Lighting        `json:"lighting_analysis,omitempty"`
	Staging     *Recommendations `json:"staging_recommendations,omitempty"`
}

// Dimensions carries the model's bounded size estimates.
type Dimensions struct {
	WidthFt       float64 `json:"width_estimate_ft,omitempty"`
	WidthRange    string  `json:"width_range,omitempty"`
	LengthFt      float64 `json:"length_estimate_ft,omitempty"`
	LengthRange   string  `json:"length_range,omitempty"`
	CeilingFt     float64 `json:"ceiling_height_ft,omitempty"`
	FloorAreaSqft float64 `json:"floor_area_sqft,omitempty"`
}

// Perspective describes the estimated camera setup.
type Perspective struct {
	CameraHeightFt float64 `json:"camera_height_ft,omitempty"`
	CameraAngle    string  `json:"camera_angle,omitempty"`
	LensEstimate   string  `json:"lens_estimate,omitempty"`
	VanishingPoint string  `json:"vanishing_point,omitempty"`
}

// DepthZones splits the room into distance bands from the camera.
type DepthZones struct {
	Foreground *Zone `json:"foreground,omitempty"`
	Midground  *Zone `json:"midground,omitempty"`
	Background *Zone `json:"background,omitempty"`
}

// Zone is one distance band with furniture categories that suit it.
type Zone struct {
	DepthRange    string   `json:"depth_range_ft,omitempty"`
	SuitableItems []string `json:"suitable_items,omitempty"`
}

// SizingEntry recommends dimensions and placement for one furniture item.
type SizingEntry struct {
	Item       string `json:"item,omitempty"`
	Dimensions string `json:"recommended_dimensions,omitempty"`
	Placement  string `json:"placement,omitempty"`
}

// Opening locates a doorway or window.
type Opening struct {
	Position string  `json:"position,omitempty"`
	WidthFt  float64 `json:"width_ft,omitempty"`
	Note     string  `json:"note,omitempty"`
}

// Lighting summarizes the light conditions in the photo.
type Lighting struct {
	PrimarySource string `json:"primary_source,omitempty"`
	Direction     string `json:"direction,omitempty"`
	Quality       string `json:"quality,omitempty"`
}

// Recommendations carries the model's staging guidance.
type Recommendations struct {
	AnchorPiece    string   `json:"anchor_piece,omitempty"`
	PlacementGuide []string `json:"placement_guide,omitempty"`
	TrafficPath    string   `json:"traffic_path,omitempty"`
	AreasToAvoid   []string `json:"areas_to_avoid,omitempty"`
}

// Parse extracts an Analysis from model output. Models tend to wrap JSON in
// prose or code fences, so a brace-slice retry follows the direct attempt.
// Missing or extra fields are fine; only structurally broken JSON fails.
func Parse(text string) (*Analysis, error) {
	var analysis Analysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		start := strings.Index(text, "{")
		end := strings.LastIndex(text, "}")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("scene: parse analysis: %w", err)
		}
		if err := json.Unmarshal([]byte(text[start:end+1]), &analysis); err != nil {
			return nil, fmt.Errorf("scene: parse analysis: %w", err)
		}
	}
	return &analysis, nil
}
