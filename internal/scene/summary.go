package scene

import (
	"fmt"
	"strings"
)

// Summary is the condensed projection of an Analysis returned to clients
// alongside a generated image.
type Summary struct {
	RoomType     string           `json:"room_type,omitempty"`
	Confidence   float64          `json:"confidence,omitempty"`
	Dimensions   string           `json:"dimensions,omitempty"`
	DepthZones   string           `json:"depth_zones,omitempty"`
	Perspective  string           `json:"perspective,omitempty"`
	DoorwayCount int              `json:"doorway_count"`
	WindowCount  int              `json:"window_count"`
	Layout       string           `json:"spatial_layout,omitempty"`
	Lighting     string           `json:"lighting,omitempty"`
	Sizing       []SizingEntry    `json:"furniture_sizing_guide,omitempty"`
	Staging      *Recommendations `json:"staging_recommendations,omitempty"`
}

// Summarize condenses an Analysis for client display. It never mutates the
// source and tolerates any combination of missing sub-records.
func Summarize(a *Analysis) *Summary {
	if a == nil {
		return nil
	}

	s := &Summary{
		RoomType:     a.RoomType,
		Confidence:   a.Confidence,
		DoorwayCount: len(a.Doorways),
		WindowCount:  len(a.Windows),
		Layout:       a.Layout,
		Sizing:       a.Sizing,
		Staging:      a.Staging,
	}

	if d := a.Dimensions; d != nil {
		parts := make([]string, 0, 3)
		if d.WidthFt > 0 && d.LengthFt > 0 {
			parts = append(parts, fmt.Sprintf("%.0f x %.0f ft", d.WidthFt, d.LengthFt))
		}
		if d.CeilingFt > 0 {
			parts = append(parts, fmt.Sprintf("%.0f ft ceiling", d.CeilingFt))
		}
		if d.FloorAreaSqft > 0 {
			parts = append(parts, fmt.Sprintf("~%.0f sq ft", d.FloorAreaSqft))
		}
		s.Dimensions = strings.Join(parts, ", ")
	}

	if z := a.DepthZones; z != nil {
		parts := make([]string, 0, 3)
		for _, band := range []struct {
			name string
			zone *Zone
		}{
			{"foreground", z.Foreground},
			{"midground", z.Midground},
			{"background", z.Background},
		} {
			if band.zone == nil {
				continue
			}
			if band.zone.DepthRange != "" {
				parts = append(parts, fmt.Sprintf("%s %s", band.name, band.zone.DepthRange))
			} else {
				parts = append(parts, band.name)
			}
		}
		s.DepthZones = strings.Join(parts, "; ")
	}

	if p := a.Perspective; p != nil {
		parts := make([]string, 0, 3)
		if p.CameraHeightFt > 0 {
			parts = append(parts, fmt.Sprintf("camera at %.1f ft", p.CameraHeightFt))
		}
		if p.CameraAngle != "" {
			parts = append(parts, p.CameraAngle)
		}
		if p.LensEstimate != "" {
			parts = append(parts, p.LensEstimate)
		}
		s.Perspective = strings.Join(parts, ", ")
	}

	if l := a.Lighting; l != nil {
		parts := make([]string, 0, 3)
		if l.PrimarySource != "" {
			parts = append(parts, l.PrimarySource)
		}
		if l.Direction != "" {
			parts = append(parts, "from "+l.Direction)
		}
		if l.Quality != "" {
			parts = append(parts, l.Quality)
		}
		s.Lighting = strings.Join(parts, ", ")
	}

	return s
}
