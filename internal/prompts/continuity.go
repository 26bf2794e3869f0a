package prompts

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HouseContinuity is a caller-supplied constraint forcing generated staging
// to reuse a consistent palette across multiple rooms of the same property.
type HouseContinuity struct {
	HouseName   string    `json:"house_name"`
	RoomsStaged int       `json:"rooms_staged"`
	DesignDNA   DesignDNA `json:"design_dna"`
}

// DesignDNA carries the palette/material/finish values that must be echoed
// verbatim when continuity is active.
type DesignDNA struct {
	PrimaryColors []string `json:"primary_colors"`
	AccentColors  []string `json:"accent_colors"`
	WoodTone      string   `json:"wood_tone"`
	MetalFinish   string   `json:"metal_finish"`
	TextileStyle  string   `json:"textile_style"`
	Flooring      string   `json:"flooring,omitempty"`
}

// ParseContinuity decodes the optional house_continuity form field. An
// empty value means continuity is simply not requested.
func ParseContinuity(raw string) (*HouseContinuity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var hc HouseContinuity
	if err := json.Unmarshal([]byte(raw), &hc); err != nil {
		return nil, fmt.Errorf("prompts: parse house_continuity: %w", err)
	}
	return &hc, nil
}
