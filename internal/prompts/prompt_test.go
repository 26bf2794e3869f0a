package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagecraftAi/internal/catalog"
	"stagecraftAi/internal/scene"
)

func fullAnalysis() *scene.Analysis {
	return &scene.Analysis{
		RoomType:   "living room",
		Confidence: 0.8,
		Dimensions: &scene.Dimensions{
			WidthFt:       12,
			WidthRange:    "11-13 ft",
			LengthFt:      15,
			CeilingFt:     10,
			FloorAreaSqft: 180,
		},
		Perspective: &scene.Perspective{
			CameraHeightFt: 5.2,
			CameraAngle:    "eye-level",
			LensEstimate:   "wide angle ~24mm",
			VanishingPoint: "center of frame",
		},
		DepthZones: &scene.DepthZones{
			Foreground: &scene.Zone{DepthRange: "0-4 ft", SuitableItems: []string{"accent chair", "floor lamp"}},
			Midground:  &scene.Zone{DepthRange: "4-10 ft", SuitableItems: []string{"sofa"}},
			Background: &scene.Zone{DepthRange: "10+ ft", SuitableItems: []string{"console table"}},
		},
		Sizing: []scene.SizingEntry{
			{Item: "sofa", Dimensions: "84 in wide x 36 in deep", Placement: "against the left wall"},
		},
		Doorways: []scene.Opening{{Position: "left wall", WidthFt: 3, Note: "open passage"}},
		Windows:  []scene.Opening{{Position: "back wall", WidthFt: 5}},
		Features: []string{"crown molding", "hardwood floor"},
		Layout:   "long rectangle opening toward a bright window wall",
		Lighting: &scene.Lighting{PrimarySource: "daylight", Direction: "left", Quality: "soft"},
		Staging: &scene.Recommendations{
			AnchorPiece:    "84 in sofa",
			PlacementGuide: []string{"sofa against left wall", "rug in front of sofa"},
			TrafficPath:    "entry to window",
			AreasToAvoid:   []string{"in front of doorway"},
		},
	}
}

func TestBuildRendersCatalogPhrases(t *testing.T) {
	out := Build(Request{RoomType: "BEDROOM", Style: "SCANDINAVIAN"})
	assert.Contains(t, out, catalog.RoomPhrase("BEDROOM"))
	assert.Contains(t, out, catalog.StylePhrase("SCANDINAVIAN"))
}

func TestBuildUnknownTagsFallBack(t *testing.T) {
	out := Build(Request{RoomType: "SPACESHIP", Style: "BAROQUE"})
	assert.Contains(t, out, catalog.RoomPhrase(catalog.DefaultRoomType))
	assert.Contains(t, out, catalog.StylePhrase(catalog.DefaultStyle))
}

func TestBuildWithFullAnalysisRendersEverySection(t *testing.T) {
	out := Build(Request{RoomType: "LIVING", Style: "MODERN", Analysis: fullAnalysis()})

	for _, heading := range []string{
		"ROOM DIMENSIONS:",
		"CAMERA PERSPECTIVE:",
		"DEPTH ZONES",
		"FURNITURE SIZING GUIDE:",
		"DOORWAYS",
		"WINDOWS",
		"ARCHITECTURAL FEATURES:",
		"SPATIAL LAYOUT:",
		"LIGHTING:",
		"STAGING GUIDANCE:",
	} {
		assert.Contains(t, out, heading)
	}

	assert.Contains(t, out, "84 in sofa")
	assert.Contains(t, out, "crown molding")
}

func TestBuildOmitsAbsentSections(t *testing.T) {
	analysis := &scene.Analysis{
		Dimensions: &scene.Dimensions{WidthFt: 12, LengthFt: 14, CeilingFt: 9},
		Lighting:   &scene.Lighting{PrimarySource: "daylight"},
	}
	out := Build(Request{RoomType: "LIVING", Style: "MODERN", Analysis: analysis})

	assert.Contains(t, out, "ROOM DIMENSIONS:")
	assert.Contains(t, out, "LIGHTING:")
	for _, heading := range []string{
		"CAMERA PERSPECTIVE:",
		"DEPTH ZONES",
		"FURNITURE SIZING GUIDE:",
		"DOORWAYS",
		"WINDOWS",
		"ARCHITECTURAL FEATURES:",
		"SPATIAL LAYOUT:",
		"STAGING GUIDANCE:",
	} {
		assert.NotContains(t, out, heading)
	}
}

func TestBuildWithoutAnalysisOmitsSceneBlock(t *testing.T) {
	out := Build(Request{RoomType: "LIVING", Style: "MODERN"})
	assert.NotContains(t, out, "SCENE ANALYSIS")
	assert.Contains(t, out, "CONSTRAINTS:")
}

func TestBuildNeverEmitsPlaceholderTokens(t *testing.T) {
	inputs := []*scene.Analysis{
		nil,
		{},
		fullAnalysis(),
		{Dimensions: &scene.Dimensions{}},
		{DepthZones: &scene.DepthZones{Midground: &scene.Zone{}}},
		{Doorways: []scene.Opening{{}}},
		{Staging: &scene.Recommendations{}},
	}

	for _, analysis := range inputs {
		out := Build(Request{RoomType: "LIVING", Style: "MODERN", Analysis: analysis})
		for _, token := range []string{"null", "<nil>", "%!", "map["} {
			assert.NotContains(t, out, token)
		}
	}
}

func TestBuildDefaultsMissingNumericFields(t *testing.T) {
	out := Build(Request{
		RoomType: "LIVING",
		Style:    "MODERN",
		Analysis: &scene.Analysis{
			Dimensions:  &scene.Dimensions{WidthFt: 12, LengthFt: 14},
			Perspective: &scene.Perspective{CameraAngle: "eye-level"},
		},
	})

	assert.Contains(t, out, "Ceiling height: about 9 ft")
	assert.Contains(t, out, "Camera height: about 5.0 ft")
}

func TestContinuityTemplateIsExclusive(t *testing.T) {
	continuity := &HouseContinuity{
		HouseName:   "Maple Grove House",
		RoomsStaged: 3,
		DesignDNA: DesignDNA{
			PrimaryColors: []string{"warm white", "sage green"},
			AccentColors:  []string{"brass"},
			WoodTone:      "light oak",
			MetalFinish:   "brushed brass",
			TextileStyle:  "natural linen",
			Flooring:      "wide plank oak",
		},
	}

	plain := Build(Request{RoomType: "LIVING", Style: "MODERN"})
	withContinuity := Build(Request{RoomType: "LIVING", Style: "MODERN", Continuity: continuity})

	assert.Contains(t, plain, "Stage this empty room with furniture")
	assert.NotContains(t, plain, "DESIGN CONTINUITY MODE")

	assert.Contains(t, withContinuity, "DESIGN CONTINUITY MODE")
	assert.NotContains(t, withContinuity, "Stage this empty room with furniture")

	// design DNA must echo verbatim
	for _, value := range []string{
		"Maple Grove House",
		"warm white, sage green",
		"brass",
		"light oak",
		"brushed brass",
		"natural linen",
		"wide plank oak",
	} {
		assert.Contains(t, withContinuity, value)
	}
	assert.Contains(t, withContinuity, "3 room(s) already staged")
	// catalog phrases render in both templates
	assert.Contains(t, withContinuity, catalog.RoomPhrase("LIVING"))
	assert.Contains(t, withContinuity, catalog.StylePhrase("MODERN"))
}

func TestBuildEchoesAspectRatio(t *testing.T) {
	out := Build(Request{RoomType: "LIVING", Style: "MODERN", AspectRatio: "16:9"})
	assert.Contains(t, out, "16:9 aspect ratio")

	out = Build(Request{RoomType: "LIVING", Style: "MODERN"})
	assert.Contains(t, out, "4:3 aspect ratio")
}

func TestBuildIsDeterministic(t *testing.T) {
	req := Request{RoomType: "DINING", Style: "LUXE", Analysis: fullAnalysis(), AspectRatio: "3:2"}
	assert.Equal(t, Build(req), Build(req))
}

func TestBuildClosingDirectives(t *testing.T) {
	out := Build(Request{RoomType: "LIVING", Style: "MODERN"})
	for _, directive := range []string{
		"structural elements",
		"Never block doorways or windows",
		"grounded on the floor",
		"shadow direction",
		"Photorealistic",
	} {
		assert.Contains(t, out, directive)
	}
}

func TestParseContinuity(t *testing.T) {
	hc, err := ParseContinuity("")
	require.NoError(t, err)
	assert.Nil(t, hc)

	hc, err = ParseContinuity("   ")
	require.NoError(t, err)
	assert.Nil(t, hc)

	_, err = ParseContinuity("{not json")
	assert.Error(t, err)

	hc, err = ParseContinuity(`{"house_name":"Elm St","rooms_staged":2,"design_dna":{"wood_tone":"walnut"}}`)
	require.NoError(t, err)
	require.NotNil(t, hc)
	assert.Equal(t, "Elm St", hc.HouseName)
	assert.Equal(t, 2, hc.RoomsStaged)
	assert.Equal(t, "walnut", hc.DesignDNA.WoodTone)
}

func TestSectionOrderIsDeclared(t *testing.T) {
	out := Build(Request{RoomType: "LIVING", Style: "MODERN", Analysis: fullAnalysis()})

	order := []string{
		"ROOM DIMENSIONS:",
		"CAMERA PERSPECTIVE:",
		"DEPTH ZONES",
		"FURNITURE SIZING GUIDE:",
		"DOORWAYS",
		"WINDOWS",
		"ARCHITECTURAL FEATURES:",
		"SPATIAL LAYOUT:",
		"LIGHTING:",
		"STAGING GUIDANCE:",
	}
	last := -1
	for _, heading := range order {
		idx := strings.Index(out, heading)
		require.GreaterOrEqual(t, idx, 0, "missing %q", heading)
		assert.Greater(t, idx, last, "%q out of order", heading)
		last = idx
	}
}
