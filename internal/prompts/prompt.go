// Package prompts compiles room photos' scene analyses, catalog phrases,
// and continuity constraints into the single instruction string sent to the
// image model. Compilation is pure and deterministic: no I/O, and missing
// data always resolves to a named default or an omitted section, never to a
// placeholder token.
package prompts

import (
	"fmt"
	"strings"

	"stagecraftAi/internal/catalog"
	"stagecraftAi/internal/scene"
)

// Named defaults substituted for absent numeric estimates.
const (
	defaultCeilingFt      = 9.0
	defaultCameraHeightFt = 5.0
	defaultAspectRatio    = "4:3"
)

// Request carries everything the compiler needs. Analysis and Continuity
// are optional; AspectRatio is expected to be pre-validated.
type Request struct {
	RoomType    string
	Style       string
	Analysis    *scene.Analysis
	Continuity  *HouseContinuity
	AspectRatio string
}

// section pairs a presence check with a renderer so that ordering is a
// declared property and each section can be tested on its own.
type section struct {
	present func(a *scene.Analysis) bool
	render  func(b *strings.Builder, a *scene.Analysis)
}

var sections = []section{
	{presentDimensions, renderDimensions},
	{presentPerspective, renderPerspective},
	{presentDepthZones, renderDepthZones},
	{presentSizing, renderSizing},
	{presentDoorways, renderDoorways},
	{presentWindows, renderWindows},
	{presentFeatures, renderFeatures},
	{presentLayout, renderLayout},
	{presentLighting, renderLighting},
	{presentStaging, renderStaging},
}

// Build compiles the final instruction string.
func Build(req Request) string {
	var b strings.Builder

	b.WriteString("You are a professional real estate staging expert.\n")

	if req.Continuity != nil {
		renderContinuity(&b, req)
	} else {
		b.WriteString("\nTASK:\nStage this empty room with furniture.\n")
		fmt.Fprintf(&b, "Room type: %s\n", catalog.RoomPhrase(req.RoomType))
		fmt.Fprintf(&b, "Style: %s\n", catalog.StylePhrase(req.Style))
	}

	if a := req.Analysis; a != nil {
		b.WriteString("\nSCENE ANALYSIS (use this to keep furniture grounded and in scale):\n")
		for _, s := range sections {
			if s.present(a) {
				s.render(&b, a)
			}
		}
	}

	b.WriteString(`
CONSTRAINTS:
- Keep all structural elements (walls, windows, doors, floor, ceiling) exactly as they are
- Never block doorways or windows with furniture
- Scale every piece to the room and keep it grounded on the floor, not floating
- Match shadow direction and intensity to the lighting in the input photo
- Photorealistic quality suitable for a real estate listing
`)

	ratio := strings.TrimSpace(req.AspectRatio)
	if ratio == "" {
		ratio = defaultAspectRatio
	}
	fmt.Fprintf(&b, "\nRender the result at a %s aspect ratio, preserving the proportions of the input photo.\n", ratio)

	return b.String()
}

// renderContinuity emits the continuity-mode header. It replaces the plain
// task block entirely; the two never appear together.
func renderContinuity(b *strings.Builder, req Request) {
	hc := req.Continuity
	b.WriteString("\nTASK (DESIGN CONTINUITY MODE):\nStage this empty room so it belongs to a home that is already partially staged.\n")
	fmt.Fprintf(b, "Room type: %s\n", catalog.RoomPhrase(req.RoomType))
	fmt.Fprintf(b, "Style: %s\n", catalog.StylePhrase(req.Style))

	if hc.HouseName != "" {
		fmt.Fprintf(b, "Property: %s\n", hc.HouseName)
	}
	fmt.Fprintf(b, "Furniture style must stay cohesive with the %d room(s) already staged in this home.\n", hc.RoomsStaged)

	b.WriteString("Reuse this design DNA exactly:\n")
	dna := hc.DesignDNA
	if len(dna.PrimaryColors) > 0 {
		fmt.Fprintf(b, "- Primary colors: %s\n", strings.Join(dna.PrimaryColors, ", "))
	}
	if len(dna.AccentColors) > 0 {
		fmt.Fprintf(b, "- Accent colors: %s\n", strings.Join(dna.AccentColors, ", "))
	}
	if dna.WoodTone != "" {
		fmt.Fprintf(b, "- Wood tone: %s\n", dna.WoodTone)
	}
	if dna.MetalFinish != "" {
		fmt.Fprintf(b, "- Metal finish: %s\n", dna.MetalFinish)
	}
	if dna.TextileStyle != "" {
		fmt.Fprintf(b, "- Textiles: %s\n", dna.TextileStyle)
	}
	if dna.Flooring != "" {
		fmt.Fprintf(b, "- Flooring note: %s\n", dna.Flooring)
	}
}

func presentDimensions(a *scene.Analysis) bool { return a.Dimensions != nil }

func renderDimensions(b *strings.Builder, a *scene.Analysis) {
	d := a.Dimensions
	b.WriteString("\nROOM DIMENSIONS:\n")
	if d.WidthFt > 0 {
		fmt.Fprintf(b, "- Width: about %.0f ft", d.WidthFt)
		if d.WidthRange != "" {
			fmt.Fprintf(b, " (%s)", d.WidthRange)
		}
		b.WriteString("\n")
	} else if d.WidthRange != "" {
		fmt.Fprintf(b, "- Width: %s\n", d.WidthRange)
	}
	if d.LengthFt > 0 {
		fmt.Fprintf(b, "- Length: about %.0f ft", d.LengthFt)
		if d.LengthRange != "" {
			fmt.Fprintf(b, " (%s)", d.LengthRange)
		}
		b.WriteString("\n")
	} else if d.LengthRange != "" {
		fmt.Fprintf(b, "- Length: %s\n", d.LengthRange)
	}
	ceiling := d.CeilingFt
	if ceiling <= 0 {
		ceiling = defaultCeilingFt
	}
	fmt.Fprintf(b, "- Ceiling height: about %.0f ft\n", ceiling)
	if d.FloorAreaSqft > 0 {
		fmt.Fprintf(b, "- Floor area: roughly %.0f sq ft\n", d.FloorAreaSqft)
	}
}

func presentPerspective(a *scene.Analysis) bool { return a.Perspective != nil }

func renderPerspective(b *strings.Builder, a *scene.Analysis) {
	p := a.Perspective
	b.WriteString("\nCAMERA PERSPECTIVE:\n")
	height := p.CameraHeightFt
	if height <= 0 {
		height = defaultCameraHeightFt
	}
	fmt.Fprintf(b, "- Camera height: about %.1f ft\n", height)
	if p.CameraAngle != "" {
		fmt.Fprintf(b, "- Angle: %s\n", p.CameraAngle)
	}
	if p.LensEstimate != "" {
		fmt.Fprintf(b, "- Lens: %s\n", p.LensEstimate)
	}
	if p.VanishingPoint != "" {
		fmt.Fprintf(b, "- Vanishing point: %s\n", p.VanishingPoint)
	}
}

func presentDepthZones(a *scene.Analysis) bool {
	z := a.DepthZones
	return z != nil && (z.Foreground != nil || z.Midground != nil || z.Background != nil)
}

func renderDepthZones(b *strings.Builder, a *scene.Analysis) {
	z := a.DepthZones
	b.WriteString("\nDEPTH ZONES (place items within their band):\n")
	renderZone(b, "Foreground", z.Foreground)
	renderZone(b, "Midground", z.Midground)
	renderZone(b, "Background", z.Background)
}

func renderZone(b *strings.Builder, name string, zone *scene.Zone) {
	if zone == nil {
		return
	}
	fmt.Fprintf(b, "- %s", name)
	if zone.DepthRange != "" {
		fmt.Fprintf(b, " (%s)", zone.DepthRange)
	}
	if len(zone.SuitableItems) > 0 {
		fmt.Fprintf(b, ": %s", strings.Join(zone.SuitableItems, ", "))
	}
	b.WriteString("\n")
}

func presentSizing(a *scene.Analysis) bool { return len(a.Sizing) > 0 }

func renderSizing(b *strings.Builder, a *scene.Analysis) {
	b.WriteString("\nFURNITURE SIZING GUIDE:\n")
	for _, entry := range a.Sizing {
		if entry.Item == "" {
			continue
		}
		fmt.Fprintf(b, "- %s", entry.Item)
		if entry.Dimensions != "" {
			fmt.Fprintf(b, ": %s", entry.Dimensions)
		}
		if entry.Placement != "" {
			fmt.Fprintf(b, " (%s)", entry.Placement)
		}
		b.WriteString("\n")
	}
}

func presentDoorways(a *scene.Analysis) bool { return len(a.Doorways) > 0 }

func renderDoorways(b *strings.Builder, a *scene.Analysis) {
	b.WriteString("\nDOORWAYS (keep clear):\n")
	renderOpenings(b, a.Doorways)
}

func presentWindows(a *scene.Analysis) bool { return len(a.Windows) > 0 }

func renderWindows(b *strings.Builder, a *scene.Analysis) {
	b.WriteString("\nWINDOWS (keep visible):\n")
	renderOpenings(b, a.Windows)
}

func renderOpenings(b *strings.Builder, openings []scene.Opening) {
	for _, o := range openings {
		position := o.Position
		if position == "" {
			position = "position unspecified"
		}
		fmt.Fprintf(b, "- %s", position)
		if o.WidthFt > 0 {
			fmt.Fprintf(b, ", about %.0f ft wide", o.WidthFt)
		}
		if o.Note != "" {
			fmt.Fprintf(b, " (%s)", o.Note)
		}
		b.WriteString("\n")
	}
}

func presentFeatures(a *scene.Analysis) bool { return len(a.Features) > 0 }

func renderFeatures(b *strings.Builder, a *scene.Analysis) {
	fmt.Fprintf(b, "\nARCHITECTURAL FEATURES:\n- %s\n", strings.Join(a.Features, "\n- "))
}

func presentLayout(a *scene.Analysis) bool { return a.Layout != "" }

func renderLayout(b *strings.Builder, a *scene.Analysis) {
	fmt.Fprintf(b, "\nSPATIAL LAYOUT:\n%s\n", a.Layout)
}

func presentLighting(a *scene.Analysis) bool { return a.Lighting != nil }

func renderLighting(b *strings.Builder, a *scene.Analysis) {
	l := a.Lighting
	b.WriteString("\nLIGHTING:\n")
	if l.PrimarySource != "" {
		fmt.Fprintf(b, "- Primary source: %s\n", l.PrimarySource)
	}
	if l.Direction != "" {
		fmt.Fprintf(b, "- Direction: %s\n", l.Direction)
	}
	if l.Quality != "" {
		fmt.Fprintf(b, "- Quality: %s\n", l.Quality)
	}
}

func presentStaging(a *scene.Analysis) bool { return a.Staging != nil }

func renderStaging(b *strings.Builder, a *scene.Analysis) {
	s := a.Staging
	b.WriteString("\nSTAGING GUIDANCE:\n")
	if s.AnchorPiece != "" {
		fmt.Fprintf(b, "- Anchor piece: %s\n", s.AnchorPiece)
	}
	if len(s.PlacementGuide) > 0 {
		b.WriteString("- Placement order:\n")
		for i, step := range s.PlacementGuide {
			fmt.Fprintf(b, "  %d) %s\n", i+1, step)
		}
	}
	if s.TrafficPath != "" {
		fmt.Fprintf(b, "- Traffic path to keep open: %s\n", s.TrafficPath)
	}
	if len(s.AreasToAvoid) > 0 {
		fmt.Fprintf(b, "- Avoid placing furniture: %s\n", strings.Join(s.AreasToAvoid, "; "))
	}
}
