// Package catalog maps enumerated room-type and style keys to the
// descriptive phrases used when compiling staging prompts. Unknown keys
// always fall back to the default entry.
package catalog

import "strings"

const (
	DefaultRoomType = "LIVING"
	DefaultStyle    = "MODERN"
)

var roomTypeOrder = []string{
	"LIVING",
	"KITCHEN",
	"DINING",
	"BEDROOM",
	"MASTER_BEDROOM",
	"OFFICE",
	"KID_BEDROOM",
	"NURSERY",
	"LIVING_DINING",
}

var roomTypes = map[string]string{
	"LIVING":         "Professional living room with designer sofa, coffee table, area rug, and wall decor",
	"KITCHEN":        "Modern kitchen with appliances, marble counters, stools, and pendant lights",
	"DINING":         "Elegant dining room with large table, upholstered chairs, and a centerpiece",
	"BEDROOM":        "Cozy bedroom with bed, nightstands, soft linens, and warm lighting",
	"MASTER_BEDROOM": "Grand master suite with king bed, lounge seating, and premium lighting",
	"OFFICE":         "Executive home office with desk, ergonomic chair, shelving, and plants",
	"KID_BEDROOM":    "Playful kids bedroom with a single bed, study nook, toy storage, and cheerful accents",
	"NURSERY":        "Serene nursery with crib, rocking chair, soft rug, and gentle ambient lighting",
	"LIVING_DINING":  "Open-plan living and dining space with a sofa group, dining table, and a cohesive flow between zones",
}

var styleOrder = []string{
	"MODERN",
	"LUXE",
	"SCANDINAVIAN",
	"INDUSTRIAL",
	"FARMHOUSE",
}

var styles = map[string]string{
	"MODERN":       "Minimalist modern aesthetic with clean lines and neutral colors",
	"LUXE":         "Luxurious maximalist aesthetic with high-end textures and warm lighting",
	"SCANDINAVIAN": "Scandinavian aesthetic with light woods, soft whites, wool textiles, and airy simplicity",
	"INDUSTRIAL":   "Industrial aesthetic with raw metals, dark leathers, exposed materials, and bold contrast",
	"FARMHOUSE":    "Modern farmhouse aesthetic with rustic woods, linen fabrics, and a warm welcoming palette",
}

// RoomPhrase returns the descriptive phrase for a room-type key, falling
// back to the default room type for unrecognized values.
func RoomPhrase(key string) string {
	if phrase, ok := roomTypes[normalize(key)]; ok {
		return phrase
	}
	return roomTypes[DefaultRoomType]
}

// StylePhrase returns the descriptive phrase for a style key, falling back
// to the default style for unrecognized values.
func StylePhrase(key string) string {
	if phrase, ok := styles[normalize(key)]; ok {
		return phrase
	}
	return styles[DefaultStyle]
}

// RoomTypes lists known room-type keys in declaration order.
func RoomTypes() []string {
	out := make([]string, len(roomTypeOrder))
	copy(out, roomTypeOrder)
	return out
}

// Styles lists known style keys in declaration order.
func Styles() []string {
	out := make([]string, len(styleOrder))
	copy(out, styleOrder)
	return out
}

func normalize(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
