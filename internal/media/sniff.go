// Package media handles lightweight image metadata: MIME sniffing from
// filenames and pixel-dimension probing of generated output.
package media

import "strings"

// suffix matches are checked in this order; first hit wins.
var suffixMIMEs = []struct {
	suffix string
	mime   string
}{
	{".png", "image/png"},
	{".webp", "image/webp"},
	{".gif", "image/gif"},
}

// SniffMIME selects a MIME type from the uploaded filename. The match is a
// case-insensitive suffix check; anything unrecognized (including .jpg,
// .jpeg, and empty filenames) resolves to image/jpeg.
func SniffMIME(filename string) string {
	name := strings.ToLower(strings.TrimSpace(filename))
	for _, entry := range suffixMIMEs {
		if strings.HasSuffix(name, entry.suffix) {
			return entry.mime
		}
	}
	return "image/jpeg"
}
