package media

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffMIME(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"room.png", "image/png"},
		{"ROOM.PNG", "image/png"},
		{"room.webp", "image/webp"},
		{"room.gif", "image/gif"},
		{"room.jpg", "image/jpeg"},
		{"room.jpeg", "image/jpeg"},
		{"room", "image/jpeg"},
		{"", "image/jpeg"},
		{"room.png.txt", "image/jpeg"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SniffMIME(tc.filename), "filename %q", tc.filename)
	}
}

func TestDimensions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 640, 480))))

	width, height := Dimensions(buf.Bytes())
	assert.Equal(t, 640, width)
	assert.Equal(t, 480, height)
}

func TestDimensionsUndecodable(t *testing.T) {
	width, height := Dimensions([]byte("not an image"))
	assert.Zero(t, width)
	assert.Zero(t, height)

	width, height = Dimensions(nil)
	assert.Zero(t, width)
	assert.Zero(t, height)
}
