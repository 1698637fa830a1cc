package imageproc

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 10, G: 200, B: 10, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func TestProcessShrinksLargeJPEG(t *testing.T) {
	p := NewProcessor(80)
	out, ext, err := p.Process(bytes.NewReader(encodeJPEG(t, 2400, 1200)), HotelBounds)
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestProcessKeepsSmallPNG(t *testing.T) {
	p := NewProcessor(0)
	assert.Equal(t, 80, p.JPEGQuality)

	out, ext, err := p.Process(bytes.NewReader(encodePNG(t, 300, 200)), TourBounds)
	require.NoError(t, err)
	assert.Equal(t, "png", ext)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestProcessRejectsGarbage(t *testing.T) {
	_, _, err := NewProcessor(80).Process(strings.NewReader("not an image"), TourBounds)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// withOrientation splices an EXIF APP1 segment carrying the given orientation
// tag right after the JPEG start-of-image marker.
func withOrientation(t *testing.T, jpg []byte, orientation byte) []byte {
	t.Helper()
	require.True(t, bytes.HasPrefix(jpg, []byte{0xFF, 0xD8}))
	tiff := []byte{
		'M', 'M', 0x00, 0x2A, 0x00, 0x00, 0x00, 0x08, // big-endian header, IFD at 8
		0x00, 0x01, // one entry
		0x01, 0x12, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, orientation, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // no next IFD
	}
	payload := append([]byte("Exif\x00\x00"), tiff...)
	size := len(payload) + 2
	app1 := append([]byte{0xFF, 0xE1, byte(size >> 8), byte(size)}, payload...)

	out := append([]byte{}, jpg[:2]...)
	out = append(out, app1...)
	return append(out, jpg[2:]...)
}

func TestProcessAppliesExifOrientation(t *testing.T) {
	// Orientation 6 means the camera stored the frame rotated; a 400x200
	// landscape buffer displays as 200x400 portrait.
	src := withOrientation(t, encodeJPEG(t, 400, 200), 6)

	out, ext, err := NewProcessor(80).Process(bytes.NewReader(src), TourBounds)
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)

	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}
