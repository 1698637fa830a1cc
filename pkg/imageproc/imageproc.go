package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// Bounds is the box an upload is fitted into; images already inside it are
// left at their original size.
type Bounds struct {
	Width  int
	Height int
}

var (
	TourBounds  = Bounds{Width: 2000, Height: 2000}
	HotelBounds = Bounds{Width: 1200, Height: 800}
)

type Processor struct {
	JPEGQuality int
}

func NewProcessor(jpegQuality int) *Processor {
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = 80
	}
	return &Processor{JPEGQuality: jpegQuality}
}

// Process decodes r, applies its EXIF orientation, shrinks it to fit b and
// re-encodes it. PNG stays PNG so transparency survives; everything else
// becomes JPEG. The returned extension has no leading dot.
func (p *Processor) Process(r io.Reader, b Bounds) ([]byte, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	img = fit(img, b)

	format, ext := imaging.JPEG, "jpg"
	if bytes.HasPrefix(data, pngSignature) {
		format, ext = imaging.PNG, "png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.JPEGQuality)); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), ext, nil
}

func fit(img image.Image, b Bounds) image.Image {
	size := img.Bounds().Size()
	if size.X <= b.Width && size.Y <= b.Height {
		return img
	}
	return imaging.Fit(img, b.Width, b.Height, imaging.Lanczos)
}
