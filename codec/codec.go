// Package codec implements the image re-encoder behind optimize.Codec.
// Each raster kind is re-encoded into the same format: jpeg, png, and gif
// through the standard library encoders, webp through gowebp (lossy) or
// nativewebp (lossless), and avif through gen2brain/avif.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Register the webp decoder so existing .webp assets can be re-encoded;
	// the avif decoder registers itself via the import in avif.go.
	_ "golang.org/x/image/webp"

	"chimbori.dev/imagepress/optimize"
)

// ErrUnsupportedKind is returned when Encode is asked for a kind it has no
// encoder for.
var ErrUnsupportedKind = errors.New("codec: unsupported image kind")

// Registry implements optimize.Codec over the built-in encoders.
type Registry struct{}

// New returns the default codec.
func New() *Registry {
	return &Registry{}
}

// Encode re-encodes content of the declared kind, governed by the options
// record. The output is always the same format as the input.
func (r *Registry) Encode(content []byte, kind optimize.Kind, options optimize.EncodeOptions) ([]byte, error) {
	switch kind {
	case optimize.KindJPEG:
		return encodeJPEG(content, options)
	case optimize.KindPNG:
		return encodePNG(content, options)
	case optimize.KindWebP:
		return encodeWebP(content, options)
	case optimize.KindGIF:
		return encodeGIF(content)
	case optimize.KindAVIF:
		return encodeAVIF(content, options)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, kind)
}

// decode reads any registered image format, honoring EXIF orientation so a
// re-encoded jpeg does not come out rotated.
func decode(content []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
