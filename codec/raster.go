package codec

import (
	"bytes"
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"

	"chimbori.dev/imagepress/optimize"
)

func encodeJPEG(content []byte, options optimize.EncodeOptions) ([]byte, error) {
	img, err := decode(content)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	quality := options.Int("quality", 75)
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func encodePNG(content []byte, options optimize.EncodeOptions) ([]byte, error) {
	img, err := decode(content)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: pngLevel(options.Int("compression-level", 6))}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// pngLevel maps the 0–9 zlib-style option value onto the standard library's
// coarser compression levels.
func pngLevel(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

// encodeGIF rewrites every frame of the animation; palettes are preserved, so
// the only wins come from a tighter LZW stream.
func encodeGIF(content []byte) ([]byte, error) {
	g, err := gif.DecodeAll(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("decoding gif: %w", err)
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, g); err != nil {
		return nil, fmt.Errorf("encoding gif: %w", err)
	}
	return buf.Bytes(), nil
}
