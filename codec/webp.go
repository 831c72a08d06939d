package codec

import (
	"bytes"
	"fmt"

	nativewebp "github.com/HugoSmits86/nativewebp"
	"github.com/bep/gowebp/libwebp"
	"github.com/bep/gowebp/libwebp/webpoptions"

	"chimbori.dev/imagepress/optimize"
)

// encodeWebP produces lossy webp at the requested quality. An options record
// with "lossless: true" switches to the lossless VP8L encoder instead, where
// quality does not apply.
func encodeWebP(content []byte, options optimize.EncodeOptions) ([]byte, error) {
	img, err := decode(content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if options.Bool("lossless", false) {
		if err := nativewebp.Encode(&buf, img, &nativewebp.Options{}); err != nil {
			return nil, fmt.Errorf("encoding lossless webp: %w", err)
		}
		return buf.Bytes(), nil
	}

	err = libwebp.Encode(&buf, img, webpoptions.EncodingOptions{
		Quality:        options.Int("quality", 75),
		EncodingPreset: webpoptions.EncodingPresetDefault,
		UseSharpYuv:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding webp: %w", err)
	}
	return buf.Bytes(), nil
}
