package codec

import (
	"bytes"
	"fmt"

	"github.com/gen2brain/avif"

	"chimbori.dev/imagepress/optimize"
)

func encodeAVIF(content []byte, options optimize.EncodeOptions) ([]byte, error) {
	img, err := decode(content)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = avif.Encode(&buf, img, avif.Options{
		Quality: options.Int("quality", 50),
		Speed:   options.Int("speed", 8),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding avif: %w", err)
	}
	return buf.Bytes(), nil
}
