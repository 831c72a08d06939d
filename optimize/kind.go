package optimize

import (
	"path/filepath"
	"strings"
)

// Kind identifies the image format an asset is assumed to hold, derived from
// its file extension. Content sniffing is deliberately not performed; the
// bundler names its outputs, and the name is the contract.
type Kind string

const (
	KindJPEG  Kind = "jpeg"
	KindPNG   Kind = "png"
	KindWebP  Kind = "webp"
	KindGIF   Kind = "gif"
	KindAVIF  Kind = "avif"
	KindSVG   Kind = "svg"
	KindOther Kind = "other"
)

var kindByExt = map[string]Kind{
	".jpg":  KindJPEG,
	".jpeg": KindJPEG,
	".png":  KindPNG,
	".webp": KindWebP,
	".gif":  KindGIF,
	".avif": KindAVIF,
	".svg":  KindSVG,
}

// Classify maps a path to its image Kind by lowercased extension.
// Unknown extensions classify as KindOther; Classify never fails.
func Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := kindByExt[ext]; ok {
		return kind
	}
	return KindOther
}

// IsRaster reports whether the kind is routed through the codec.
func (k Kind) IsRaster() bool {
	switch k {
	case KindJPEG, KindPNG, KindWebP, KindGIF, KindAVIF:
		return true
	}
	return false
}
