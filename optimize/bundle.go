package optimize

// AssetType distinguishes generated code chunks from emitted static assets.
// Only assets are candidates for re-encoding.
type AssetType string

const (
	TypeChunk AssetType = "chunk"
	TypeAsset AssetType = "asset"
)

// Asset is one emitted build artifact as handed over by the bundler.
// Source holds either a string or a []byte; bundlers emit both, depending on
// whether the artifact came from a text or binary pipeline.
type Asset struct {
	Type   AssetType
	Source any
}

// Bundle is the full set of emitted artifacts, keyed by output path.
type Bundle map[string]*Asset

// sourceBytes returns the asset content as bytes plus whether the content was
// textual. ok is false when Source holds neither a string nor a []byte.
func (a *Asset) sourceBytes() (content []byte, textual, ok bool) {
	switch src := a.Source.(type) {
	case []byte:
		return src, false, true
	case string:
		return []byte(src), true, true
	}
	return nil, false, false
}
