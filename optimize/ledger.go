package optimize

// Status is the terminal outcome of one asset's trip through the pipeline.
type Status string

const (
	// StatusCompressed: the re-encoded candidate was strictly smaller and
	// replaced the asset content.
	StatusCompressed Status = "compressed"
	// StatusNoImprovement: the codec ran but produced equal or larger output;
	// the original content was retained.
	StatusNoImprovement Status = "no-improvement"
	// StatusSkippedVector: SVG assets pass through untouched.
	StatusSkippedVector Status = "skipped-vector"
	// StatusSkippedUnsupported: the extension matched no known image format.
	StatusSkippedUnsupported Status = "skipped-unsupported"
	// StatusSkippedNoOptions: the kind's options record is empty, so the
	// codec was never invoked.
	StatusSkippedNoOptions Status = "skipped-no-options"
	// StatusSkippedText: a string payload arrived for a non-vector image.
	StatusSkippedText Status = "skipped-non-vector-text"
	// StatusError: the codec failed; the original content was retained.
	StatusError Status = "error"
)

// Entry records the outcome for one asset that passed the filter.
type Entry struct {
	Path         string
	OriginalSize int
	FinalSize    int
	Status       Status
}

// Ledger maps asset path to its outcome. It contains exactly one entry per
// asset that passed the filter, including skipped and errored ones, and is
// immutable once Run returns.
type Ledger map[string]Entry

// Summary holds batch-wide byte totals, derived on demand.
type Summary struct {
	Assets        int
	OriginalBytes int64
	FinalBytes    int64
}

// SavedBytes returns the total bytes shaved off across the batch.
func (s Summary) SavedBytes() int64 {
	return s.OriginalBytes - s.FinalBytes
}

// SavedPercent returns the overall saving as a percentage of the original
// total, or 0 for an empty batch.
func (s Summary) SavedPercent() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.SavedBytes()) / float64(s.OriginalBytes) * 100
}

// Summarize computes totals across all ledger entries.
func (l Ledger) Summarize() Summary {
	var s Summary
	for _, e := range l {
		s.Assets++
		s.OriginalBytes += int64(e.OriginalSize)
		s.FinalBytes += int64(e.FinalSize)
	}
	return s
}
