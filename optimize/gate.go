package optimize

// Decide compares a re-encoded candidate against the original content and
// accepts the candidate only on strict size improvement. Pure and total; the
// same pair always yields the same decision.
func Decide(original, candidate []byte) (accepted []byte, finalSize int, status Status) {
	if len(candidate) < len(original) {
		return candidate, len(candidate), StatusCompressed
	}
	return original, len(original), StatusNoImprovement
}
