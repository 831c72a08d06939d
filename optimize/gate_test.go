package optimize

import (
	"bytes"
	"testing"
)

func TestDecide_SmallerCandidateAccepted(t *testing.T) {
	original := make([]byte, 1000)
	candidate := make([]byte, 600)

	accepted, finalSize, status := Decide(original, candidate)
	if status != StatusCompressed {
		t.Errorf("Expected status %q, got %q", StatusCompressed, status)
	}
	if finalSize != 600 {
		t.Errorf("Expected final size 600, got %d", finalSize)
	}
	if !bytes.Equal(accepted, candidate) {
		t.Error("Expected the candidate bytes to be accepted")
	}
}

func TestDecide_EqualSizeRetainsOriginal(t *testing.T) {
	original := []byte("original")
	candidate := []byte("differnt") // Same length, different content.

	accepted, finalSize, status := Decide(original, candidate)
	if status != StatusNoImprovement {
		t.Errorf("Expected status %q, got %q", StatusNoImprovement, status)
	}
	if finalSize != len(original) {
		t.Errorf("Expected final size %d, got %d", len(original), finalSize)
	}
	if !bytes.Equal(accepted, original) {
		t.Error("Expected the original bytes to be retained")
	}
}

func TestDecide_LargerCandidateRetainsOriginal(t *testing.T) {
	original := make([]byte, 500)
	candidate := make([]byte, 700)

	accepted, finalSize, status := Decide(original, candidate)
	if status != StatusNoImprovement {
		t.Errorf("Expected status %q, got %q", StatusNoImprovement, status)
	}
	if finalSize != 500 {
		t.Errorf("Expected final size 500, got %d", finalSize)
	}
	if !bytes.Equal(accepted, original) {
		t.Error("Expected the original bytes to be retained")
	}
}

func TestDecide_Idempotent(t *testing.T) {
	original := make([]byte, 1000)
	candidate := make([]byte, 999)

	first, firstSize, firstStatus := Decide(original, candidate)
	second, secondSize, secondStatus := Decide(original, candidate)

	if firstStatus != secondStatus || firstSize != secondSize || !bytes.Equal(first, second) {
		t.Error("Expected Decide to yield the same decision for the same pair")
	}
}
