package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"chimbori.dev/imagepress/optimize"
)

func renderPlain(t *testing.T, ledger optimize.Ledger) string {
	t.Helper()
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var sb strings.Builder
	Render(&sb, ledger)
	return sb.String()
}

func TestRender(t *testing.T) {
	ledger := optimize.Ledger{
		"assets/hero.jpg": {Path: "assets/hero.jpg", OriginalSize: 1_000_000, FinalSize: 600_000, Status: optimize.StatusCompressed},
		"assets/icon.svg": {Path: "assets/icon.svg", OriginalSize: 2_000, FinalSize: 2_000, Status: optimize.StatusSkippedVector},
	}

	out := renderPlain(t, ledger)

	for _, expected := range []string{
		"assets/hero.jpg",
		"assets/icon.svg",
		"compressed",
		"skipped-vector",
		"TOTAL (2 assets)",
		"40.0%",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q:\n%s", expected, out)
		}
	}
}

func TestRender_SortedByPath(t *testing.T) {
	ledger := optimize.Ledger{
		"z.png": {Path: "z.png", OriginalSize: 10, FinalSize: 10, Status: optimize.StatusNoImprovement},
		"a.png": {Path: "a.png", OriginalSize: 10, FinalSize: 10, Status: optimize.StatusNoImprovement},
	}

	out := renderPlain(t, ledger)
	if strings.Index(out, "a.png") > strings.Index(out, "z.png") {
		t.Error("Expected rows sorted by path")
	}
}

func TestRender_EmptyLedger(t *testing.T) {
	out := renderPlain(t, optimize.Ledger{})
	if !strings.Contains(out, "TOTAL (0 assets)") {
		t.Errorf("Expected a totals row even for an empty batch:\n%s", out)
	}
}

func TestRender_NoSavingShowsDash(t *testing.T) {
	ledger := optimize.Ledger{
		"a.png": {Path: "a.png", OriginalSize: 10, FinalSize: 10, Status: optimize.StatusNoImprovement},
	}
	out := renderPlain(t, ledger)
	if !strings.Contains(out, "-") {
		t.Errorf("Expected a dash for zero saving:\n%s", out)
	}
}
