// Package report renders a finished batch ledger as a console table.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"chimbori.dev/imagepress/optimize"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	faint  = color.New(color.Faint).SprintFunc()
)

// Render writes the per-asset savings table plus a totals row, sorted by
// path so output is stable across runs.
func Render(w io.Writer, ledger optimize.Ledger) {
	paths := make([]string, 0, len(ledger))
	for path := range ledger {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		faint("FILE"), faint("ORIGINAL"), faint("OPTIMIZED"), faint("SAVED"), faint("STATUS"))

	for _, path := range paths {
		entry := ledger[path]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			path,
			humanize.Bytes(uint64(entry.OriginalSize)),
			humanize.Bytes(uint64(entry.FinalSize)),
			savedCell(entry),
			statusCell(entry.Status))
	}

	summary := ledger.Summarize()
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
		faint(fmt.Sprintf("TOTAL (%d assets)", summary.Assets)),
		humanize.Bytes(uint64(summary.OriginalBytes)),
		humanize.Bytes(uint64(summary.FinalBytes)),
		fmt.Sprintf("%.1f%%", summary.SavedPercent()))
	tw.Flush()
}

// Print renders the ledger to stdout.
func Print(ledger optimize.Ledger) {
	Render(os.Stdout, ledger)
}

func savedCell(entry optimize.Entry) string {
	saved := entry.OriginalSize - entry.FinalSize
	if saved <= 0 {
		return "-"
	}
	percent := float64(saved) / float64(entry.OriginalSize) * 100
	return green(fmt.Sprintf("%.1f%%", percent))
}

func statusCell(status optimize.Status) string {
	switch status {
	case optimize.StatusCompressed:
		return green(string(status))
	case optimize.StatusError:
		return red(string(status))
	case optimize.StatusNoImprovement:
		return yellow(string(status))
	default:
		return faint(string(status))
	}
}
