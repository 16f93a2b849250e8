package cssweep

import (
	"fmt"
	"io"
	"os"
)

// RenderOptions controls how the report is written
type RenderOptions struct {
	UseColors bool // Force color output; otherwise auto-detected
}

// Reporter handles formatting and writing the terminal report
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, opts RenderOptions) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(opts),
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(opts RenderOptions) bool {
	// Explicit flag wins
	if opts.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintReport writes the three-section report: header, used
// stylesheets, unused stylesheets, then warnings and a summary line.
func (r *Reporter) PrintReport(report *Report) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Scanned "+report.Root, r.useColors))

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen,
		fmt.Sprintf("Used stylesheets (%s):", pluralizeCount(len(report.Used), "file", "files")), r.useColors))
	r.printSheets(report.Used)

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow,
		fmt.Sprintf("Unused stylesheets (%s):", pluralizeCount(len(report.Unused), "file", "files")), r.useColors))
	r.printSheets(report.Unused)

	r.printWarnings(report.Warnings)

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "%d stylesheet(s) checked against %d reference(s) from %d page(s).\n",
		len(report.Used)+len(report.Unused), report.References, report.PagesRead)
	if report.Stats.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "%d file(s) skipped by filters.\n", report.Stats.FilesSkipped)
	}
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Done.", r.useColors))
}

func (r *Reporter) printSheets(sheets []Stylesheet) {
	if len(sheets) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "  (none)", r.useColors))
		return
	}
	for _, sheet := range sheets {
		fmt.Fprintf(r.w, "  %s\n", sheet.Path)
	}
}

func (r *Reporter) printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings:", r.useColors))
	for _, warning := range warnings {
		fmt.Fprintf(r.w, "  %s\n", warning)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
