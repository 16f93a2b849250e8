package cssweep

import (
	"fmt"
	"io"
)

// WriteMarkdown writes the report as a shareable Markdown document
func WriteMarkdown(w io.Writer, report *Report) error {
	if _, err := fmt.Fprintf(w, "# Stylesheet usage report\n\nRoot: `%s`\n\n", report.Root); err != nil {
		return err
	}

	fmt.Fprintf(w, "| | Count |\n|---|---|\n")
	fmt.Fprintf(w, "| Stylesheets | %d |\n", len(report.Used)+len(report.Unused))
	fmt.Fprintf(w, "| Pages scanned | %d |\n", report.PagesRead)
	fmt.Fprintf(w, "| References found | %d |\n", report.References)
	fmt.Fprintf(w, "| Used | %d |\n", len(report.Used))
	fmt.Fprintf(w, "| Unused | %d |\n\n", len(report.Unused))

	writeMarkdownSection(w, "Used stylesheets", report.Used)
	writeMarkdownSection(w, "Unused stylesheets", report.Unused)

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "## Warnings\n\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "- %s\n", warning)
		}
		fmt.Fprintln(w, "")
	}

	return nil
}

func writeMarkdownSection(w io.Writer, title string, sheets []Stylesheet) {
	fmt.Fprintf(w, "## %s\n\n", title)
	if len(sheets) == 0 {
		fmt.Fprintf(w, "_(none)_\n\n")
		return
	}
	for _, sheet := range sheets {
		fmt.Fprintf(w, "- `%s`\n", sheet.Path)
	}
	fmt.Fprintln(w, "")
}
