package cssweep

import (
	"io"
	"os"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to the text report.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	case "text", "":
		return OutputText
	default:
		// Invalid format, fall back to the default
		return OutputText
	}
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat, opts RenderOptions) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, report); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, report); err != nil {
			os.Stderr.WriteString("Error writing Markdown: " + err.Error() + "\n")
		}

	default:
		NewReporter(w, opts).PrintReport(report)
	}
}
