package cssweep

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Root      string      `json:"root"`
	Summary   JSONSummary `json:"summary"`
	Used      []string    `json:"used"`
	Unused    []string    `json:"unused"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level scan counts
type JSONSummary struct {
	Stylesheets  int `json:"stylesheets"`
	PagesScanned int `json:"pages_scanned"`
	References   int `json:"references"`
	Used         int `json:"used"`
	Unused       int `json:"unused"`
	FilesSkipped int `json:"files_skipped"`
}

// WriteJSON writes the report as JSON
func WriteJSON(w io.Writer, report *Report) error {
	output := buildJSONOutput(report)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts a Report to the export schema
func buildJSONOutput(report *Report) JSONOutput {
	used := make([]string, len(report.Used))
	for i, sheet := range report.Used {
		used[i] = sheet.Path
	}

	unused := make([]string, len(report.Unused))
	for i, sheet := range report.Unused {
		unused[i] = sheet.Path
	}

	warnings := report.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Root:      report.Root,
		Summary: JSONSummary{
			Stylesheets:  len(report.Used) + len(report.Unused),
			PagesScanned: report.PagesRead,
			References:   report.References,
			Used:         len(report.Used),
			Unused:       len(report.Unused),
			FilesSkipped: report.Stats.FilesSkipped,
		},
		Used:     used,
		Unused:   unused,
		Warnings: warnings,
	}
}
