package cssweep

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	return &Report{
		Root: "/site",
		Used: []Stylesheet{
			{Path: "/site/css/main.css", Basename: "main.css"},
		},
		Unused: []Stylesheet{
			{Path: "/site/css/old/reset.css", Basename: "reset.css"},
		},
		References: 3,
		PagesRead:  2,
		Stats:      ScanStats{FilesDiscovered: 4, FilesScanned: 3, FilesSkipped: 1},
		Warnings:   []string{"skipping unreadable page /site/broken.html: permission denied"},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag     string
		expected OutputFormat
	}{
		{"", OutputText},
		{"text", OutputText},
		{"json", OutputJSON},
		{"markdown", OutputMarkdown},
		{"md", OutputMarkdown},
		{"bogus", OutputText},
	}

	for _, tt := range tests {
		t.Run("flag="+tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.flag))
		})
	}
}

func TestPrintReportSections(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, useColors: false}
	reporter.PrintReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "Scanned /site")
	assert.Contains(t, out, "Used stylesheets (1 file):")
	assert.Contains(t, out, "  /site/css/main.css")
	assert.Contains(t, out, "Unused stylesheets (1 file):")
	assert.Contains(t, out, "  /site/css/old/reset.css")
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "Done.")
}

func TestPrintReportEmptySections(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, useColors: false}
	reporter.PrintReport(&Report{Root: "/empty"})

	out := buf.String()
	assert.Contains(t, out, "Used stylesheets (0 files):")
	assert.Contains(t, out, "Unused stylesheets (0 files):")
	assert.Contains(t, out, "(none)")
	assert.NotContains(t, out, "Warnings:")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, "/site", output.Root)
	assert.Equal(t, 2, output.Summary.Stylesheets)
	assert.Equal(t, 2, output.Summary.PagesScanned)
	assert.Equal(t, 3, output.Summary.References)
	assert.Equal(t, 1, output.Summary.Used)
	assert.Equal(t, 1, output.Summary.Unused)
	assert.Equal(t, 1, output.Summary.FilesSkipped)
	assert.Equal(t, []string{"/site/css/main.css"}, output.Used)
	assert.Equal(t, []string{"/site/css/old/reset.css"}, output.Unused)
	assert.Len(t, output.Warnings, 1)
}

func TestWriteJSONEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &Report{Root: "/empty"}))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	// Empty lists serialize as [], not null
	assert.NotNil(t, output.Used)
	assert.NotNil(t, output.Unused)
	assert.NotNil(t, output.Warnings)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "# Stylesheet usage report")
	assert.Contains(t, out, "Root: `/site`")
	assert.Contains(t, out, "## Used stylesheets")
	assert.Contains(t, out, "- `/site/css/main.css`")
	assert.Contains(t, out, "## Unused stylesheets")
	assert.Contains(t, out, "- `/site/css/old/reset.css`")
	assert.Contains(t, out, "## Warnings")
}

func TestWriteMarkdownEmptySections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, &Report{Root: "/empty"}))

	out := buf.String()
	assert.Contains(t, out, "_(none)_")
	assert.NotContains(t, out, "## Warnings")
}

func TestWriteOutputDispatch(t *testing.T) {
	var buf bytes.Buffer
	WriteOutput(&buf, sampleReport(), OutputJSON, RenderOptions{})
	assert.True(t, json.Valid(buf.Bytes()))

	buf.Reset()
	WriteOutput(&buf, sampleReport(), OutputMarkdown, RenderOptions{})
	assert.Contains(t, buf.String(), "# Stylesheet usage report")
}
