package cssweep

// Stylesheet represents a CSS file discovered on disk
type Stylesheet struct {
	Path     string // Absolute path as discovered during the walk
	Basename string // Lowercased filename used for reference matching
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Candidate .css/.html files found by the walk
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files dropped by exclude patterns or gitignore
}

// Config holds scan configuration
type Config struct {
	Root          string   // Directory to scan (resolved to an absolute path)
	Excludes      []string // Doublestar glob patterns matched against root-relative paths
	UseGitignore  bool     // Skip paths matched by <root>/.gitignore
	FollowImports bool     // Chase @import chains inside referenced stylesheets
	Verbose       bool     // Per-file progress logging
}

// Report contains the full classification result for one run.
// Used and Unused partition the discovered stylesheet set: every
// stylesheet appears in exactly one of the two, sorted by path.
type Report struct {
	Root       string       // Absolute root that was scanned
	Used       []Stylesheet // Referenced by at least one HTML file
	Unused     []Stylesheet // Referenced nowhere
	References int          // Distinct stylesheet basenames found in HTML
	PagesRead  int          // HTML files whose content was scanned
	Stats      ScanStats
	Warnings   []string // Per-entry skip warnings and duplicate-basename notices
}

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputText renders the sectioned terminal report (default)
	OutputText OutputFormat = "text"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
