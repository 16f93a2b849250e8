package cssweep

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sweep is the main entry point: it runs the collect → extract →
// classify pipeline over config.Root and returns the full report.
// Per-file problems (unreadable directories, pages or stylesheets)
// surface as report warnings; only an invalid root returns an error.
func Sweep(config Config) (*Report, error) {
	root, err := resolveRoot(config.Root)
	if err != nil {
		return nil, err
	}
	config.Root = root

	// 1. Collect the complete stylesheet and page sets
	scan, err := Scan(config)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Found %d stylesheet(s) and %d page(s)\n", len(scan.Stylesheets), len(scan.Pages))
	}

	// 2. Build the reference set from every page's text
	refs, warnings := ExtractReferences(scan.Pages, config.Verbose)

	// 3. Optionally chase @import chains inside referenced stylesheets
	if config.FollowImports {
		warnings = append(warnings, ChaseImports(scan.Stylesheets, refs, config.Verbose)...)
	}

	// 4. Partition into used and unused
	report := Classify(root, scan.Stylesheets, refs)
	report.PagesRead = len(scan.Pages)
	report.Stats = scan.Stats
	report.Warnings = append(append(scan.Warnings, warnings...), report.Warnings...)

	return report, nil
}

// resolveRoot validates the scan root and normalizes it to an absolute
// path, so every reported stylesheet path is absolute too.
func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("invalid root %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("invalid root %s: not a directory", root)
	}

	return abs, nil
}
