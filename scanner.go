package cssweep

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanResult holds everything collected by a single directory walk
type ScanResult struct {
	Stylesheets []Stylesheet // Every .css file, in discovery order
	Pages       []string     // Every .html/.htm file, in discovery order
	Stats       ScanStats
	Warnings    []string // Unreadable directories skipped during the walk
}

// scanner bundles the per-run filtering state so the walk callback
// stays readable
type scanner struct {
	root     string
	excludes []string
	ignorer  *ignore.GitIgnore
	verbose  bool
}

// Scan walks config.Root once and collects the complete stylesheet and
// page sets. Classification needs the whole candidate set up front, so
// nothing is streamed. An unreadable subdirectory produces a warning
// and is skipped; only a broken root fails the scan.
func Scan(config Config) (*ScanResult, error) {
	s := &scanner{
		root:     config.Root,
		excludes: config.Excludes,
		verbose:  config.Verbose,
	}

	if config.UseGitignore {
		s.ignorer = loadGitIgnore(config.Root)
	}

	result := &ScanResult{}

	err := filepath.WalkDir(config.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == config.Root {
				return err
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("skipping unreadable entry %s: %v", path, err))
			return nil
		}

		rel := s.relPath(path)

		if d.IsDir() {
			if path != config.Root && s.shouldSkipPath(rel, true) {
				return fs.SkipDir
			}
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".css":
			result.Stats.FilesDiscovered++
			if s.shouldSkipPath(rel, false) {
				result.Stats.FilesSkipped++
				return nil
			}
			result.Stats.FilesScanned++
			result.Stylesheets = append(result.Stylesheets, Stylesheet{
				Path:     path,
				Basename: strings.ToLower(filepath.Base(path)),
			})
			if s.verbose {
				fmt.Printf("found stylesheet %s\n", path)
			}
		case ".html", ".htm":
			result.Stats.FilesDiscovered++
			if s.shouldSkipPath(rel, false) {
				result.Stats.FilesSkipped++
				return nil
			}
			result.Stats.FilesScanned++
			result.Pages = append(result.Pages, path)
			if s.verbose {
				fmt.Printf("found page %s\n", path)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", config.Root, err)
	}

	return result, nil
}

// relPath returns the root-relative slash path used for pattern
// matching. Falls back to the input when Rel fails (never happens for
// paths produced by the walk itself).
func (s *scanner) relPath(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// shouldSkipPath determines if a path should be excluded from scanning.
//
// Two-layer filtering:
// 1. Exclude patterns (explicit): doublestar globs from configuration
// 2. Gitignore check: skip gitignored paths when enabled
func (s *scanner) shouldSkipPath(rel string, isDir bool) bool {
	for _, pattern := range s.excludes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
		if isDir {
			// Let "vendor/**" style patterns prune the directory itself
			if ok, err := doublestar.Match(pattern, rel+"/"); err == nil && ok {
				return true
			}
		}
	}

	if s.ignorer != nil && s.ignorer.MatchesPath(rel) {
		return true
	}

	return false
}

// loadGitIgnore compiles <root>/.gitignore.
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
