package cssweep

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ReferenceSet is the aggregate collection of stylesheet basenames
// mentioned inside any scanned HTML file's text. All entries are
// lowercased.
type ReferenceSet map[string]struct{}

// Add records a basename in the set (lowercased)
func (r ReferenceSet) Add(name string) {
	r[strings.ToLower(name)] = struct{}{}
}

// Contains reports whether the basename is in the set
func (r ReferenceSet) Contains(name string) bool {
	_, ok := r[strings.ToLower(name)]
	return ok
}

// cssNameRegex finds any substring ending in ".css". The character
// class doubles as the delimiter boundary: quotes, parentheses,
// whitespace and semicolons all terminate a match, which is what picks
// references out of <link href="...">, @import statements and inline
// script string literals alike. Path separators are excluded on
// purpose: matching is filename-only, so hrefs keep counting even when
// their declared paths don't line up with the real folder layout.
var cssNameRegex = regexp.MustCompile(`(?i)[\w.-]+\.css`)

// ExtractReferences reads every page and collects the stylesheet
// basenames its text mentions. An unreadable page is reported as a
// warning and skipped; it never aborts the run.
func ExtractReferences(pages []string, verbose bool) (ReferenceSet, []string) {
	refs := make(ReferenceSet)
	var warnings []string

	for _, page := range pages {
		content, err := os.ReadFile(page)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping unreadable page %s: %v", page, err))
			continue
		}

		found := extractFromText(content, refs)
		if verbose && found > 0 {
			fmt.Printf("%s references %d stylesheet name(s)\n", page, found)
		}
	}

	return refs, warnings
}

// extractFromText scans raw bytes for .css tokens and adds their
// basenames to refs. Returns the number of matches seen. Content is
// scanned as-is; invalid UTF-8 can't break a byte-level regex scan.
func extractFromText(content []byte, refs ReferenceSet) int {
	matches := cssNameRegex.FindAll(content, -1)
	for _, m := range matches {
		// The regex can't match path separators, but dots can smuggle
		// in relative segments like "..", so take the base anyway.
		refs.Add(filepath.Base(string(m)))
	}
	return len(matches)
}

// ChaseImports expands refs with @import targets found inside
// referenced stylesheets, iterating until no new names appear. A
// stylesheet is only lexed once it is itself referenced, so imports
// propagate reachability rather than inventing it. Unreadable
// stylesheets are warned about and skipped.
func ChaseImports(sheets []Stylesheet, refs ReferenceSet, verbose bool) []string {
	var warnings []string
	lexed := make(map[string]bool)

	for {
		progressed := false

		for _, sheet := range sheets {
			if lexed[sheet.Path] || !refs.Contains(sheet.Basename) {
				continue
			}
			lexed[sheet.Path] = true
			progressed = true

			content, err := os.ReadFile(sheet.Path)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping unreadable stylesheet %s: %v", sheet.Path, err))
				continue
			}

			for _, name := range importTargets(content) {
				if !refs.Contains(name) {
					refs.Add(name)
					if verbose {
						fmt.Printf("%s imports %s\n", sheet.Path, name)
					}
				}
			}
		}

		if !progressed {
			return warnings
		}
	}
}

// importTargets lexes CSS content and returns the basenames of .css
// files pulled in via @import rules. Handles both quoted strings and
// url() forms.
func importTargets(content []byte) []string {
	var targets []string

	lexer := css.NewLexer(parse.NewInputBytes(content))
	inImport := false

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just stop
			return targets
		}

		switch tt {
		case css.AtKeywordToken:
			inImport = strings.EqualFold(string(text), "@import")
		case css.SemicolonToken, css.LeftBraceToken:
			inImport = false
		case css.StringToken:
			if inImport {
				if name, ok := cssTarget(trimQuotes(string(text))); ok {
					targets = append(targets, name)
				}
			}
		case css.URLToken:
			if inImport {
				if name, ok := cssTarget(trimURL(string(text))); ok {
					targets = append(targets, name)
				}
			}
		}
	}
}

// cssTarget reduces an import target to a lowercased basename,
// rejecting anything that isn't a .css file (e.g. media-query imports
// of font URLs).
func cssTarget(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasSuffix(strings.ToLower(raw), ".css") {
		return "", false
	}
	// Normalize separators so Base works on url(foo/bar.css) targets
	raw = strings.ReplaceAll(raw, "\\", "/")
	if idx := strings.LastIndexByte(raw, '/'); idx >= 0 {
		raw = raw[idx+1:]
	}
	return strings.ToLower(raw), true
}

func trimQuotes(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// trimURL strips the url( ... ) wrapper and any inner quotes from a
// URLToken's text
func trimURL(s string) string {
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		s = s[4:]
	}
	s = strings.TrimSuffix(s, ")")
	return trimQuotes(strings.TrimSpace(s))
}
