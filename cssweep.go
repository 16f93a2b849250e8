// Package cssweep finds CSS files that no HTML file references.
//
// cssweep walks a directory tree, collects every stylesheet and every
// HTML page, extracts candidate stylesheet references from the raw HTML
// text, and classifies each stylesheet as used or unused by
// case-insensitive filename comparison.
//
// Matching is deliberately by filename only, ignoring paths. A reference
// like href="styles/main.css" marks any main.css in the tree as used,
// whether or not a styles/ directory exists. This keeps the tool honest
// against broken or relocated relative paths at the cost of false
// positives when two different stylesheets share a basename; cssweep
// warns when it detects that case rather than guessing.
//
// # Library usage
//
//	report, err := cssweep.Sweep(cssweep.Config{Root: "public"})
//	if err != nil {
//		return err
//	}
//	for _, sheet := range report.Unused {
//		fmt.Println(sheet.Path)
//	}
//
// # CLI Tool
//
// cssweep also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/cssweep/cmd/cssweep@latest
package cssweep
