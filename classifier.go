package cssweep

import (
	"fmt"
	"sort"
	"strings"
)

// Classify partitions the stylesheet set against the reference set.
// Every stylesheet lands in exactly one of Used or Unused; both lists
// are sorted by path so two runs over an unchanged tree produce
// identical reports. Pure function of its inputs.
func Classify(root string, sheets []Stylesheet, refs ReferenceSet) *Report {
	report := &Report{
		Root:       root,
		References: len(refs),
	}

	for _, sheet := range sheets {
		if refs.Contains(sheet.Basename) {
			report.Used = append(report.Used, sheet)
		} else {
			report.Unused = append(report.Unused, sheet)
		}
	}

	sortByPath(report.Used)
	sortByPath(report.Unused)

	report.Warnings = append(report.Warnings, duplicateBasenameWarnings(sheets)...)

	return report
}

func sortByPath(sheets []Stylesheet) {
	sort.Slice(sheets, func(i, j int) bool {
		return sheets[i].Path < sheets[j].Path
	})
}

// duplicateBasenameWarnings flags basenames shared by multiple
// stylesheets. Filename-only matching classifies all copies together
// when any one of them is referenced, so the ambiguity is surfaced
// instead of silently resolved.
func duplicateBasenameWarnings(sheets []Stylesheet) []string {
	byName := make(map[string][]string)
	for _, sheet := range sheets {
		byName[sheet.Basename] = append(byName[sheet.Basename], sheet.Path)
	}

	names := make([]string, 0, len(byName))
	for name, paths := range byName {
		if len(paths) > 1 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	warnings := make([]string, 0, len(names))
	for _, name := range names {
		paths := byName[name]
		sort.Strings(paths)
		warnings = append(warnings, fmt.Sprintf(
			"duplicate basename %q - matched as one file: %s",
			name, strings.Join(paths, ", ")))
	}

	return warnings
}
