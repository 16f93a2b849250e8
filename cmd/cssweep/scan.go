package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssweep"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root-directory]",
	Short: "Scan a directory tree and report unused CSS files",
	Long: `Collect every .css file under the root, extract stylesheet references
from every .html/.htm file's text, and report which stylesheets are
used and which are candidates for removal.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runScan(args)
	},
}

func init() {
	f := scanCmd.Flags()
	f.StringSlice("exclude", nil, "Glob patterns to skip, relative to root (e.g. 'node_modules/**')")
	f.Bool("gitignore", false, "Skip paths matched by the root's .gitignore")
	f.Bool("css-imports", false, "Count stylesheets pulled in via @import from referenced stylesheets as used")
	f.Bool("strict", false, "Exit 1 when unused stylesheets are found (CI mode)")
	f.String("output-format", "", "Output format: text|json|markdown (default: text)")
}

// runScan is shared between `cssweep scan` and the bare `cssweep` invocation.
func runScan(args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	report, err := cssweep.Sweep(buildScanConfig(root))
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		format := cssweep.DetermineOutputFormat(
			getStringWithFallback("output-format", "scan.output-format", "text"))
		opts := cssweep.RenderOptions{
			UseColors: getBoolWithFallback("color", "color", false),
		}
		cssweep.WriteOutput(os.Stdout, report, format, opts)
	}

	// Default exit code is 0 even with unused findings; strict mode is
	// the CI gate.
	strict := getBoolWithFallback("strict", "scan.strict", false)
	if strict && len(report.Unused) > 0 {
		if !quiet {
			fmt.Fprintf(os.Stderr, "\nStrict mode: %d unused stylesheet(s) found\n", len(report.Unused))
		}
		os.Exit(1)
	}

	return nil
}
