package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssweep.yaml config file",
	Long:  `Create a .cssweep.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssweep.yaml"); err == nil && !force {
			return fmt.Errorf(".cssweep.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssweep.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssweep.yaml")
		return nil
	},
}

const defaultConfig = `# cssweep configuration
# Docs: https://github.com/yacobolo/cssweep

# Shared settings
verbose: false

# Scan settings
scan:
  exclude: []              # glob patterns relative to root, e.g. "node_modules/**"
  gitignore: false         # skip paths matched by the root's .gitignore
  css-imports: false       # chase @import chains inside referenced stylesheets
  strict: false            # exit 1 when unused stylesheets are found
  output-format: text      # text | json | markdown
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
