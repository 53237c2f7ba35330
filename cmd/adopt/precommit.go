// Package main provides the pre-commit hook install command.
package main

import (
	"github.com/spf13/cobra"
)

// precommitCmd installs the pre-commit review hook into .git/hooks.
var precommitCmd = &cobra.Command{
	Use:   "precommit",
	Short: "Install the pre-commit review hook into .git/hooks",
	Long: `Install the assistant-backed review hook as .git/hooks/pre-commit.

The target must be a git repository. An existing pre-commit hook is kept
next to the new one under a .backup suffix, never deleted.

EXAMPLES:
  adopt precommit
  adopt precommit --target ../app`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponent("precommit")
	},
}
