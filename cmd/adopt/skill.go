// Package main provides the single-skill install command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/ui"
)

// skillCmd installs one named skill.
var skillCmd = &cobra.Command{
	Use:   "skill <name>",
	Short: "Install one named skill",
	Long: `Install a single skill by name.

The name must match a skill directory in the distribution tree; run
'adopt list' to see what is available. Names containing path separators
or parent-directory sequences are rejected.

EXAMPLES:
  adopt skill code-review
  adopt skill debug-session --target ../app`,
	Args: cobra.ExactArgs(1),
	RunE: runSkill,
}

// runSkill validates the name, looks it up in the live catalog, and
// installs the skill directory.
func runSkill(cmd *cobra.Command, args []string) error {
	in, err := newInstaller()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	outcome, err := in.InstallSkill(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("cannot install skill %q", args[0])
	}

	printOutcome(outcome)
	return nil
}
