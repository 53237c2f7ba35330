// Package main provides the whole-component install commands.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/ui"
)

// skillsCmd installs every skill from the distribution tree.
var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Install all skills",
	Long: `Install every skill from the distribution tree into the target
project's skills directory.

Skills already present are skipped, never overwritten.

EXAMPLES:
  adopt skills                # Install into ./.claude/skills/
  adopt skills --target ../app`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponent("skills")
	},
}

// agentsCmd installs every agent definition.
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Install all agents",
	Long: `Install every agent definition from the distribution tree into the
target project's agents directory.

Agents already present are skipped, never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponent("agents")
	},
}

// hooksCmd installs every hook script except the pre-commit review hook.
var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Install all hooks (except the pre-commit hook)",
	Long: `Install every hook script from the distribution tree into the target
project's hooks directory, with the executable bit set.

The pre-commit review hook goes into the git hooks directory instead;
install it with 'adopt precommit'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponent("hooks")
	},
}

// rulesCmd installs every rule document.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Install all rule documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runComponent("rules")
	},
}

// allCmd installs skills, agents, hooks, rules, and security in sequence.
var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Install skills, agents, hooks, rules, and security",
	Long: `Install the skills, agents, hooks, rules, and security components in
sequence. One component failing does not stop the rest; each component
reports its own outcomes.

The precommit and stack components are not part of all because they
need a git repository and a preset choice respectively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("invalid arguments")
		}

		reports := in.InstallAll()
		failedAll := true
		for _, rep := range reports {
			printReport(rep)
			ui.Println()
			if reportError(rep) == nil {
				failedAll = false
			}
		}
		if failedAll {
			ui.PrintError("every component failed")
			return errAllFailed
		}
		return nil
	},
}
