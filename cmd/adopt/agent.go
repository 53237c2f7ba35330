// Package main provides the single-agent install command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/ui"
)

// agentCmd installs one named agent.
var agentCmd = &cobra.Command{
	Use:   "agent <name>",
	Short: "Install one named agent",
	Long: `Install a single agent definition by name.

The name must match an agent file in the distribution tree; run
'adopt list' to see what is available. Names containing path separators
or parent-directory sequences are rejected.

EXAMPLES:
  adopt agent planner
  adopt agent reviewer --target ../app`,
	Args: cobra.ExactArgs(1),
	RunE: runAgent,
}

func runAgent(cmd *cobra.Command, args []string) error {
	in, err := newInstaller()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	outcome, err := in.InstallAgent(args[0])
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("cannot install agent %q", args[0])
	}

	printOutcome(outcome)
	return nil
}
