// Package main provides the interactive component menu shown when adopt
// is invoked without arguments.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/ui"
)

// menuQuit is the sentinel menu value for leaving without installing.
const menuQuit = "quit"

// menuOptions is the interactive menu, in display order.
var menuOptions = []ui.SelectOption{
	{Label: "Skills", Value: "skills", Description: "Reusable task playbooks"},
	{Label: "Agents", Value: "agents", Description: "Subagent definitions"},
	{Label: "Hooks", Value: "hooks", Description: "Automation scripts (format, lint, protect-env)"},
	{Label: "Rules", Value: "rules", Description: "Always-on rule documents"},
	{Label: "Pre-commit hook", Value: "precommit", Description: "Assistant-backed review before each commit"},
	{Label: "Security bundle", Value: "security", Description: "Bash validation hook, deny rules, settings"},
	{Label: "Stack preset", Value: "stack", Description: "Language-specific rules and settings"},
	{Label: "Everything", Value: "all", Description: "Skills, agents, hooks, rules, and security"},
	{Label: "Quit", Value: menuQuit},
}

// runMenu shows the component menu and dispatches exactly one selection.
// The menu is single-shot: after one install the process exits rather
// than looping back.
func runMenu(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		ui.PrintError("the interactive menu needs a terminal; run 'adopt --help' for direct commands")
		return fmt.Errorf("stdin is not a terminal")
	}

	ui.PrintInfo("What would you like to install?")
	ui.Println()

	_, choice, err := ui.Select("Components:", menuOptions)
	if err != nil {
		ui.PrintError("selection aborted: %v", err)
		return fmt.Errorf("no selection made")
	}

	return dispatchMenuChoice(cmd, choice)
}

// dispatchMenuChoice maps a menu value onto the same code path the
// corresponding subcommand runs.
func dispatchMenuChoice(cmd *cobra.Command, choice string) error {
	switch choice {
	case menuQuit:
		return nil
	case "all":
		return allCmd.RunE(cmd, nil)
	case "stack":
		return runStack(cmd, nil)
	default:
		return runComponent(choice)
	}
}
