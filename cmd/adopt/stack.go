// Package main provides the stack preset install command.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/catalog"
	"github.com/adoptai/cli/internal/ui"
)

// stackDescriptions is the menu blurb per stack preset id.
var stackDescriptions = map[string]string{
	"typescript": "Strict-mode TypeScript rules and npm/vitest permissions",
	"python":     "Typed Python rules and pytest/ruff/uv permissions",
	"go":         "Go rules (gofmt, errors, context) and go toolchain permissions",
	"rust":       "Rust rules (clippy, unsafe policy) and cargo permissions",
	"ruby":       "Ruby rules (RuboCop, RSpec) and bundler permissions",
	"elixir":     "Elixir rules (mix format, OTP) and mix permissions",
}

// stackCmd installs a language stack preset.
var stackCmd = &cobra.Command{
	Use:   "stack [id]",
	Short: "Install a language stack preset",
	Long: `Install a language stack preset: a rule document installed under a
stack-qualified name, plus the stack's settings file.

With no id the preset is chosen interactively. The settings file is the
only thing adopt will ever overwrite, and only after you confirm it.

Available presets: typescript, python, go, rust, ruby, elixir.

EXAMPLES:
  adopt stack            # Pick a preset interactively
  adopt stack go
  adopt stack rust --yes # Overwrite existing settings without asking`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStack,
}

func runStack(cmd *cobra.Command, args []string) error {
	id := ""
	if len(args) == 1 {
		id = strings.TrimSpace(args[0])
	} else {
		picked, err := pickStack()
		if err != nil {
			ui.PrintError("%v", err)
			return fmt.Errorf("no stack selected")
		}
		id = picked
	}

	in, err := newInstaller()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	rep, err := in.InstallStack(id)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("cannot install stack %q", id)
	}

	printReport(rep)
	return reportError(rep)
}

// pickStack prompts for a stack preset from the fixed list.
func pickStack() (string, error) {
	options := make([]ui.SelectOption, 0, len(catalog.StackIDs))
	for _, id := range catalog.StackIDs {
		options = append(options, ui.SelectOption{
			Label:       id,
			Value:       id,
			Description: stackDescriptions[id],
		})
	}

	_, id, err := ui.Select("Which stack preset?", options)
	if err != nil {
		return "", fmt.Errorf("stack selection aborted: %w", err)
	}
	return id, nil
}
