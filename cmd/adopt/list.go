// Package main provides the catalog listing command.
package main

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/adoptai/cli/internal/catalog"
	"github.com/adoptai/cli/internal/ui"
)

// listCmd shows the live catalog of installable items.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the catalog of installable components",
	Long: `List every skill, agent, hook, rule document, and stack preset in the
distribution tree. The catalog is read live from the tree, so with
--source it reflects whatever is on disk right now.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	in, err := newInstaller()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	printSection("Skills", catalog.Skills, in.Source, true)
	printSection("Agents", catalog.Agents, in.Source, true)
	printSection("Hooks", catalog.Hooks, in.Source, false)
	printSection("Rules", catalog.Rules, in.Source, false)

	ui.PrintInfo("Stack presets")
	stacks := ui.NewTable("ID", "DESCRIPTION")
	for _, id := range catalog.StackIDs {
		stacks.AddRow(id, stackDescriptions[id])
	}
	stacks.Render()
	ui.Println()

	return nil
}

// printSection lists one component's items as a table. Sections that fail
// to enumerate are reported and skipped; listing is best effort.
func printSection(title string, list func(fs.FS) ([]catalog.Entry, error), src fs.FS, withDesc bool) {
	entries, err := list(src)
	if err != nil {
		ui.PrintWarning("%s: %v", title, err)
		return
	}

	ui.PrintInfo("%s", title)
	if withDesc {
		table := ui.NewTable("NAME", "DESCRIPTION")
		for _, e := range entries {
			table.AddRow(e.Name, e.Description)
		}
		table.Render()
	} else {
		table := ui.NewTable("NAME")
		for _, e := range entries {
			table.AddRow(e.Name)
		}
		table.Render()
	}
	ui.Println()
}
