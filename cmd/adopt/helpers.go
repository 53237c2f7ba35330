// Package main provides shared helpers for CLI commands.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adoptai/cli/assets"
	"github.com/adoptai/cli/internal/installer"
	"github.com/adoptai/cli/internal/ui"
)

// errAllFailed signals that no component in an aggregate run succeeded.
var errAllFailed = errors.New("every component failed")

// newInstaller builds an installer from the global flags. The source is
// the embedded distribution tree unless --source points at an on-disk one.
func newInstaller() (*installer.Installer, error) {
	var src fs.FS = assets.FS
	if flagSource != "" {
		info, err := os.Stat(flagSource)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("--source must be an existing directory: %s", flagSource)
		}
		src = os.DirFS(flagSource)
	}

	in := installer.New(src, flagTarget)
	if flagConfigDir != "" {
		in.ConfigDir = flagConfigDir
	}
	in.Confirm = confirmOverwrite
	return in, nil
}

// confirmOverwrite gates the stack-preset settings overwrite. --yes
// answers the prompt without asking.
func confirmOverwrite(prompt string) bool {
	if flagYes {
		return true
	}
	ok, err := ui.PromptConfirm(prompt, false)
	if err != nil {
		return false
	}
	return ok
}

// printReport prints one line per item outcome plus a summary. A security
// advisory snippet on the report is always shown, whether the component
// ran on its own or inside the all aggregate.
func printReport(rep installer.Report) {
	for _, o := range rep.Outcomes {
		printOutcome(o)
	}
	ui.PrintInfo("%s: %d installed, %d skipped, %d failed",
		rep.Component, rep.Installed(), rep.Skipped(), rep.Failed())

	if rep.AdvisorySnippet != "" {
		ui.Println()
		ui.PrintInfo("Your settings file already exists. Merge these deny rules into it:")
		ui.PrintBox("permissions.deny", rep.AdvisorySnippet)
	}
}

// printOutcome prints a single item outcome at the appropriate level.
// Already-existing destinations are warnings naming the conflicting path.
func printOutcome(o installer.Outcome) {
	switch o.Status {
	case installer.StatusInstalled:
		ui.PrintSuccess("Installed %s", o.Dest)
	case installer.StatusSkipped:
		ui.PrintWarning("Skipped %s (already exists)", o.Dest)
	case installer.StatusFailed:
		ui.PrintError("Failed %s: %v", o.Item, o.Err)
	}
	if o.Note != "" {
		ui.PrintDim("  %s", o.Note)
	}
}

// reportError converts a report into a command error when nothing in it
// succeeded. Partial success is not an error: per-item failures are
// already printed and must not abort the run.
func reportError(rep installer.Report) error {
	if len(rep.Outcomes) > 0 && rep.Failed() == len(rep.Outcomes) {
		return fmt.Errorf("%s: all items failed", rep.Component)
	}
	return nil
}

// runComponent is the shared RunE body for the whole-component commands.
// Detailed failures are printed here; the returned error stays terse
// because cobra echoes it once more.
func runComponent(name string) error {
	in, err := newInstaller()
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("invalid arguments")
	}

	rep, err := in.InstallComponent(name)
	if err != nil {
		ui.PrintError("%v", err)
		return fmt.Errorf("cannot install %s", name)
	}

	printReport(rep)
	return reportError(rep)
}
