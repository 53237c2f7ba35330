package main

import (
	"path/filepath"
	"testing"

	"github.com/adoptai/cli/internal/installer"
)

func withGlobalFlags(source, configDir string, yes bool, fn func()) {
	prevSource := flagSource
	prevDir := flagConfigDir
	prevYes := flagYes
	flagSource = source
	flagConfigDir = configDir
	flagYes = yes
	defer func() {
		flagSource = prevSource
		flagConfigDir = prevDir
		flagYes = prevYes
	}()
	fn()
}

func TestNewInstallerDefaultsToEmbeddedTree(t *testing.T) {
	withGlobalFlags("", "", false, func() {
		in, err := newInstaller()
		if err != nil {
			t.Fatalf("newInstaller() error = %v", err)
		}
		if in.ConfigDir != installer.DefaultConfigDir {
			t.Fatalf("ConfigDir = %q, want %q", in.ConfigDir, installer.DefaultConfigDir)
		}
		if in.Confirm == nil {
			t.Fatal("Confirm callback not wired")
		}
	})
}

func TestNewInstallerRejectsMissingSourceDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	withGlobalFlags(missing, "", false, func() {
		if _, err := newInstaller(); err == nil {
			t.Fatal("expected an error for a missing --source directory")
		}
	})
}

func TestNewInstallerHonorsConfigDirFlag(t *testing.T) {
	withGlobalFlags("", ".assistant", false, func() {
		in, err := newInstaller()
		if err != nil {
			t.Fatalf("newInstaller() error = %v", err)
		}
		if in.ConfigDir != ".assistant" {
			t.Fatalf("ConfigDir = %q, want .assistant", in.ConfigDir)
		}
	})
}

func TestConfirmOverwriteYesFlagSkipsPrompt(t *testing.T) {
	withGlobalFlags("", "", true, func() {
		if !confirmOverwrite("replace?") {
			t.Fatal("confirmOverwrite should answer yes when --yes is set")
		}
	})
}

func TestReportErrorOnlyWhenNothingSucceeded(t *testing.T) {
	partial := installer.Report{Component: "rules", Outcomes: []installer.Outcome{
		{Item: "a", Status: installer.StatusInstalled},
		{Item: "b", Status: installer.StatusFailed},
	}}
	if err := reportError(partial); err != nil {
		t.Fatalf("partial success must not be an error, got %v", err)
	}

	skipped := installer.Report{Component: "rules", Outcomes: []installer.Outcome{
		{Item: "a", Status: installer.StatusSkipped},
	}}
	if err := reportError(skipped); err != nil {
		t.Fatalf("all-skipped must not be an error, got %v", err)
	}

	failed := installer.Report{Component: "hooks", Outcomes: []installer.Outcome{
		{Item: "a", Status: installer.StatusFailed},
	}}
	if err := reportError(failed); err == nil {
		t.Fatal("total failure should be an error")
	}
}
