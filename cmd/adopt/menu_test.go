package main

import (
	"testing"

	"github.com/adoptai/cli/internal/catalog"
	"github.com/adoptai/cli/internal/installer"
)

func TestMenuOptionsMatchComponentEnumeration(t *testing.T) {
	valid := map[string]bool{"all": true, menuQuit: true}
	for _, name := range installer.Components {
		valid[name] = true
	}

	seen := map[string]bool{}
	for _, opt := range menuOptions {
		if !valid[opt.Value] {
			t.Fatalf("menu option %q is not a known component", opt.Value)
		}
		if seen[opt.Value] {
			t.Fatalf("menu option %q appears twice", opt.Value)
		}
		seen[opt.Value] = true
	}

	if !seen[menuQuit] {
		t.Fatal("menu has no quit option")
	}
	for _, name := range installer.Components {
		if !seen[name] {
			t.Fatalf("component %q is missing from the menu", name)
		}
	}
}

func TestStackDescriptionsCoverAllPresets(t *testing.T) {
	for _, id := range catalog.StackIDs {
		if stackDescriptions[id] == "" {
			t.Fatalf("stack preset %q has no menu description", id)
		}
	}
}
