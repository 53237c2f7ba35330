package catalog

import (
	"testing"
	"testing/fstest"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"skills/beta/SKILL.md":       {Data: []byte("---\nname: beta\ndescription: Second skill.\n---\n# Beta\n")},
		"skills/alpha/SKILL.md":      {Data: []byte("---\nname: alpha\ndescription: First skill.\n---\n# Alpha\n")},
		"skills/broken/notes.md":     {Data: []byte("no SKILL.md here\n")},
		"agents/planner.md":          {Data: []byte("---\nname: planner\ndescription: Plans work.\n---\nbody\n")},
		"agents/bare.md":             {Data: []byte("no frontmatter\n")},
		"agents/readme.txt":          {Data: []byte("not an agent\n")},
		"hooks/format.sh":            {Data: []byte("#!/bin/sh\n")},
		"hooks/pre-commit-review.sh": {Data: []byte("#!/bin/sh\n")},
		"rules/coding.md":            {Data: []byte("# Coding\n")},
	}
}

func TestSkillsListsDirectoriesWithEntryPoint(t *testing.T) {
	entries, err := Skills(testSource())
	if err != nil {
		t.Fatalf("Skills() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d skills, want 2 (directories without SKILL.md are ignored)", len(entries))
	}
	// Sorted by name.
	if entries[0].Name != "alpha" || entries[1].Name != "beta" {
		t.Fatalf("skill order = %v", Names(entries))
	}
	if entries[0].Description != "First skill." {
		t.Fatalf("alpha description = %q", entries[0].Description)
	}
}

func TestAgentsParsesFrontmatterBestEffort(t *testing.T) {
	entries, err := Agents(testSource())
	if err != nil {
		t.Fatalf("Agents() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d agents, want 2 (non-.md files are ignored)", len(entries))
	}

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	if byName["planner"].Description != "Plans work." {
		t.Fatalf("planner description = %q", byName["planner"].Description)
	}
	if byName["bare"].Description != "" {
		t.Fatalf("file without frontmatter should have empty description, got %q", byName["bare"].Description)
	}
}

func TestHooksExcludesPreCommitHook(t *testing.T) {
	entries, err := Hooks(testSource())
	if err != nil {
		t.Fatalf("Hooks() error = %v", err)
	}

	for _, e := range entries {
		if e.Name == "pre-commit-review" {
			t.Fatal("pre-commit hook must not be part of the hooks component")
		}
	}
	if len(entries) != 1 {
		t.Fatalf("got %d hooks, want 1", len(entries))
	}
}

func TestSkillLookup(t *testing.T) {
	src := testSource()

	if _, ok := Skill(src, "alpha"); !ok {
		t.Fatal("Skill(alpha) not found")
	}
	if _, ok := Skill(src, "  alpha  "); !ok {
		t.Fatal("Skill lookup should trim whitespace")
	}
	if _, ok := Skill(src, "missing"); ok {
		t.Fatal("Skill(missing) unexpectedly found")
	}
}

func TestListingMissingDirFails(t *testing.T) {
	if _, err := Rules(fstest.MapFS{}); err == nil {
		t.Fatal("expected an error listing a missing rules directory")
	}
}

func TestParseDescription(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{name: "normal", data: "---\nname: x\ndescription: Does things.\n---\nbody", want: "Does things."},
		{name: "no frontmatter", data: "# Just markdown\n", want: ""},
		{name: "unterminated", data: "---\nname: x\n", want: ""},
		{name: "malformed yaml", data: "---\n: : :\n---\n", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseDescription([]byte(tc.data)); got != tc.want {
				t.Fatalf("parseDescription = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestIsStackID(t *testing.T) {
	for _, id := range StackIDs {
		if !IsStackID(id) {
			t.Fatalf("IsStackID(%q) = false", id)
		}
	}
	if IsStackID("cobol") {
		t.Fatal("IsStackID(cobol) = true")
	}
}
