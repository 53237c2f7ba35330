package main

import (
	"io"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/adoptai/cli/internal/catalog"
	"github.com/adoptai/cli/internal/installer"
)

// captureStdout redirects os.Stdout, runs fn, and returns whatever was printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading pipe: %v", err)
	}
	return string(out)
}

func TestPrintSectionListsEntries(t *testing.T) {
	src := fstest.MapFS{
		"skills/alpha/SKILL.md": {Data: []byte("---\nname: alpha\ndescription: First skill\n---\n")},
		"skills/beta/SKILL.md":  {Data: []byte("---\nname: beta\ndescription: Second skill\n---\n")},
	}

	out := captureStdout(t, func() {
		printSection("Skills", catalog.Skills, src, true)
	})

	for _, want := range []string{"Skills", "alpha", "First skill", "beta"} {
		if !strings.Contains(out, want) {
			t.Errorf("section output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSectionTitleRendersVerbatim(t *testing.T) {
	src := fstest.MapFS{
		"rules/coding.md": {Data: []byte("# Coding\n")},
	}

	// A percent rune in the title must not be interpreted as a verb.
	out := captureStdout(t, func() {
		printSection("Rules (100% local)", catalog.Rules, src, false)
	})

	if !strings.Contains(out, "Rules (100% local)") {
		t.Fatalf("title not rendered verbatim:\n%s", out)
	}
	if strings.Contains(out, "%!") {
		t.Fatalf("title mangled by printf verb expansion:\n%s", out)
	}
}

func TestPrintReportShowsAdvisorySnippet(t *testing.T) {
	rep := installer.Report{
		Component: "security",
		Outcomes: []installer.Outcome{
			{Item: "settings.json", Dest: ".claude/settings.json", Status: installer.StatusSkipped,
				Note: "existing settings left untouched; merge the deny rules manually"},
		},
		AdvisorySnippet: `{
  "permissions": {
    "deny": ["Read(.env)"]
  }
}`,
	}

	out := captureStdout(t, func() {
		printReport(rep)
	})

	if !strings.Contains(out, "Read(.env)") {
		t.Fatalf("advisory deny rules not printed:\n%s", out)
	}
	if !strings.Contains(out, "Merge these deny rules") {
		t.Fatalf("advisory instruction not printed:\n%s", out)
	}
}
