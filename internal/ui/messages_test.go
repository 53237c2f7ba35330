package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPadRightUsesDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
	}{
		{name: "ascii", input: "skills", width: 12},
		{name: "accented", input: "résumé-check", width: 16},
		{name: "cjk", input: "コード確認", width: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.width)
			if w := lipgloss.Width(got); w != tt.width {
				t.Fatalf("padRight(%q, %d) display width = %d, want %d", tt.input, tt.width, w, tt.width)
			}
		})
	}
}

func TestPadRightLeavesWideStringsAlone(t *testing.T) {
	in := "a-name-longer-than-the-column"
	if got := padRight(in, 4); got != in {
		t.Fatalf("padRight(%q, 4) = %q, want unchanged", in, got)
	}
}

func TestColumnWidthsUseDisplayWidth(t *testing.T) {
	tbl := NewTable("NAME", "DESCRIPTION")
	tbl.AddRow("planner", "Plans work")
	tbl.AddRow("レビュー", "Reviews diffs before commit")

	widths := tbl.columnWidths()
	if len(widths) != 2 {
		t.Fatalf("columnWidths() returned %d columns, want 2", len(widths))
	}
	// "レビュー" renders as 8 cells, wider than "planner" (7).
	if widths[0] != lipgloss.Width("レビュー") {
		t.Fatalf("name column width = %d, want %d", widths[0], lipgloss.Width("レビュー"))
	}
	if widths[1] != len("Reviews diffs before commit") {
		t.Fatalf("description column width = %d, want %d", widths[1], len("Reviews diffs before commit"))
	}
}
