package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"shorter than max", "cat.png", 20, "cat.png"},
		{"exactly max", "cat.png", 7, "cat.png"},
		{"longer than max", "very-long-screenshot-name.png", 10, "very-long…"},
		{"max of one", "abc", 1, "…"},
		{"unbounded", "anything", 0, "anything"},
		{"multibyte safe", "日本語のファイル名.png", 5, "日本語の…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "NAME", Width: 10},
		{Header: "SIZE", Align: "right"},
	})
	table.AddRow([]string{"cat.png", "1.5 MB"})
	table.AddRow([]string{"dog.gif", "340 KB"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + separator + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "NAME") || !strings.Contains(lines[0], "SIZE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "cat.png") {
		t.Errorf("first row = %q", lines[2])
	}
}

func TestTableRenderTruncatesWideCells(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "NAME", MaxWidth: 12},
	})
	table.AddRow([]string{"a-ridiculously-long-original-filename.png"})

	out := table.Render()
	if !strings.Contains(out, "…") {
		t.Error("over-wide cell should be truncated with an ellipsis")
	}
	if strings.Contains(out, "a-ridiculously-long") {
		t.Error("full cell text should not survive truncation")
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := (&Table{}).Render(); out != "" {
		t.Errorf("empty table should render to empty string, got %q", out)
	}
}
