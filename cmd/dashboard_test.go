package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pxl/internal/core/domain"
)

func createTestFiles(n int) []domain.FileRecord {
	files := make([]domain.FileRecord, n)
	for i := range files {
		files[i] = domain.FileRecord{
			ID:           int64(i + 1),
			Filename:     "abc.png",
			OriginalName: "file-" + string(rune('a'+i)) + ".png",
			FileType:     "image/png",
			FileSize:     1024,
			UploadDate:   "2026-03-15T10:00:00",
		}
	}
	return files
}

// TestDashboardModelInitialization tests that the dashboard model is initialized correctly
func TestDashboardModelInitialization(t *testing.T) {
	m := newDashboardModel(createTestFiles(2), false)

	if len(m.files) != 2 {
		t.Errorf("Expected 2 files, got %d", len(m.files))
	}
	if len(m.filtered) != 2 {
		t.Errorf("Expected 2 filtered files, got %d", len(m.filtered))
	}
	if m.cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", m.cursor)
	}
	if m.mode != dashBrowse {
		t.Errorf("Expected mode to be dashBrowse, got %v", m.mode)
	}
	if m.window != domain.Window7d {
		t.Errorf("Expected default window 7d, got %v", m.window)
	}
}

// TestDashboardNavigation tests cursor movement bounds
func TestDashboardNavigation(t *testing.T) {
	m := newDashboardModel(createTestFiles(3), false)

	// Down twice
	for i := 0; i < 2; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(dashboardModel)
	}
	if m.cursor != 2 {
		t.Errorf("Expected cursor at 2, got %d", m.cursor)
	}

	// Down at the bottom stays put
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(dashboardModel)
	if m.cursor != 2 {
		t.Errorf("Expected cursor to stay at 2, got %d", m.cursor)
	}

	// Up once
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(dashboardModel)
	if m.cursor != 1 {
		t.Errorf("Expected cursor at 1, got %d", m.cursor)
	}
}

// TestDashboardWindowKeys tests 1-4 switching the chart window
func TestDashboardWindowKeys(t *testing.T) {
	tests := []struct {
		keyRune  rune
		expected domain.Window
	}{
		{'1', domain.Window24h},
		{'2', domain.Window7d},
		{'3', domain.Window14d},
		{'4', domain.Window30d},
	}

	for _, tt := range tests {
		m := newDashboardModel(createTestFiles(1), false)
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.keyRune}})
		m = updated.(dashboardModel)
		if m.window != tt.expected {
			t.Errorf("key %q: window = %v, want %v", tt.keyRune, m.window, tt.expected)
		}
	}
}

// TestDashboardSearchFiltersList tests the search mode narrowing the list
func TestDashboardSearchFiltersList(t *testing.T) {
	m := newDashboardModel(createTestFiles(4), false)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m = updated.(dashboardModel)
	if m.mode != dashSearch {
		t.Fatalf("Expected search mode, got %v", m.mode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("file-b")})
	m = updated.(dashboardModel)
	if len(m.filtered) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(m.filtered))
	}
	if m.filtered[0].OriginalName != "file-b.png" {
		t.Errorf("Matched %q", m.filtered[0].OriginalName)
	}

	// Esc clears search and restores the full list
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(dashboardModel)
	if m.mode != dashBrowse {
		t.Errorf("Expected browse mode after esc, got %v", m.mode)
	}
	if len(m.filtered) != 4 {
		t.Errorf("Expected full list restored, got %d", len(m.filtered))
	}
}

// TestDashboardDeleteCancel tests that any key but y cancels delete
func TestDashboardDeleteCancel(t *testing.T) {
	m := newDashboardModel(createTestFiles(2), false)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m = updated.(dashboardModel)
	if m.mode != dashConfirmDelete {
		t.Fatalf("Expected confirm mode, got %v", m.mode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = updated.(dashboardModel)
	if m.mode != dashBrowse {
		t.Errorf("Expected browse mode after cancel, got %v", m.mode)
	}
	if !strings.Contains(m.status, "cancelled") {
		t.Errorf("status = %q", m.status)
	}
}

// TestDashboardViewShowsHeader tests the rendered stats header
func TestDashboardViewShowsHeader(t *testing.T) {
	m := newDashboardModel(createTestFiles(3), true)
	m.width = 80
	m.height = 30

	out := m.View()
	if !strings.Contains(out, "3 files") {
		t.Errorf("view should show the file count:\n%s", out)
	}
	if !strings.Contains(out, "sample data") {
		t.Error("degraded mode should show the sample data banner")
	}
}
