package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"pxl/internal/core/domain"
	"pxl/internal/core/services"
	"pxl/pkg/chart"
	"pxl/pkg/ui"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Launch the interactive usage dashboard (alias: dash)",
	Long: `Launch a full-screen dashboard with live usage stats, the
uploads-over-time chart and a searchable file list.

Keyboard Shortcuts:
  Navigation:
    ↑/k         Move up
    ↓/j         Move down

  Views:
    1-4         Switch chart window (24h, 7d, 14d, 30d)
    /           Search files
    Esc         Clear search / Exit search mode

  Actions:
    r           Refresh data from the backend
    d           Delete the selected file

  General:
    q           Quit dashboard
    Ctrl+C      Force quit`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	result, err := registry.Fetch(getContext())
	if err != nil {
		return fmt.Errorf("failed to load files: %w", err)
	}

	m := newDashboardModel(result.Files, result.Degraded)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}

// Dashboard view modes
type dashMode int

const (
	dashBrowse dashMode = iota
	dashSearch
	dashConfirmDelete
)

type dashKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Search  key.Binding
	Refresh key.Binding
	Delete  key.Binding
	Quit    key.Binding
}

func (k dashKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Refresh, k.Delete, k.Quit}
}

func (k dashKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var dashKeys = dashKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type dashboardModel struct {
	files    []domain.FileRecord
	filtered []domain.FileRecord
	degraded bool
	window   domain.Window
	cursor   int
	mode     dashMode

	searchInput textinput.Model
	help        help.Model
	width       int
	height      int
	status      string
}

// messages produced by background commands
type dashReloadMsg struct {
	files    []domain.FileRecord
	degraded bool
	err      error
}

type dashDeleteMsg struct{ err error }

func newDashboardModel(files []domain.FileRecord, degraded bool) dashboardModel {
	input := textinput.New()
	input.Placeholder = "search files..."
	input.Prompt = "/ "
	input.CharLimit = 64

	m := dashboardModel{
		files:       files,
		degraded:    degraded,
		window:      domain.Window7d,
		searchInput: input,
		help:        help.New(),
	}
	m.applyFilter()
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m *dashboardModel) applyFilter() {
	filtered, err := services.FilterAndSort(m.files, services.GalleryRequest{
		Search: m.searchInput.Value(),
	})
	if err != nil {
		filtered = m.files
	}
	m.filtered = filtered
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func reloadCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := registry.Fetch(getContext())
		if err != nil {
			return dashReloadMsg{err: err}
		}
		return dashReloadMsg{files: result.Files, degraded: result.Degraded}
	}
}

func deleteCmdFor(id int64) tea.Cmd {
	return func() tea.Msg {
		return dashDeleteMsg{err: fileService.Delete(getContext(), id)}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashReloadMsg:
		if msg.err != nil {
			m.status = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.files = msg.files
		m.degraded = msg.degraded
		m.status = "refreshed"
		m.applyFilter()
		return m, nil

	case dashDeleteMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "file deleted"
		return m, reloadCmd()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.mode {
		case dashSearch:
			switch msg.Type {
			case tea.KeyEsc:
				m.mode = dashBrowse
				m.searchInput.Blur()
				m.searchInput.SetValue("")
				m.applyFilter()
				return m, nil
			case tea.KeyEnter:
				m.mode = dashBrowse
				m.searchInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.applyFilter()
			return m, cmd

		case dashConfirmDelete:
			switch msg.String() {
			case "y":
				m.mode = dashBrowse
				if m.cursor < len(m.filtered) {
					return m, deleteCmdFor(m.filtered[m.cursor].ID)
				}
				return m, nil
			default:
				m.mode = dashBrowse
				m.status = "delete cancelled"
				return m, nil
			}
		}

		switch {
		case key.Matches(msg, dashKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dashKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, dashKeys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case key.Matches(msg, dashKeys.Search):
			m.mode = dashSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		case key.Matches(msg, dashKeys.Refresh):
			m.status = "refreshing..."
			return m, reloadCmd()
		case key.Matches(msg, dashKeys.Delete):
			if len(m.filtered) > 0 {
				m.mode = dashConfirmDelete
			}
		default:
			switch msg.String() {
			case "1":
				m.window = domain.Window24h
			case "2":
				m.window = domain.Window7d
			case "3":
				m.window = domain.Window14d
			case "4":
				m.window = domain.Window30d
			}
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	now := time.Now()
	summary := services.Aggregate(m.files, now)

	if m.degraded {
		b.WriteString(ui.FormatBanner("Backend unreachable, showing sample data"))
		b.WriteString("\n")
	}

	header := fmt.Sprintf("%d files   %d today   %.2f / %d MB (%.1f%%)",
		summary.TotalFiles, summary.TodayCount,
		summary.UsedMB, services.QuotaMB, summary.UsedPercent())
	b.WriteString(ui.StyleHeader.Render(header))
	b.WriteString("\n\n")

	// Chart pane sized to the terminal, leaving room for the list.
	chartHeight := m.height / 2
	if chartHeight > 16 {
		chartHeight = 16
	}
	if chartHeight >= 8 {
		buckets := services.Bin(m.files, m.window, now)
		opts := chart.DefaultLineOptions(m.window)
		if m.width < opts.Width {
			opts.Width = m.width
		}
		opts.Height = chartHeight
		b.WriteString(chart.RenderLine(buckets, opts).Render())
		b.WriteString("\n")
	}

	if m.mode == dashSearch {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	// File list fills whatever height is left.
	listHeight := m.height - lipgloss.Height(b.String()) - 3
	if listHeight < 1 {
		listHeight = 1
	}
	offset := 0
	if m.cursor >= listHeight {
		offset = m.cursor - listHeight + 1
	}
	for i := offset; i < len(m.filtered) && i < offset+listHeight; i++ {
		f := m.filtered[i]
		line := fmt.Sprintf("%s  %s  %s",
			ui.Truncate(f.OriginalName, 32),
			domain.FormatSize(f.FileSize),
			f.DisplayDate())
		if i == m.cursor {
			b.WriteString(ui.StylePrimary.Render("> " + line))
		} else {
			b.WriteString("  " + ui.StyleMuted.Render(line))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(ui.StyleMuted.Render("  no files match"))
		b.WriteString("\n")
	}

	// Footer
	switch m.mode {
	case dashConfirmDelete:
		if m.cursor < len(m.filtered) {
			b.WriteString(ui.StyleError.Render(
				fmt.Sprintf("Delete %s? (y/n)", m.filtered[m.cursor].OriginalName)))
		}
	default:
		if m.status != "" {
			b.WriteString(ui.StyleSubtle.Render(m.status) + "  ")
		}
		b.WriteString(m.help.View(dashKeys))
	}

	return b.String()
}
