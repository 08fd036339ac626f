// Package dashboard renders live per-difficulty progress while the
// driver runs, the same table the original program painted every
// ~100 ms, done here as a bubbletea.Model instead of raw terminal
// escapes.
package dashboard

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mossforge/game-forge/internal/driver"
)

const tickInterval = 100 * time.Millisecond

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Model polls a Driver's published stats on every tick and renders a
// fixed-width progress table. It never touches driver internals
// directly — Driver.Snapshot is the only coupling.
type Model struct {
	driver    *driver.Driver
	interrupt func()
	done      bool
}

// New returns a dashboard watching d. interrupt is called, in addition
// to quitting the dashboard view, when the user presses Ctrl-C from
// inside the alt screen — where a raw-mode Ctrl-C arrives as a
// tea.KeyMsg and never reaches os/signal.Notify. q and esc never call
// it. A nil interrupt is fine; Ctrl-C then only quits the view.
func New(d *driver.Driver, interrupt func()) Model {
	return Model{driver: d, interrupt: interrupt}
}

func (m Model) Init() tea.Cmd { return tickCmd() }

// Done reports whether the user asked to quit the dashboard. Quitting
// with q or esc only stops watching the driver, which keeps running;
// Ctrl-C also calls the interrupt callback, if one was given.
func (m Model) Done() bool { return m.done }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tickCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.interrupt != nil {
				m.interrupt()
			}
			m.done = true
			return m, tea.Quit
		case "q", "esc":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	views := m.driver.Snapshot()
	keys := make([]string, 0, len(views))
	for k := range views {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows []string
	rows = append(rows, headerStyle.Render(
		fmt.Sprintf("%-28s %-9s %8s %8s %8s %10s", "DIFFICULTY", "STATUS", "TARGET", "DONE", "FAILS", "ELAPSED")))

	for _, k := range keys {
		v := views[k]
		row := fmt.Sprintf("%-28s %-9s %8d %8d %8d %10s",
			k, v.Status, v.Target, v.Generated, v.Failures, elapsed(v))
		rows = append(rows, rowStyle(v.Status).Render(row))
	}

	if len(keys) == 0 {
		rows = append(rows, rowStyle(driver.Pending).Render("(no difficulty started yet)"))
	}

	rows = append(rows, "", footerStyle.Render("Q Quit dashboard (generation continues in the background)"))
	return strings.Join(rows, "\n")
}

func elapsed(v driver.StatsView) string {
	if v.Start.IsZero() {
		return "-"
	}
	end := v.End
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(v.Start).Round(time.Second).String()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func rowStyle(status driver.Status) lipgloss.Style {
	switch status {
	case driver.Done:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#00E632"))
	case driver.Running:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	}
}
