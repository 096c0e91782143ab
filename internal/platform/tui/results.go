package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunResult is one finished run of the current session. Results live in
// memory only and are gone when the program exits.
type RunResult struct {
	Run   int
	Score int
	Ticks int
	Seed  int64
}

// ResultsPanel lists the session's runs, best first.
type ResultsPanel struct {
	results []RunResult
	table   table.Model
	width   int
	height  int
}

// NewResultsPanel creates an empty panel sized for the terminal.
func NewResultsPanel(width, height int) ResultsPanel {
	p := ResultsPanel{width: width, height: height}
	p.table = p.createTable()
	return p
}

// createTable creates a new table with appropriate columns.
func (p *ResultsPanel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Run", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Seed", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, p.height-8)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Add records a finished run.
func (p *ResultsPanel) Add(r RunResult) {
	p.results = append(p.results, r)
	p.updateTableRows()
}

// Len returns the number of recorded runs.
func (p *ResultsPanel) Len() int {
	return len(p.results)
}

// Best returns the highest score so far, or zero.
func (p *ResultsPanel) Best() int {
	best := 0
	for _, r := range p.results {
		best = max(best, r.Score)
	}
	return best
}

// Ranked returns the runs sorted by score, ties broken by the earlier run.
func (p *ResultsPanel) Ranked() []RunResult {
	ranked := slices.Clone(p.results)
	slices.SortStableFunc(ranked, func(a, b RunResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Run, b.Run)
	})
	return ranked
}

// SetSize rebuilds the table for a new terminal size.
func (p *ResultsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.table = p.createTable()
	p.updateTableRows()
}

func (p *ResultsPanel) updateTableRows() {
	ranked := p.Ranked()
	rows := make([]table.Row, len(ranked))
	for i, r := range ranked {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Run),
			formatTicks(r.Ticks),
			fmt.Sprintf("%d", r.Seed),
		}
	}
	p.table.SetRows(rows)
	p.table.GotoTop()
}

// Update passes scrolling keys to the table.
func (p ResultsPanel) Update(msg tea.Msg) (ResultsPanel, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// View renders the panel.
func (p ResultsPanel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SESSION RESULTS", p.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := p.table.View()
	if len(p.results) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		content = emptyStyle.Render("No runs finished yet.\nCrash into something first!")
	}
	b.WriteString(centerText(tableStyle.Render(content), p.width))

	return b.String()
}

// formatTicks renders a tick count as m:ss at 60 ticks per second.
func formatTicks(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// centerText centers every line of text within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
