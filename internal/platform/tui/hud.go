package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neondrive/internal/core"
	"github.com/vovakirdan/neondrive/internal/engine"
)

// Rows reserved above and below the road for the status bar and help line.
const (
	statusRows = 1
	helpRows   = 1
	chromeRows = statusRows + helpRows
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorEdge))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorDim))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorHUD))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = map[engine.Phase]lipgloss.Style{
		engine.PhaseIdle:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		engine.PhaseRunning: lipgloss.NewStyle().Foreground(lipgloss.Color("#34d399")),
		engine.PhaseOver:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorAlert)),
	}
)

// statusLabel is the text shown for each phase.
func statusLabel(p engine.Phase) string {
	switch p {
	case engine.PhaseRunning:
		return "RACING"
	case engine.PhaseOver:
		return "CRASHED"
	default:
		return "READY"
	}
}

// hudInfo is what the status bar shows.
type hudInfo struct {
	Phase engine.Phase
	Score float64
	Speed float64
	Best  int
	Steer string
	Width int
}

// steerIndicator shows which steer keys are currently held.
func steerIndicator(s *core.Steering) string {
	left, right := " ", " "
	if s.Held(core.ActionSteerLeft) {
		left = "◀"
	}
	if s.Held(core.ActionSteerRight) {
		right = "▶"
	}
	return left + right
}

// statusBar renders the single line above the road.
func statusBar(h hudInfo) string {
	left := titleStyle.Render("NEON NIGHT DRIVE")
	fields := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("  score "), valueStyle.Render(fmt.Sprintf("%06d", int(h.Score))),
		labelStyle.Render("  speed "), valueStyle.Render(fmt.Sprintf("%4.1f", h.Speed)),
		labelStyle.Render("  best "), valueStyle.Render(fmt.Sprintf("%d", h.Best)),
	)
	status := statusStyle[h.Phase].Render("[" + statusLabel(h.Phase) + "]")

	line := lipgloss.JoinHorizontal(lipgloss.Top, left, fields, "  ", status, " ", valueStyle.Render(h.Steer))
	return lipgloss.NewStyle().MaxWidth(max(1, h.Width)).Render(line)
}

// drawReady draws the start prompt over the idle road.
func drawReady(dst *core.Screen) {
	lines := []string{
		"NEON NIGHT DRIVE",
		"",
		"steer with ←/→ or a/d",
		"or click the left/right half",
		"",
		"press enter to start",
	}
	drawPanel(dst, lines, core.ColorEdge)
}

// drawGameOver draws the final score over the last frame.
func drawGameOver(dst *core.Screen, score float64, best int) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("final score %d", int(score)),
	}
	if int(score) >= best && best > 0 {
		lines = append(lines, "new session best!")
	} else {
		lines = append(lines, fmt.Sprintf("session best %d", best))
	}
	lines = append(lines, "", "enter to race again, r for the start screen")
	drawPanel(dst, lines, core.ColorAlert)
}

// drawTooSmall is shown when the terminal cannot hold a road.
func drawTooSmall(dst *core.Screen) {
	dst.Clear()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "terminal too small", core.ColorAlert)
	dst.DrawTextCentered(y, "enlarge the window", core.ColorDim)
}

// drawPanel draws a boxed, cleared block of centred lines.
func drawPanel(dst *core.Screen, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewCellRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, l := range lines {
		color := core.ColorLight
		if i == 0 {
			color = c
		}
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
