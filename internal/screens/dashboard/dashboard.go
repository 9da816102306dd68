// Package dashboard shows overall course progress and a bar per module.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/layout"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

// DashboardScreen renders a read-only progress report.
type DashboardScreen struct {
	summary      catalog.Summary
	modules      []catalog.Module
	scrollOffset int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New snapshots the catalog's progress.
func New(cat *catalog.Catalog) *DashboardScreen {
	return &DashboardScreen{
		summary: cat.Summarize(),
		modules: cat.Modules(),
	}
}

func (d *DashboardScreen) Init() tea.Cmd { return nil }

func (d *DashboardScreen) Title() string { return "Dashboard" }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if d.scrollOffset > 0 {
				d.scrollOffset--
			}
		case "down", "j":
			if d.scrollOffset < len(d.modules)-1 {
				d.scrollOffset++
			}
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(
		components.NewProgressBar("Overall", d.summary.OverallProgress/100, true, cw).View()))
	b.WriteString("\n\n")
	b.WriteString(d.renderStats())
	b.WriteString("\n\n")
	b.WriteString(theme.Section.PaddingLeft(2).Render("Modules"))
	b.WriteString("\n")

	header := strings.Count(b.String(), "\n")
	rows := max(height-header-1, 1)
	end := min(d.scrollOffset+rows, len(d.modules))
	for _, m := range d.modules[d.scrollOffset:end] {
		b.WriteString(d.renderModule(m, cw))
		b.WriteString("\n")
	}
	if end < len(d.modules) {
		b.WriteString(theme.Hint.PaddingLeft(2).Render(fmt.Sprintf("… %d more", len(d.modules)-end)))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func (d *DashboardScreen) renderStats() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	score := "n/a"
	if d.summary.AverageScore != nil {
		score = fmt.Sprintf("%.1f%%", *d.summary.AverageScore)
	}
	return dim.Render("  Completed:      ") + val.Render(fmt.Sprintf("%d of %d", d.summary.Completed, d.summary.Total)) + "\n" +
		dim.Render("  Average score:  ") + val.Render(score)
}

// renderModule draws one module's icon, title and progress bar.
func (d *DashboardScreen) renderModule(m catalog.Module, cw int) string {
	const titleWidth = 36
	title := m.Title
	if r := []rune(title); len(r) > titleWidth {
		title = string(r[:titleWidth-1]) + "…"
	}
	label := fmt.Sprintf("%s %-*s", m.Status.Icon(), titleWidth, title)

	bar := components.NewProgressBar(label, float64(m.Progress)/100, true, cw)
	switch m.Status {
	case catalog.StatusCompleted:
		bar.Fill = theme.Success
	case catalog.StatusInProgress:
		bar.Fill = theme.ArcadeYellow
	}

	line := "  " + bar.View()
	if m.HasScore() {
		line += theme.StatusStyle(m.Status).Render(fmt.Sprintf("  score %d", *m.Score))
	}
	return line
}
