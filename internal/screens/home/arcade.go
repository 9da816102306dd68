package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

const arcadeTitleFull = `┏━╸┏━┓╻ ╻┏━┓┏━┓┏━╸┏┳┓┏━┓┏━┓
┃  ┃ ┃┃ ┃┣┳┛┗━┓┣╸ ┃┃┃┣━┫┣━┛
┗━╸┗━┛┗━┛╹┗╸┗━┛┗━╸╹ ╹╹ ╹╹  `

const arcadeTitleCompact = "C · O · U · R · S · E · M · A · P"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the course totals in a bordered box matching
// content width.
func renderStatsBar(sum catalog.Summary, inProgress, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	activeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	score := dimStyle.Render("★ NO SCORES")
	if sum.AverageScore != nil {
		score = scoreStyle.Render(fmt.Sprintf("★ AVG %.0f%%", *sum.AverageScore))
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			doneStyle.Render(fmt.Sprintf("●%d/%d", sum.Completed, sum.Total)),
			activeStyle.Render(fmt.Sprintf("◐%d", inProgress)),
			score,
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			doneStyle.Render(fmt.Sprintf("● %d/%d DONE", sum.Completed, sum.Total)),
			activeStyle.Render(fmt.Sprintf("◐ %d ACTIVE", inProgress)),
			score,
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderLLMBanner renders a warning when no LLM provider is configured.
func renderLLMBanner(cw int) string {
	return theme.Warning.
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable summaries (see coursemap --help)")
}
