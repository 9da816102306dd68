package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all arcade sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

const buttonWidth = 24

// ArcadeMenu renders each item as a fixed-width button. compact drops the
// borders for short terminals.
func ArcadeMenu(labels []string, selected int, disabled map[int]bool, cw int, compact bool) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		lines = append(lines, arcadeButton(label, i == selected, disabled[i], compact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func arcadeButton(label string, selected, disabled, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	text := label
	switch {
	case disabled:
		style = style.Foreground(theme.TextDim)
	case selected:
		style = style.Bold(true).Foreground(theme.BgDark).Background(theme.ArcadeYellow)
		text = "▸ " + label
	}

	if compact {
		return style.Render(" " + text + " ")
	}

	border := theme.Border
	if selected && !disabled {
		border = theme.ArcadeYellow
	}
	return style.
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(text)
}
