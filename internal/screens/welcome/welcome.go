package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	pathEnd      = 800 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// pathNodes are drawn one at a time while the path animates in.
var pathNodes = []string{"start", "learn", "practice", "quiz", "done"}

type tickMsg time.Time

// WelcomeScreen draws the splash and replaces itself with the screen built by
// next once a key is pressed or the animation finishes.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// visibleNodes is how many path nodes are drawn at the current point of the
// animation.
func (w *WelcomeScreen) visibleNodes() int {
	if w.elapsed >= pathEnd {
		return len(pathNodes)
	}
	step := pathEnd / time.Duration(len(pathNodes))
	return int(w.elapsed/step) + 1
}

func (w *WelcomeScreen) View(width, height int) string {
	nodeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	edgeStyle := lipgloss.NewStyle().Foreground(theme.Border)

	n := w.visibleNodes()
	parts := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		if i > 0 {
			parts = append(parts, edgeStyle.Render(" ──▶ "))
		}
		parts = append(parts, nodeStyle.Render("["+pathNodes[i]+"]"))
	}

	sections := []string{strings.Join(parts, "")}

	if w.elapsed >= bannerAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Your course, one module at a time.")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
