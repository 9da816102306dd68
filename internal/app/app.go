package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/screens/home"
	"github.com/abhisek/coursemap/internal/screens/welcome"
	"github.com/abhisek/coursemap/internal/ui/layout"
)

// Options configures the TUI. Logger may be nil.
type Options struct {
	home.Deps
	Logger *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	completed int
	total     int
	width     int
	height    int
}

// newAppModel starts on the splash, which hands over to the home screen.
func newAppModel(opts Options) AppModel {
	sum := opts.Catalog.Summarize()
	splash := welcome.New(func() screen.Screen { return home.New(opts.Deps) })
	return AppModel{
		router:    router.New(splash),
		completed: sum.Completed,
		total:     sum.Total,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.completed, m.total, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log.Info("tui started", "modules", opts.Catalog.Len(), "summarizer", opts.Summarizer != nil)

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		log.Error("tui failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	log.Info("tui exited")
	return nil
}
