package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/screen"
	"github.com/abhisek/coursemap/internal/screens/coursemap"
	"github.com/abhisek/coursemap/internal/screens/dashboard"
	"github.com/abhisek/coursemap/internal/screens/history"
	"github.com/abhisek/coursemap/internal/screens/library"
	quizscreen "github.com/abhisek/coursemap/internal/screens/quiz"
	summarizerscreen "github.com/abhisek/coursemap/internal/screens/summarizer"
	"github.com/abhisek/coursemap/internal/store"
	"github.com/abhisek/coursemap/internal/summarizer"
	"github.com/abhisek/coursemap/internal/ui/components"
	"github.com/abhisek/coursemap/internal/ui/layout"
)

// Deps are the services the screens read from. Summarizer is nil when no
// LLM provider is configured; Quizzes and Events may be nil.
type Deps struct {
	Catalog    *catalog.Catalog
	Resources  *resources.Index
	Summarizer *summarizer.Service
	Quizzes    *quiz.Service
	Events     store.EventRepo
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	summary    catalog.Summary
	inProgress int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	inProgress := 0
	for _, m := range deps.Catalog.Modules() {
		if m.Status == catalog.StatusInProgress {
			inProgress++
		}
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{Label: "DASHBOARD", Action: push(func() screen.Screen {
			return dashboard.New(deps.Catalog)
		})},
		{Label: "COURSE MAP", Action: push(func() screen.Screen {
			return coursemap.New(deps.Catalog, deps.Resources, deps.Quizzes)
		})},
		{Label: "RESOURCE LIBRARY", Action: push(func() screen.Screen {
			return library.New(deps.Resources)
		})},
		{Label: "SUMMARIZER", Action: push(func() screen.Screen {
			return summarizerscreen.New(deps.Catalog, deps.Summarizer)
		})},
		{Label: "QUIZZES", Disabled: deps.Quizzes == nil || len(deps.Quizzes.List()) == 0, Action: push(func() screen.Screen {
			return quizscreen.NewList(deps.Quizzes)
		})},
		{Label: "HISTORY", Disabled: deps.Events == nil, Action: push(func() screen.Screen {
			return history.New(deps.Events)
		})},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		summary:    deps.Catalog.Summarize(),
		inProgress: inProgress,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and frame gaps.
	compact := layout.IsCompactHeight(height+8) || width < 100
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.summary, h.inProgress, cw, compact),
	}
	if h.deps.Summarizer == nil {
		sections = append(sections, renderLLMBanner(cw))
	}
	sections = append(sections, components.ArcadeMenu(
		h.menu.Labels(), h.menu.Selected, h.menu.DisabledSet(), cw, compact))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
