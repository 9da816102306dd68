package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/screens/home"
	"github.com/abhisek/coursemap/internal/screens/library"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	cat, err := catalog.New(catalog.WithProgress(catalog.DefaultModules(), map[string]catalog.ProgressUpdate{
		"mppf": {Status: catalog.StatusCompleted, Progress: 100},
	}))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	idx, err := resources.New(resources.DefaultResources())
	if err != nil {
		t.Fatalf("resources.New: %v", err)
	}
	return Options{Deps: home.Deps{Catalog: cat, Resources: idx}}
}

func TestAppModel_TracksCompletionAndSize(t *testing.T) {
	m := newAppModel(testOptions(t))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	am := next.(AppModel)
	if am.completed != 1 || am.total != 5 {
		t.Errorf("completed = %d/%d, want 1/5", am.completed, am.total)
	}
	if am.width != 120 || am.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", am.width, am.height)
	}
}

func TestAppModel_EscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(testOptions(t))
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc on the home screen should not pop")
	}
}

func TestAppModel_EscPops(t *testing.T) {
	opts := testOptions(t)
	m := newAppModel(opts)
	m.router.Push(library.New(opts.Resources))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop the pushed screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAppModel_FooterUsesScreenHints(t *testing.T) {
	opts := testOptions(t)
	m := newAppModel(opts)
	lib := library.New(opts.Resources)
	m.router.Push(lib)

	hints := m.footerHints(m.router.Active())
	if len(hints) != len(lib.KeyHints())+1 {
		t.Fatalf("hints = %v", hints)
	}
	if hints[len(hints)-1].Key != "Ctrl+C" {
		t.Error("quit hint should always be last")
	}
}

func TestAppModel_SplashHandsOverToHome(t *testing.T) {
	m := newAppModel(testOptions(t))
	if m.router.Active().Title() != "" {
		t.Fatalf("expected splash first, got %q", m.router.Active().Title())
	}
	if m.Init() == nil {
		t.Fatal("splash should start its animation")
	}

	next, cmd := m.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should leave the splash")
	}
	next, _ = next.Update(cmd())

	am := next.(AppModel)
	if am.router.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", am.router.Active().Title())
	}
	if am.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", am.router.Depth())
	}
}
