package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestInitRunsActiveScreen(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Init()
	if !s1.initRan {
		t.Error("expected Init() to run on the initial screen")
	}
}

type closingScreen struct {
	stubScreen
	closed int
}

func (c *closingScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return c, nil }
func (c *closingScreen) Close()                                  { c.closed++ }

func TestPopClosesScreen(t *testing.T) {
	r := New(&stubScreen{title: "root"})
	c := &closingScreen{stubScreen: stubScreen{title: "work"}}
	r.Push(c)

	r.Pop()
	if c.closed != 1 {
		t.Errorf("expected Close once on pop, got %d", c.closed)
	}
}

func TestReplaceClosesScreen(t *testing.T) {
	c := &closingScreen{stubScreen: stubScreen{title: "work"}}
	r := New(c)

	r.Replace(&stubScreen{title: "next"})
	if c.closed != 1 {
		t.Errorf("expected Close once on replace, got %d", c.closed)
	}
}

func TestPopAtBottomDoesNotClose(t *testing.T) {
	c := &closingScreen{stubScreen: stubScreen{title: "root"}}
	r := New(c)

	r.Pop()
	if c.closed != 0 {
		t.Errorf("bottom screen should stay open, got %d closes", c.closed)
	}
}
