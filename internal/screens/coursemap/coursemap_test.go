package coursemap

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/resources"
	"github.com/abhisek/coursemap/internal/router"
	"github.com/abhisek/coursemap/internal/store"
)

func testCatalog(t *testing.T, updates map[string]catalog.ProgressUpdate) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.WithProgress(catalog.DefaultModules(), updates))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func testIndex(t *testing.T) *resources.Index {
	t.Helper()
	idx, err := resources.New(resources.DefaultResources())
	if err != nil {
		t.Fatalf("resources.New: %v", err)
	}
	return idx
}

func testQuizzes(t *testing.T) *quiz.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "map.db"))
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	svc, err := quiz.NewService(st.QuizRepo(), quiz.DefaultQuizzes())
	if err != nil {
		t.Fatalf("quiz.NewService: %v", err)
	}
	return svc
}

func TestCourseMap_TopologicalOrder(t *testing.T) {
	s := New(testCatalog(t, nil), nil, nil)

	pos := make(map[string]int, len(s.modules))
	for i, m := range s.modules {
		pos[m.ID] = i
	}
	for _, m := range s.modules {
		for _, dep := range m.Dependencies {
			if pos[dep] >= pos[m.ID] {
				t.Errorf("%s listed before its dependency %s", m.ID, dep)
			}
		}
	}
}

func TestCourseMap_Navigation(t *testing.T) {
	s := New(testCatalog(t, nil), nil, nil)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.cursor != 0 {
		t.Errorf("cursor should not move above the first row, got %d", s.cursor)
	}
	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.cursor != len(s.modules)-1 {
		t.Errorf("cursor = %d, want last row", s.cursor)
	}
}

func TestCourseMap_TabJumpsToNextOpenModule(t *testing.T) {
	cat := testCatalog(t, map[string]catalog.ProgressUpdate{
		"mppf": {Status: catalog.StatusCompleted, Progress: 100},
	})
	s := New(cat, nil, nil)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	got := s.modules[s.cursor]
	if got.Status == catalog.StatusCompleted || !cat.IsUnlocked(got.ID) {
		t.Errorf("tab landed on %s, want an unlocked open module", got.ID)
	}
}

func TestCourseMap_ViewShowsLockAndDependencies(t *testing.T) {
	s := New(testCatalog(t, nil), nil, nil)
	view := s.View(100, 30)

	if !strings.Contains(view, "starting point") {
		t.Error("root module should be marked as a starting point")
	}
	if !strings.Contains(view, "Locked") {
		t.Error("modules with unfinished prerequisites should be locked")
	}
	if !strings.Contains(view, "mppf") {
		t.Error("dependency line should name prerequisites")
	}
}

func TestCourseMap_EnterPushesDetail(t *testing.T) {
	s := New(testCatalog(t, nil), testIndex(t), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should push the detail screen")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != s.modules[0].Title {
		t.Errorf("detail title = %q, want %q", push.Screen.Title(), s.modules[0].Title)
	}
}

func TestCourseMap_QPops(t *testing.T) {
	s := New(testCatalog(t, nil), nil, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Fatal("q should pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestModuleDetail_View(t *testing.T) {
	cat := testCatalog(t, map[string]catalog.ProgressUpdate{
		"mtc": {Status: catalog.StatusInProgress, Progress: 40, Score: catalog.IntPtr(72)},
	})
	m, _ := cat.GetModule("mtc")
	d := newModuleDetail(m, cat, testIndex(t), testQuizzes(t))

	view := d.View(120, 60)
	for _, want := range []string{"40%", "72", "Prerequisites", "Unlocks", "Sample Quiz: Payroll Basics"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
	if !strings.Contains(view, "locked") {
		t.Error("mtc should be locked while mppf is unfinished")
	}
}

func TestModuleDetail_TakeQuiz(t *testing.T) {
	cat := testCatalog(t, nil)
	quizzes := testQuizzes(t)

	withQuiz, _ := cat.GetModule("mtc")
	d := newModuleDetail(withQuiz, cat, nil, quizzes)
	if len(d.KeyHints()) != 2 {
		t.Errorf("expected a take-quiz hint, got %v", d.KeyHints())
	}
	_, cmd := d.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if cmd == nil {
		t.Fatal("t should open the quiz")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}

	without, _ := cat.GetModule("mppf")
	d = newModuleDetail(without, cat, nil, quizzes)
	if _, cmd := d.Update(tea.KeyPressMsg{Code: 't', Text: "t"}); cmd != nil {
		t.Error("t should do nothing for a module without a quiz")
	}
}
