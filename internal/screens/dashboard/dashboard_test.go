package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/coursemap/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.WithProgress(catalog.DefaultModules(), map[string]catalog.ProgressUpdate{
		"mppf": {Status: catalog.StatusCompleted, Progress: 100, Score: catalog.IntPtr(90)},
		"mtc":  {Status: catalog.StatusInProgress, Progress: 50, Score: catalog.IntPtr(70)},
	}))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func TestDashboard_Title(t *testing.T) {
	d := New(testCatalog(t))
	if d.Title() != "Dashboard" {
		t.Errorf("Title = %q, want %q", d.Title(), "Dashboard")
	}
}

func TestDashboard_Stats(t *testing.T) {
	d := New(testCatalog(t))
	view := d.View(120, 40)

	if !strings.Contains(view, "1 of 5") {
		t.Error("view should show completed count")
	}
	if !strings.Contains(view, "80.0%") {
		t.Error("view should show the average of recorded scores")
	}
	if !strings.Contains(view, "score 90") {
		t.Error("completed module should show its score")
	}
}

func TestDashboard_NoScores(t *testing.T) {
	cat, err := catalog.New(catalog.DefaultModules())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(New(cat).View(120, 40), "n/a") {
		t.Error("average score should be n/a without scores")
	}
}

func TestDashboard_Scroll(t *testing.T) {
	d := New(testCatalog(t))

	d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if d.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", d.scrollOffset)
	}
	for range 10 {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if d.scrollOffset != len(d.modules)-1 {
		t.Errorf("scrollOffset = %d, want %d", d.scrollOffset, len(d.modules)-1)
	}
}
