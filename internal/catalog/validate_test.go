package catalog

import (
	"testing"
)

func TestCheckConsistency(t *testing.T) {
	mods := DefaultModules()
	mods[0].Status, mods[0].Progress = StatusCompleted, 40   // completed, not 100
	mods[1].Status, mods[1].Progress = StatusNotStarted, 10  // not-started with progress
	mods[2].Status, mods[2].Progress = StatusInProgress, 0   // in-progress at 0
	mods[3].Status, mods[3].Progress = StatusInProgress, 50  // fine
	mods[3].Score = IntPtr(70)                               // scored but not completed
	mods[4].Status, mods[4].Progress = StatusCompleted, 100  // fine
	mods[4].Score = IntPtr(100)

	c, err := New(mods)
	if err != nil {
		t.Fatalf("inconsistent status must not fail construction: %v", err)
	}

	got := c.CheckConsistency()
	wantIDs := []string{"mppf", "mps", "mtc", "mbd"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d findings %+v, want %d", len(got), got, len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ModuleID != id {
			t.Errorf("finding %d: got module %q, want %q", i, got[i].ModuleID, id)
		}
		if got[i].Problem == "" {
			t.Errorf("finding %d has no problem text", i)
		}
	}

	// Progress is never corrected.
	m, _ := c.GetModule("mppf")
	if m.Progress != 40 {
		t.Errorf("progress was changed to %d", m.Progress)
	}
}

func TestCheckConsistency_CleanCatalog(t *testing.T) {
	c, err := New(DefaultModules())
	if err != nil {
		t.Fatal(err)
	}
	if got := c.CheckConsistency(); len(got) != 0 {
		t.Errorf("expected no findings, got %+v", got)
	}
}

func TestFieldProblems(t *testing.T) {
	m := Module{ID: "x", Title: "", Status: "bogus", Progress: 200}
	err := validate.Struct(m)
	if err == nil {
		t.Fatal("expected validation error")
	}
	problems := FieldProblems(err)
	if len(problems) != 3 {
		t.Errorf("got %d problems %v, want 3", len(problems), problems)
	}
}

func TestWithProgress(t *testing.T) {
	base := DefaultModules()
	updated := WithProgress(base, map[string]ProgressUpdate{
		"mppf":  {Status: StatusCompleted, Progress: 100, Score: IntPtr(88)},
		"mps":   {Status: StatusInProgress, Progress: 60},
		"ghost": {Status: StatusCompleted, Progress: 100},
	})

	if base[0].Status != StatusNotStarted {
		t.Error("WithProgress must not modify its input")
	}
	if updated[0].Status != StatusCompleted || updated[0].Progress != 100 || *updated[0].Score != 88 {
		t.Errorf("mppf not updated: %+v", updated[0])
	}
	if updated[1].Progress != 60 || updated[1].Score != nil {
		t.Errorf("mps not updated: %+v", updated[1])
	}
	if len(updated) != len(base) {
		t.Errorf("got %d modules, want %d", len(updated), len(base))
	}

	c, err := New(updated)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.OverallProgress(); got != 32 {
		t.Errorf("OverallProgress = %v, want 32", got)
	}
}
