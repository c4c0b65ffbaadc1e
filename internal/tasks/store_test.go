package tasks

import (
	"testing"
	"time"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

func fixedClock(day string) func() time.Time {
	t, _ := time.Parse(model.DayLayout, day)
	return func() time.Time { return t }
}

func titles(list []model.Task) []string {
	out := make([]string, len(list))
	for i, task := range list {
		out[i] = task.Title
	}
	return out
}

func assertOrder(t *testing.T, got []model.Task, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d: %v", len(want), len(got), titles(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q (full: %v)", i, title, got[i].Title, titles(got))
		}
	}
}

func TestAddRejectsEmptyTitleAndPrepends(t *testing.T) {
	store := NewStore(nil)

	if _, ok := store.Add("", "", 1); ok {
		t.Fatal("empty title must be rejected")
	}
	if _, ok := store.Add("   ", "", 1); ok {
		t.Fatal("whitespace title must be rejected")
	}
	if store.Len() != 0 {
		t.Fatalf("rejected adds changed the list: %d", store.Len())
	}

	task, ok := store.Add("Write report", "", 1)
	if !ok {
		t.Fatal("expected add to succeed")
	}
	if task.CompletedPomodoros != 0 || task.EstimatedPomodoros != 1 {
		t.Fatalf("unexpected new task counters: %+v", task)
	}
	if store.ActiveID() != task.ID {
		t.Fatal("first task should become active")
	}

	second, _ := store.Add("Second", "", 2)
	assertOrder(t, store.All(), "Second", "Write report")
	if store.ActiveID() == second.ID {
		t.Fatal("active reference must not move to later adds")
	}
}

func TestAddBatchSetsFirstActiveAndRemembersIDs(t *testing.T) {
	store := NewStore(nil)
	created := store.AddBatch([]string{"One", "", "Two", "Three"}, "2026-09-05")
	if len(created) != 3 {
		t.Fatalf("expected blank titles skipped, got %d", len(created))
	}
	if store.ActiveID() != created[0].ID {
		t.Fatal("first batch member should become active")
	}
	if len(store.LastBatchIDs()) != 3 {
		t.Fatalf("batch ids not remembered: %v", store.LastBatchIDs())
	}
	for _, task := range created {
		if task.DueDate != "2026-09-05" || task.EstimatedPomodoros != 1 {
			t.Fatalf("unexpected batch task: %+v", task)
		}
	}

	assertOrder(t, store.All(), "One", "Two", "Three")
}

func TestReplaceLastBatch(t *testing.T) {
	store := NewStore(nil)
	store.Add("Keep me", "", 1)
	store.AddBatch([]string{"Old A", "Old B"}, "")

	store.ReplaceLastBatch([]string{"New A", "New B", "New C"}, "")
	assertOrder(t, store.All(), "New A", "New B", "New C", "Keep me")
}

func TestToggleCompleteStampsAndReorders(t *testing.T) {
	store := NewStore(nil, WithClock(fixedClock("2026-09-01")))
	store.Add("C", "", 1)
	store.Add("B", "", 1)
	store.Add("A", "", 1)
	// order: A B C

	store.ToggleComplete(store.All()[1].ID) // complete B
	got := store.All()
	assertOrder(t, got, "A", "C", "B")
	if !got[2].Completed || got[2].CompletedAt != "2026-09-01" {
		t.Fatalf("completion not stamped: %+v", got[2])
	}
}

func TestToggleCompleteOrdersCompletedByRecency(t *testing.T) {
	clockDay := "2026-09-01"
	store := NewStore(nil, WithClock(func() time.Time {
		parsed, _ := time.Parse(model.DayLayout, clockDay)
		return parsed
	}))
	store.Add("C", "", 1)
	store.Add("B", "", 1)
	store.Add("A", "", 1)

	store.ToggleComplete(store.All()[0].ID) // A completed on 09-01
	clockDay = "2026-09-02"
	store.ToggleComplete(store.All()[1].ID) // C completed on 09-02

	got := store.All()
	assertOrder(t, got, "B", "C", "A")
	if got[1].CompletedAt != "2026-09-02" || got[2].CompletedAt != "2026-09-01" {
		t.Fatalf("completed bucket not sorted by recency: %+v", got)
	}
}

func TestDoubleToggleIsIdempotent(t *testing.T) {
	store := NewStore(nil, WithClock(fixedClock("2026-09-01")))
	store.Add("C", "", 1)
	store.Add("B", "", 1)
	store.Add("A", "", 1)

	id := store.All()[1].ID // B
	store.ToggleComplete(id)
	store.ToggleComplete(id)

	got := store.All()
	if got[2].Title != "B" {
		t.Fatalf("expected B restored at bucket boundary, got %v", titles(got))
	}
	task, _ := store.Get(id)
	if task.Completed || task.CompletedAt != "" {
		t.Fatalf("double toggle must restore state: %+v", task)
	}

	// same-state relative order preserved for the untouched tasks
	if got[0].Title != "A" || got[1].Title != "C" {
		t.Fatalf("relative order of untouched tasks changed: %v", titles(got))
	}
}

func TestIncrementPomodoroTargetsOnlyMatchingTask(t *testing.T) {
	store := NewStore(nil)
	store.Add("Other", "", 1)
	active, _ := store.Add("Active", "", 1)

	store.IncrementPomodoro(active.ID)
	store.IncrementPomodoro("missing-id") // no-op

	got, _ := store.Get(active.ID)
	if got.CompletedPomodoros != 1 {
		t.Fatalf("expected 1 pomodoro, got %d", got.CompletedPomodoros)
	}
	other, _ := store.Get(store.All()[1].ID)
	if other.CompletedPomodoros != 0 {
		t.Fatalf("other task must be untouched, got %d", other.CompletedPomodoros)
	}
}

func TestEditValidatesAndKeepsPosition(t *testing.T) {
	store := NewStore(nil)
	store.Add("B", "", 1)
	task, _ := store.Add("A", "", 1)

	store.Edit(task.ID, "", "2026-09-09", 3)
	got, _ := store.Get(task.ID)
	if got.Title != "A" {
		t.Fatal("empty title edit must be a no-op")
	}

	store.Edit(task.ID, "A2", "2026-09-09", 3)
	got, _ = store.Get(task.ID)
	if got.Title != "A2" || got.DueDate != "2026-09-09" || got.EstimatedPomodoros != 3 {
		t.Fatalf("edit not applied: %+v", got)
	}
	assertOrder(t, store.All(), "A2", "B")
}

func TestDeleteClearsActiveReference(t *testing.T) {
	store := NewStore(nil)
	first, _ := store.Add("First", "", 1)
	store.Add("Second", "", 1)
	if store.ActiveID() != first.ID {
		t.Fatal("setup: first should be active")
	}

	store.Delete(first.ID)
	if store.ActiveID() != "" {
		t.Fatal("deleting the active task must clear the reference")
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 task left, got %d", store.Len())
	}
}

func TestSetActiveRejectsCompletedAndMissing(t *testing.T) {
	store := NewStore(nil, WithClock(fixedClock("2026-09-01")))
	a, _ := store.Add("A", "", 1)
	b, _ := store.Add("B", "", 1)

	store.SetActive(b.ID)
	if store.ActiveID() != b.ID {
		t.Fatalf("expected B active, got %q", store.ActiveID())
	}

	store.SetActive("missing")
	if store.ActiveID() != b.ID {
		t.Fatal("missing id must be ignored")
	}

	store.ToggleComplete(a.ID)
	store.SetActive(a.ID)
	if store.ActiveID() != b.ID {
		t.Fatal("completed task must not become active")
	}

	store.SetActive("")
	if store.ActiveID() != "" {
		t.Fatal("empty id must clear the reference")
	}
}

func TestCommitObserverSeesEveryMutation(t *testing.T) {
	var commits int
	store := NewStore(nil, WithCommit(func([]model.Task) { commits++ }))

	store.Add("A", "", 1)
	store.Add("", "", 1)
	store.ToggleComplete("missing")
	store.SetEstimate("missing", 3)
	if commits != 1 {
		t.Fatalf("rejected and no-op mutations must not commit, got %d commits", commits)
	}

	id := store.All()[0].ID
	store.SetEstimate(id, 3)
	store.SetDueDate(id, "2026-09-10")
	store.Delete(id)
	if commits != 4 {
		t.Fatalf("expected 4 commits, got %d", commits)
	}
}

func TestSortByDueDate(t *testing.T) {
	list := []model.Task{
		{ID: "1", Title: "undated-1", EstimatedPomodoros: 1},
		{ID: "2", Title: "late", DueDate: "2026-09-20", EstimatedPomodoros: 1},
		{ID: "3", Title: "early", DueDate: "2026-09-02", EstimatedPomodoros: 1},
		{ID: "4", Title: "undated-2", EstimatedPomodoros: 1},
		{ID: "5", Title: "also-early", DueDate: "2026-09-02", EstimatedPomodoros: 1},
	}
	sorted := SortByDueDate(list)
	assertOrder(t, sorted, "early", "also-early", "late", "undated-1", "undated-2")
}

func TestSortedViewDirectionOnlyAffectsUncompleted(t *testing.T) {
	list := []model.Task{
		{ID: "1", Title: "b", DueDate: "2026-09-10", EstimatedPomodoros: 1},
		{ID: "2", Title: "a", DueDate: "2026-09-01", EstimatedPomodoros: 1},
		{ID: "3", Title: "done-new", Completed: true, CompletedAt: "2026-09-02", EstimatedPomodoros: 1},
		{ID: "4", Title: "done-old", Completed: true, CompletedAt: "2026-09-01", EstimatedPomodoros: 1},
	}

	asc := SortedView(list, SortAsc)
	assertOrder(t, asc, "a", "b", "done-new", "done-old")

	desc := SortedView(list, SortDesc)
	assertOrder(t, desc, "b", "a", "done-new", "done-old")

	none := SortedView(list, SortNone)
	assertOrder(t, none, "b", "a", "done-new", "done-old")
}
