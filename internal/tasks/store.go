package tasks

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

// CommitFunc observes every committed mutation and is the persistence
// hook: it receives the full list after each change.
type CommitFunc func(tasks []model.Task)

// Store is the ordered task collection plus the active-task reference.
// Single-writer; no internal locking.
type Store struct {
	tasks     []model.Task
	activeID  string
	lastBatch []string
	onCommit  CommitFunc
	now       func() time.Time
}

type Option func(*Store)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithCommit(fn CommitFunc) Option {
	return func(s *Store) { s.onCommit = fn }
}

func NewStore(initial []model.Task, opts ...Option) *Store {
	s := &Store{
		tasks: append([]model.Task(nil), initial...),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) commit() {
	if s.onCommit != nil {
		s.onCommit(s.All())
	}
}

// All returns a copy of the list in display order.
func (s *Store) All() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) Get(id string) (model.Task, bool) {
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

func (s *Store) ActiveID() string { return s.activeID }

// Add prepends a new task. Empty or whitespace-only titles are rejected
// as a no-op. The new task becomes active when nothing is.
func (s *Store) Add(title, dueDate string, estimate int) (model.Task, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, false
	}
	if estimate < 1 {
		estimate = 1
	}
	if dueDate != "" && !model.IsDay(dueDate) {
		dueDate = ""
	}
	task := model.Task{
		ID:                 uuid.NewString(),
		Title:              title,
		DueDate:            dueDate,
		EstimatedPomodoros: estimate,
	}
	s.tasks = append([]model.Task{task}, s.tasks...)
	if s.activeID == "" {
		s.activeID = task.ID
	}
	s.commit()
	return task, true
}

// AddBatch prepends a generated list, keeping its order, and remembers
// the member ids so Regenerate can replace them later. The first created
// task becomes active when nothing is.
func (s *Store) AddBatch(titles []string, dueDate string) []model.Task {
	if dueDate != "" && !model.IsDay(dueDate) {
		dueDate = ""
	}
	created := make([]model.Task, 0, len(titles))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		created = append(created, model.Task{
			ID:                 uuid.NewString(),
			Title:              title,
			DueDate:            dueDate,
			EstimatedPomodoros: 1,
		})
	}
	if len(created) == 0 {
		return nil
	}
	s.tasks = append(append([]model.Task(nil), created...), s.tasks...)
	s.lastBatch = make([]string, len(created))
	for i, task := range created {
		s.lastBatch[i] = task.ID
	}
	if s.activeID == "" {
		s.activeID = created[0].ID
	}
	s.commit()
	return created
}

// ReplaceLastBatch deletes the previously generated batch (if any) and
// adds titles as the new one.
func (s *Store) ReplaceLastBatch(titles []string, dueDate string) []model.Task {
	if len(s.lastBatch) > 0 {
		s.DeleteMany(s.lastBatch)
	}
	return s.AddBatch(titles, dueDate)
}

func (s *Store) LastBatchIDs() []string {
	return append([]string(nil), s.lastBatch...)
}

// ToggleComplete flips completion, stamps or clears CompletedAt, and
// reorders: non-completed tasks first in their existing relative order,
// then completed tasks by CompletedAt descending. The ordering is stable
// within each bucket, so double-toggling restores the original position
// among same-state tasks.
func (s *Store) ToggleComplete(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	task := s.tasks[idx]
	if task.Completed {
		task.Completed = false
		task.CompletedAt = ""
	} else {
		task.Completed = true
		task.CompletedAt = model.Day(s.now())
	}
	s.tasks[idx] = task

	uncompleted := make([]model.Task, 0, len(s.tasks))
	completed := make([]model.Task, 0, len(s.tasks))
	for _, item := range s.tasks {
		if item.Completed {
			completed = append(completed, item)
		} else {
			uncompleted = append(uncompleted, item)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CompletedAt > completed[j].CompletedAt
	})
	s.tasks = append(uncompleted, completed...)

	if task.Completed && s.activeID == id {
		s.activeID = ""
	}
	s.commit()
}

// IncrementPomodoro adds one completed pomodoro to the task; no-op when
// the id does not exist.
func (s *Store) IncrementPomodoro(id string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	s.tasks[idx].CompletedPomodoros++
	s.commit()
}

// Edit updates the task in place without changing its position. Empty
// titles are rejected as a no-op.
func (s *Store) Edit(id, title, dueDate string, estimate int) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	if estimate < 1 {
		estimate = 1
	}
	if dueDate != "" && !model.IsDay(dueDate) {
		dueDate = ""
	}
	s.tasks[idx].Title = title
	s.tasks[idx].DueDate = dueDate
	s.tasks[idx].EstimatedPomodoros = estimate
	s.commit()
}

// SetDueDate is the quick-edit used from the list row.
func (s *Store) SetDueDate(id, dueDate string) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	if dueDate != "" && !model.IsDay(dueDate) {
		return
	}
	s.tasks[idx].DueDate = dueDate
	s.commit()
}

// SetEstimate is the quick-edit used from the list row; values below 1
// clamp to 1.
func (s *Store) SetEstimate(id string, estimate int) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	if estimate < 1 {
		estimate = 1
	}
	s.tasks[idx].EstimatedPomodoros = estimate
	s.commit()
}

func (s *Store) Delete(id string) {
	s.DeleteMany([]string{id})
}

func (s *Store) DeleteMany(ids []string) {
	if len(ids) == 0 {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.tasks[:0]
	removed := false
	for _, task := range s.tasks {
		if drop[task.ID] {
			removed = true
			if s.activeID == task.ID {
				s.activeID = ""
			}
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	if removed {
		s.commit()
	}
}

// SetActive points the active-task reference at id, or clears it with "".
// The reference must name an existing, non-completed task; anything else
// is ignored.
func (s *Store) SetActive(id string) {
	if id == "" {
		s.activeID = ""
		return
	}
	task, ok := s.Get(id)
	if !ok || task.Completed {
		return
	}
	s.activeID = id
}

func (s *Store) indexOf(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}
