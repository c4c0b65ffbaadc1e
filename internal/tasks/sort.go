package tasks

import (
	"sort"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortByDueDate returns a copy sorted ascending by due date, undated
// tasks after all dated ones. The sort is stable: ties keep their
// relative order.
func SortByDueDate(list []model.Task) []model.Task {
	out := append([]model.Task(nil), list...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		if a != "" && b != "" {
			return a < b
		}
		return a != "" && b == ""
	})
	return out
}

// SortedView applies the due-date sort with an explicit direction to the
// non-completed portion of the list. Completed tasks always order by
// completion recency, so the direction toggle only affects the rest.
func SortedView(list []model.Task, dir SortDirection) []model.Task {
	if dir == SortNone {
		return append([]model.Task(nil), list...)
	}
	uncompleted := make([]model.Task, 0, len(list))
	completed := make([]model.Task, 0, len(list))
	for _, task := range list {
		if task.Completed {
			completed = append(completed, task)
		} else {
			uncompleted = append(uncompleted, task)
		}
	}
	uncompleted = SortByDueDate(uncompleted)
	if dir == SortDesc {
		for i, j := 0, len(uncompleted)-1; i < j; i, j = i+1, j-1 {
			uncompleted[i], uncompleted[j] = uncompleted[j], uncompleted[i]
		}
	}
	return append(uncompleted, completed...)
}
