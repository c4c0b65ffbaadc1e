package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/williiamwang/FlowPomodoro/internal/model"
	"github.com/williiamwang/FlowPomodoro/internal/tasks"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	if m.TasksUI.Capture {
		switch msg.String() {
		case "esc":
			m.TasksUI.Capture = false
			m.quickAddInput.Blur()
			return m
		case "enter":
			if _, ok := m.Tasks.Add(m.quickAddInput.Value(), "", 1); ok {
				m.Status = StatusBar{Text: "task added", IsError: false}
			}
			m.quickAddInput.SetValue("")
			return m
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
		return m
	}

	if m.TasksUI.Editing {
		switch msg.String() {
		case "esc":
			m.TasksUI.Editing = false
			m.editInput.Blur()
			return m
		case "enter":
			if task, ok := m.Tasks.Get(m.TasksUI.EditID); ok {
				m.Tasks.Edit(task.ID, m.editInput.Value(), task.DueDate, task.EstimatedPomodoros)
			}
			m.TasksUI.Editing = false
			m.editInput.Blur()
			return m
		}
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		_ = cmd
		return m
	}

	switch msg.String() {
	case "i", "enter":
		m.TasksUI.Capture = true
		m.quickAddInput.Focus()
	case "up", "k":
		if m.TasksUI.Cursor > 0 {
			m.TasksUI.Cursor--
		}
	case "down", "j":
		if m.TasksUI.Cursor < m.Tasks.Len()-1 {
			m.TasksUI.Cursor++
		}
	case "x":
		if task, ok := m.selectedTask(); ok {
			m.Tasks.ToggleComplete(task.ID)
		}
	case "e":
		if task, ok := m.selectedTask(); ok && !task.Completed {
			m.TasksUI.Editing = true
			m.TasksUI.EditID = task.ID
			m.editInput.SetValue(task.Title)
			m.editInput.Focus()
		}
	case "d":
		if task, ok := m.selectedTask(); ok {
			m.Tasks.Delete(task.ID)
			if m.TasksUI.Cursor >= m.Tasks.Len() && m.TasksUI.Cursor > 0 {
				m.TasksUI.Cursor--
			}
		}
	case "a":
		if task, ok := m.selectedTask(); ok {
			m.Tasks.SetActive(task.ID)
		}
	case "o":
		m.TasksUI.Sort = nextSort(m.TasksUI.Sort)
	case "+":
		if task, ok := m.selectedTask(); ok {
			m.Tasks.SetEstimate(task.ID, task.EstimatedPomodoros+1)
		}
	case "-":
		if task, ok := m.selectedTask(); ok {
			m.Tasks.SetEstimate(task.ID, task.EstimatedPomodoros-1)
		}
	case "m":
		if task, ok := m.selectedTask(); ok {
			today := model.Day(m.now())
			if task.DueDate == today {
				m.Tasks.SetDueDate(task.ID, "")
			} else {
				m.Tasks.SetDueDate(task.ID, today)
			}
		}
	case "b":
		m.CurrentView = ViewBreakdown
		m.Breakdown = BreakdownState{AcceptedOnce: m.Breakdown.AcceptedOnce}
		m.goalInput.SetValue("")
		m.goalInput.Focus()
	}
	return m
}

// visibleTasks is the list as rendered: the selected sort applied to the
// uncompleted block, completed block in recency order.
func (m Model) visibleTasks() []model.Task {
	return tasks.SortedView(m.Tasks.All(), m.TasksUI.Sort)
}

func (m Model) selectedTask() (model.Task, bool) {
	list := m.visibleTasks()
	if m.TasksUI.Cursor < 0 || m.TasksUI.Cursor >= len(list) {
		return model.Task{}, false
	}
	return list[m.TasksUI.Cursor], true
}

func nextSort(dir tasks.SortDirection) tasks.SortDirection {
	switch dir {
	case tasks.SortNone:
		return tasks.SortAsc
	case tasks.SortAsc:
		return tasks.SortDesc
	default:
		return tasks.SortNone
	}
}
