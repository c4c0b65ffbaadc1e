package update

import (
	"github.com/williiamwang/FlowPomodoro/internal/model"
	"github.com/williiamwang/FlowPomodoro/internal/views"
)

func (m Model) renderTimerView() string {
	activeTitle := ""
	if task, ok := m.Tasks.Get(m.Tasks.ActiveID()); ok {
		activeTitle = task.Title
	}
	current := m.Quotes.Current(m.Engine.Mode())
	return views.RenderTimerPanel(views.TimerPanelData{
		Mode:            string(m.Engine.Mode()),
		Clock:           formatDuration(m.Engine.TimeLeft()),
		Running:         m.Engine.Running(),
		CycleDone:       m.Engine.WorkSessions(),
		CycleSize:       4,
		ActiveTaskTitle: activeTitle,
		Quote:           current.Text,
		QuoteLiked:      current.IsLiked,
		AudioOn:         m.AudioOn,
	})
}

func (m Model) renderTasksView() string {
	list := m.visibleTasks()
	items := make([]views.TaskItemData, 0, len(list))
	selectedID := ""
	if task, ok := m.selectedTask(); ok {
		selectedID = task.ID
	}
	activeID := m.Tasks.ActiveID()
	for _, task := range list {
		items = append(items, views.TaskItemData{
			ID:        task.ID,
			Title:     task.Title,
			Completed: task.Completed,
			Active:    task.ID == activeID,
			DueDate:   task.DueDate,
			Estimated: task.EstimatedPomodoros,
			Done:      task.CompletedPomodoros,
		})
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		Items:        items,
		SelectedID:   selectedID,
		QuickAddView: m.quickAddInput.View(),
		EditView:     m.editInput.View(),
		Editing:      m.TasksUI.Editing,
		Sort:         string(m.TasksUI.Sort),
	})
}

func (m Model) renderSettingsView() string {
	return views.RenderSettingsPanel(views.SettingsPanelData{
		WorkText:      m.Settings.Fields[0],
		ShortText:     m.Settings.Fields[1],
		LongText:      m.Settings.Fields[2],
		FieldIndex:    m.Settings.FieldIndex,
		ErrorText:     m.Settings.Err,
		Language:      string(m.Language),
		Theme:         string(m.Theme),
		AssistantName: m.AssistantName,
		AssistantRole: m.AssistantRole,
	})
}

func (m Model) renderBreakdownView() string {
	return views.RenderBreakdownPanel(views.BreakdownPanelData{
		GoalView:  m.goalInput.View(),
		Busy:      m.Breakdown.Busy,
		Proposals: m.Breakdown.Proposals,
		ErrorText: m.Breakdown.Err,
	})
}

func (m Model) renderReviewView() string {
	pending, completedToday := m.reviewTaskLists()
	md := views.ReviewMarkdown(views.ReviewData{
		Window:         string(m.Review.Window),
		Day:            m.Review.Day,
		Quote:          m.Review.Quote,
		Pending:        pending,
		CompletedToday: completedToday,
		PomodorosToday: m.SessionWorkCount,
		Chinese:        m.Language == model.LanguageZH,
	})
	return views.RenderMarkdown(md, m.Theme) + "\nkeys: [enter]close [s]skip today"
}
