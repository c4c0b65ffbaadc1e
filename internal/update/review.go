package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/williiamwang/FlowPomodoro/internal/model"
	"github.com/williiamwang/FlowPomodoro/internal/tasks"
)

func (m Model) onPoll(at time.Time) (Model, tea.Cmd) {
	var rearm tea.Cmd
	if m.pollC != nil {
		rearm = waitForPollCmd(m.pollC)
	}
	trigger, ok := m.Gate.Evaluate(at)
	if !ok {
		return m, rearm
	}
	m.Review = ReviewState{
		Active: true,
		Window: trigger.Window,
		Day:    trigger.Day,
		Quote:  m.Quotes.Current(m.Engine.Mode()).Text,
	}
	return m, rearm
}

func (m Model) handleReviewKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter", "esc":
		m.Review.Active = false
	case "s":
		m.Gate.SkipToday(m.Review.Window, m.now())
		m.Review.Active = false
		m.Status = StatusBar{Text: "review skipped for today", IsError: false}
	}
	return m
}

// reviewTaskLists builds the summary contents, both ordered by due date.
func (m Model) reviewTaskLists() (pending []string, completedToday []string) {
	today := model.Day(m.now())
	for _, task := range tasks.SortByDueDate(m.Tasks.All()) {
		if task.Completed {
			if task.CompletedAt == today {
				completedToday = append(completedToday, task.Title)
			}
			continue
		}
		pending = append(pending, task.Title)
	}
	return pending, completedToday
}
