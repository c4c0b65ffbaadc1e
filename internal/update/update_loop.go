package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/williiamwang/FlowPomodoro/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.pollC != nil {
		return waitForPollCmd(m.pollC)
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}

		if m.Review.Active {
			return m.handleReviewKey(typed), nil
		}
		if m.CurrentView == ViewBreakdown {
			return m.handleBreakdownKey(typed)
		}
		if m.CurrentView == ViewSettings {
			return m.handleSettingsKey(typed), nil
		}
		if m.CurrentView == ViewTasks && m.captureActive() {
			return m.handleTasksKey(typed), nil
		}

		switch keyStr {
		case m.Keys.Timer:
			m.CurrentView = ViewTimer
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Settings:
			m.CurrentView = ViewSettings
			m.syncSettingsFields()
			m.Settings.Err = ""
			return m, nil
		}

		if m.CurrentView == ViewTimer {
			return m.handleTimerKey(typed)
		}
		if m.CurrentView == ViewTasks {
			return m.handleTasksKey(typed), nil
		}
	case TimerTickMsg:
		return m.onTimerTick(typed)
	case PollMsg:
		return m.onPoll(typed.At)
	case DismissNoticeMsg:
		if typed.Seq == m.Notice.Seq {
			m.Notice.Text = ""
		}
		return m, nil
	case QuoteBatchMsg:
		m.refreshingQuotes = false
		m.Quotes.ApplyBatch(typed.Mode, typed.Batch)
		m.Status = StatusBar{Text: "quotes refreshed", IsError: false}
		return m, nil
	case BreakdownResultMsg:
		m.Breakdown.Busy = false
		m.Breakdown.Proposals = typed.Tasks
		if len(typed.Tasks) == 0 {
			m.Breakdown.Err = "no plan produced"
		} else {
			m.Breakdown.Err = ""
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch {
	case m.Review.Active:
		leftPane = m.renderReviewView()
	case m.CurrentView == ViewTimer:
		leftPane = m.renderTimerView()
		rightPane = m.renderTasksView()
	case m.CurrentView == ViewTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderTimerView()
	case m.CurrentView == ViewSettings:
		leftPane = m.renderSettingsView()
		rightPane = m.renderTimerView()
	case m.CurrentView == ViewBreakdown:
		leftPane = m.renderBreakdownView()
		rightPane = m.renderTasksView()
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("flowpomodoro | view: %s | %s %s", m.CurrentView, m.Engine.Mode(), formatDuration(m.Engine.TimeLeft())),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Notice:     m.Notice.Text,
		Theme:      m.Theme,
		Footer: fmt.Sprintf("keys: %s timer | %s tasks | %s settings | %s quit",
			m.Keys.Timer, m.Keys.Tasks, m.Keys.Settings, m.Keys.Quit),
	})
}

func (m Model) captureActive() bool {
	return m.TasksUI.Capture || m.TasksUI.Editing
}

func waitForPollCmd(c <-chan time.Time) tea.Cmd {
	return func() tea.Msg {
		at, ok := <-c
		if !ok {
			return nil
		}
		return PollMsg{At: at}
	}
}
