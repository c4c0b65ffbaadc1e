package update

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleBreakdownKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewTasks
		m.goalInput.Blur()
		m.Breakdown = BreakdownState{AcceptedOnce: m.Breakdown.AcceptedOnce}
		return m, nil
	case "enter":
		return m.requestBreakdown()
	case "y":
		if !m.goalInput.Focused() && len(m.Breakdown.Proposals) > 0 {
			return m.acceptBreakdown(), nil
		}
	case "n":
		if !m.goalInput.Focused() && len(m.Breakdown.Proposals) > 0 {
			m.Breakdown.Proposals = nil
			m.goalInput.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.goalInput, cmd = m.goalInput.Update(msg)
	_ = cmd
	return m, nil
}

func (m Model) requestBreakdown() (Model, tea.Cmd) {
	if m.Breakdown.Busy || m.Assistant == nil {
		return m, nil
	}
	goal := strings.TrimSpace(m.goalInput.Value())
	m.Breakdown.Busy = true
	m.Breakdown.Err = ""
	m.goalInput.Blur()
	svc := m.Assistant
	lang := m.Language
	return m, func() tea.Msg {
		return BreakdownResultMsg{Tasks: svc.Breakdown(context.Background(), goal, lang)}
	}
}

// acceptBreakdown adds the proposed plan as tasks. Accepting a second
// plan in the same editing session replaces the tasks the first one
// added, so iterating on the goal does not pile up stale steps.
func (m Model) acceptBreakdown() Model {
	if len(m.Breakdown.Proposals) == 0 {
		return m
	}
	if m.Breakdown.AcceptedOnce {
		m.Tasks.ReplaceLastBatch(m.Breakdown.Proposals, "")
	} else {
		m.Tasks.AddBatch(m.Breakdown.Proposals, "")
		m.Breakdown.AcceptedOnce = true
	}
	m.Status = StatusBar{Text: "plan added to tasks", IsError: false}
	m.Breakdown.Proposals = nil
	m.CurrentView = ViewTasks
	return m
}
