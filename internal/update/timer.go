package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/williiamwang/FlowPomodoro/internal/model"
	"github.com/williiamwang/FlowPomodoro/internal/notify"
	"github.com/williiamwang/FlowPomodoro/internal/quotes"
)

func (m Model) handleTimerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Engine.Running() {
			m.Engine.Pause()
			m.Status = StatusBar{Text: "timer paused", IsError: false}
			return m, nil
		}
		m.Engine.Start()
		m.tickSeq++
		m.Status = StatusBar{Text: "timer running", IsError: false}
		return m, timerTickCmd(m.tickSeq)
	case "r":
		m.Engine.Reset()
		m.Status = StatusBar{Text: "timer reset", IsError: false}
		return m, nil
	case "w":
		return m.switchMode(model.ModeWork), nil
	case "s":
		return m.switchMode(model.ModeShortBreak), nil
	case "l":
		return m.switchMode(model.ModeLongBreak), nil
	case "f":
		m.Quotes.ToggleLike(m.Engine.Mode(), m.Quotes.CurrentIndex())
		return m, nil
	case "q":
		return m.refreshQuotes()
	}
	return m, nil
}

func (m Model) switchMode(mode model.Mode) Model {
	m.Engine.SwitchMode(mode)
	m.Quotes.PickRandom(mode)
	return m
}

func (m Model) onTimerTick(msg TimerTickMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.tickSeq || !m.Engine.Running() {
		return m, nil
	}
	completion, finished := m.Engine.Tick()
	if finished {
		return m.onCompletion(completion.Finished)
	}
	return m, timerTickCmd(m.tickSeq)
}

func (m Model) onCompletion(finished model.Mode) (Model, tea.Cmd) {
	if finished == model.ModeWork {
		m.SessionWorkCount++
		if id := m.Tasks.ActiveID(); id != "" {
			m.Tasks.IncrementPomodoro(id)
		}
	}
	m.Quotes.PickRandom(m.Engine.Mode())

	m.Notice = m.Dispatcher.Notify(finished, m.Language, m.AssistantName, m.AssistantRole)
	seq := m.Notice.Seq
	return m, tea.Tick(notify.NoticeTTL, func(time.Time) tea.Msg {
		return DismissNoticeMsg{Seq: seq}
	})
}

func (m Model) refreshQuotes() (Model, tea.Cmd) {
	if m.refreshingQuotes {
		return m, nil
	}
	var svc quotes.Service = m.Assistant
	if m.Assistant == nil {
		return m, nil
	}
	m.refreshingQuotes = true
	m.Status = StatusBar{Text: "refreshing quotes", IsError: false}
	mode := m.Engine.Mode()
	lang := m.Language
	return m, func() tea.Msg {
		return QuoteBatchMsg{Mode: mode, Batch: svc.QuoteBatch(context.Background(), mode, lang)}
	}
}

func timerTickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TimerTickMsg{Seq: seq} })
}
