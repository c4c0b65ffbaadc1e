package update

import (
	"context"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/williiamwang/FlowPomodoro/internal/model"
	"github.com/williiamwang/FlowPomodoro/internal/storage"
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewTimer
		m.syncSettingsFields()
		m.Settings.Err = ""
		return m
	case "tab":
		m.Settings.FieldIndex = (m.Settings.FieldIndex + 1) % len(m.Settings.Fields)
		return m
	case "shift+tab":
		m.Settings.FieldIndex = (m.Settings.FieldIndex + len(m.Settings.Fields) - 1) % len(m.Settings.Fields)
		return m
	case "enter":
		return m.applySettingsFields()
	case "backspace":
		field := &m.Settings.Fields[m.Settings.FieldIndex]
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
		return m
	case "t":
		if m.Theme == model.ThemeDark {
			m.Theme = model.ThemeLight
		} else {
			m.Theme = model.ThemeDark
		}
		if m.state != nil {
			m.state.SaveTheme(context.Background(), m.Theme)
		}
		return m
	case "g":
		return m.toggleLanguage()
	}
	if msg.Type == tea.KeyRunes {
		field := &m.Settings.Fields[m.Settings.FieldIndex]
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(*field) < 3 {
				*field += string(r)
			}
		}
	}
	return m
}

func (m Model) applySettingsFields() Model {
	values := [3]int{}
	for i, raw := range m.Settings.Fields {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			m.Settings.Err = "minutes must be a number"
			return m
		}
		values[i] = parsed
	}
	next, err := model.NewModeMinutes(values[0], values[1], values[2])
	if err != nil {
		m.Settings.Err = err.Error()
		return m
	}
	m.Engine.ApplySettings(next)
	if m.state != nil {
		m.state.SaveSettings(context.Background(), next)
	}
	m.Settings.Err = ""
	m.Status = StatusBar{Text: "settings saved", IsError: false}
	return m
}

func (m Model) toggleLanguage() Model {
	prevDefault := storage.DefaultAssistantRole(m.Language)
	if m.Language == model.LanguageZH {
		m.Language = model.LanguageEN
	} else {
		m.Language = model.LanguageZH
	}
	// A role the user never customized follows the language.
	if m.AssistantRole == prevDefault {
		m.AssistantRole = storage.DefaultAssistantRole(m.Language)
		if m.state != nil {
			m.state.SaveAssistantRole(context.Background(), m.AssistantRole)
		}
	}
	if m.state != nil {
		m.state.SaveLanguage(context.Background(), m.Language)
	}
	return m
}

func (m *Model) syncSettingsFields() {
	settings := m.Engine.Settings()
	m.Settings.Fields = [3]string{
		strconv.Itoa(settings[model.ModeWork]),
		strconv.Itoa(settings[model.ModeShortBreak]),
		strconv.Itoa(settings[model.ModeLongBreak]),
	}
	m.Settings.FieldIndex = 0
}
