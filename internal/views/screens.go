package views

import (
	"fmt"
	"strings"
)

type TimerPanelData struct {
	Mode            string
	Clock           string
	Running         bool
	CycleDone       int
	CycleSize       int
	ActiveTaskTitle string
	Quote           string
	QuoteLiked      bool
	AudioOn         bool
}

type TaskItemData struct {
	ID        string
	Title     string
	Completed bool
	Active    bool
	DueDate   string
	Estimated int
	Done      int
}

type TasksPanelData struct {
	Items        []TaskItemData
	SelectedID   string
	QuickAddView string
	EditView     string
	Editing      bool
	Sort         string
}

type SettingsPanelData struct {
	WorkText      string
	ShortText     string
	LongText      string
	FieldIndex    int
	ErrorText     string
	Language      string
	Theme         string
	AssistantName string
	AssistantRole string
}

type BreakdownPanelData struct {
	GoalView  string
	Busy      bool
	Proposals []string
	ErrorText string
}

type ReviewData struct {
	Window         string
	Day            string
	Quote          string
	Pending        []string
	CompletedToday []string
	PomodorosToday int
	Chinese        bool
}

func RenderTimerPanel(data TimerPanelData) string {
	state := "paused"
	if data.Running {
		state = "running"
	}
	audio := "on"
	if !data.AudioOn {
		audio = "off"
	}

	var b strings.Builder
	b.WriteString("timer:\n")
	b.WriteString(fmt.Sprintf("mode: %s | cycle: %d/%d | audio: %s\n", data.Mode, data.CycleDone, data.CycleSize, audio))
	b.WriteString(fmt.Sprintf("clock: %s\n", data.Clock))
	b.WriteString(fmt.Sprintf("state: %s\n", state))
	if data.ActiveTaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s\n", data.ActiveTaskTitle))
	} else {
		b.WriteString("task: (none active)\n")
	}
	b.WriteString("actions: [space]start/pause [r]reset [w/s/l]mode\n")
	if data.Quote != "" {
		mark := " "
		if data.QuoteLiked {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("\nquote:%s %s\n", mark, data.Quote))
		b.WriteString("actions: [f]like [q]refresh")
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if data.Editing {
		b.WriteString("edit: " + data.EditView + "\n")
	} else {
		b.WriteString("add: " + data.QuickAddView + "\n")
	}
	b.WriteString("actions: [enter]add [x]done [e]edit [d]delete [a]activate [o]sort [b]breakdown\n")
	if data.Sort != "" {
		b.WriteString(fmt.Sprintf("sort: due %s\n", data.Sort))
	}
	if len(data.Items) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for _, item := range data.Items {
		cursor := " "
		if item.ID == data.SelectedID {
			cursor = ">"
		}
		box := "[ ]"
		if item.Completed {
			box = "[x]"
		}
		active := " "
		if item.Active {
			active = "*"
		}
		b.WriteString(fmt.Sprintf("%s %s%s %s (%d/%d)", cursor, box, active, item.Title, item.Done, item.Estimated))
		if item.DueDate != "" {
			b.WriteString(" due:" + item.DueDate)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderSettingsPanel(data SettingsPanelData) string {
	fields := []struct {
		label string
		value string
	}{
		{"work minutes", data.WorkText},
		{"short break minutes", data.ShortText},
		{"long break minutes", data.LongText},
	}

	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString("keys: [tab]field [enter]save [t]theme [g]language [esc]close\n")
	for i, f := range fields {
		cursor := " "
		if i == data.FieldIndex {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, f.label, f.value))
	}
	b.WriteString(fmt.Sprintf("theme: %s | language: %s\n", data.Theme, data.Language))
	b.WriteString(fmt.Sprintf("assistant: %s (%s)\n", data.AssistantName, data.AssistantRole))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimSpace(b.String())
}

func RenderBreakdownPanel(data BreakdownPanelData) string {
	var b strings.Builder
	b.WriteString("breakdown:\n")
	b.WriteString("goal: " + data.GoalView + "\n")
	b.WriteString("keys: [enter]plan [y]accept [n]discard [esc]close\n")
	if data.Busy {
		b.WriteString("(thinking...)\n")
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	if len(data.Proposals) > 0 {
		b.WriteString("plan:\n")
		for i, p := range data.Proposals {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, p))
		}
	}
	return strings.TrimSpace(b.String())
}

// ReviewMarkdown builds the markdown body for the morning or evening
// review screen. The caller renders it through RenderMarkdown.
func ReviewMarkdown(data ReviewData) string {
	var b strings.Builder
	if data.Window == "morning" {
		if data.Chinese {
			b.WriteString(fmt.Sprintf("# 早安回顾 %s\n\n", data.Day))
		} else {
			b.WriteString(fmt.Sprintf("# Morning Review %s\n\n", data.Day))
		}
		if data.Quote != "" {
			b.WriteString("> " + data.Quote + "\n\n")
		}
		writeTaskSection(&b, sectionTitle("今日待办", "Pending today", data.Chinese), data.Pending, data.Chinese)
	} else {
		if data.Chinese {
			b.WriteString(fmt.Sprintf("# 晚间回顾 %s\n\n", data.Day))
			b.WriteString(fmt.Sprintf("今日完成 **%d** 个专注时段。\n\n", data.PomodorosToday))
		} else {
			b.WriteString(fmt.Sprintf("# Evening Review %s\n\n", data.Day))
			b.WriteString(fmt.Sprintf("You finished **%d** focus sessions today.\n\n", data.PomodorosToday))
		}
		writeTaskSection(&b, sectionTitle("今日完成", "Completed today", data.Chinese), data.CompletedToday, data.Chinese)
		writeTaskSection(&b, sectionTitle("仍在进行", "Still open", data.Chinese), data.Pending, data.Chinese)
	}
	return strings.TrimSpace(b.String())
}

func RenderStatusBar(view string, language string, hint string) string {
	parts := []string{fmt.Sprintf("view: %s", view), fmt.Sprintf("lang: %s", language)}
	if hint != "" {
		parts = append(parts, hint)
	}
	return strings.Join(parts, " | ")
}

func sectionTitle(zh, en string, chinese bool) string {
	if chinese {
		return zh
	}
	return en
}

func writeTaskSection(b *strings.Builder, title string, items []string, chinese bool) {
	b.WriteString("## " + title + "\n\n")
	if len(items) == 0 {
		if chinese {
			b.WriteString("（无）\n\n")
		} else {
			b.WriteString("(none)\n\n")
		}
		return
	}
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}
