package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	Footer     string
	Notice     string
	Theme      model.Theme
}

type palette struct {
	header lipgloss.Color
	status lipgloss.Color
	errorC lipgloss.Color
	footer lipgloss.Color
	notice lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeDark: {
		header: lipgloss.Color("12"),
		status: lipgloss.Color("10"),
		errorC: lipgloss.Color("9"),
		footer: lipgloss.Color("8"),
		notice: lipgloss.Color("11"),
	},
	model.ThemeLight: {
		header: lipgloss.Color("4"),
		status: lipgloss.Color("2"),
		errorC: lipgloss.Color("1"),
		footer: lipgloss.Color("7"),
		notice: lipgloss.Color("3"),
	},
}

var panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

func RenderApp(data AppData) string {
	pal, ok := palettes[data.Theme]
	if !ok {
		pal = palettes[model.ThemeDark]
	}

	left := panelStyle.Width(46).Render(data.LeftPane)
	right := panelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := lipgloss.NewStyle().Foreground(pal.status).Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = lipgloss.NewStyle().Foreground(pal.errorC).Render(data.StatusLine)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(pal.header).Render(data.Header),
		row,
		status,
	}
	if data.Notice != "" {
		notice := lipgloss.NewStyle().Foreground(pal.notice).Render(data.Notice)
		lines = append(lines, panelStyle.Render(notice))
	}
	if data.Footer != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(pal.footer).Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string, theme model.Theme) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if theme == model.ThemeLight {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
