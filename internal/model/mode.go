package model

type Mode string

const (
	ModeWork       Mode = "WORK"
	ModeShortBreak Mode = "SHORT_BREAK"
	ModeLongBreak  Mode = "LONG_BREAK"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeWork, ModeShortBreak, ModeLongBreak}

func (m Mode) IsValid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

type Language string

const (
	LanguageZH Language = "ZH"
	LanguageEN Language = "EN"
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageZH, LanguageEN:
		return true
	default:
		return false
	}
}

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}
