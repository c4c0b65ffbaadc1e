package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingMode     = errors.New("model: settings must cover every mode")
	ErrInvalidDuration = errors.New("model: mode duration must be 1..120 minutes")
)

const MaxModeMinutes = 120

// ModeMinutes maps every timer mode to its duration in minutes. Construct
// through NewModeMinutes so a missing mode cannot slip past load time.
type ModeMinutes map[Mode]int

func DefaultModeMinutes() ModeMinutes {
	return ModeMinutes{
		ModeWork:       25,
		ModeShortBreak: 5,
		ModeLongBreak:  15,
	}
}

func NewModeMinutes(work, shortBreak, longBreak int) (ModeMinutes, error) {
	m := ModeMinutes{
		ModeWork:       work,
		ModeShortBreak: shortBreak,
		ModeLongBreak:  longBreak,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m ModeMinutes) Validate() error {
	for _, mode := range Modes {
		minutes, ok := m[mode]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrMissingMode, mode)
		}
		if minutes < 1 || minutes > MaxModeMinutes {
			return fmt.Errorf("%w: %s=%d", ErrInvalidDuration, mode, minutes)
		}
	}
	return nil
}

// Seconds returns the configured duration of mode in seconds.
func (m ModeMinutes) Seconds(mode Mode) int {
	return m[mode] * 60
}
