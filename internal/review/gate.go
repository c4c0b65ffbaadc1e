package review

import (
	"time"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

type Window string

const (
	WindowMorning Window = "morning"
	WindowEvening Window = "evening"
)

// evening starts at 17:30 and runs to midnight
const eveningStartMinutes = 17*60 + 30

// ClassifyWindow buckets a wall-clock instant into the evening or
// morning review window.
func ClassifyWindow(now time.Time) Window {
	minutes := now.Hour()*60 + now.Minute()
	if minutes >= eveningStartMinutes {
		return WindowEvening
	}
	return WindowMorning
}

// Trigger is a decision to surface one daily summary.
type Trigger struct {
	Window Window
	Day    string
}

// MarkerFunc persists a per-window date marker.
type MarkerFunc func(window Window, day string)

// Gate decides whether a poll instant should surface a daily summary.
// Each window has an independent already-shown marker and an independent
// skip-today marker; both are day-keyed, so they expire at midnight.
// Single-writer, like the rest of the core state.
type Gate struct {
	morningShown string
	eveningShown string
	skipMorning  string
	skipEvening  string
	onShown      MarkerFunc
	onSkip       MarkerFunc
}

type GateOption func(*Gate)

// WithMarkers seeds the gate from persisted state.
func WithMarkers(morningShown, eveningShown, skipMorning, skipEvening string) GateOption {
	return func(g *Gate) {
		g.morningShown = morningShown
		g.eveningShown = eveningShown
		g.skipMorning = skipMorning
		g.skipEvening = skipEvening
	}
}

func WithShownFunc(fn MarkerFunc) GateOption {
	return func(g *Gate) { g.onShown = fn }
}

func WithSkipFunc(fn MarkerFunc) GateOption {
	return func(g *Gate) { g.onSkip = fn }
}

func NewGate(opts ...GateOption) *Gate {
	g := &Gate{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Evaluate inspects one poll instant. In the evening window only the
// evening summary is eligible; otherwise the morning one. A trigger is
// recorded as shown immediately, so the same window cannot fire twice on
// one day.
func (g *Gate) Evaluate(now time.Time) (Trigger, bool) {
	day := model.Day(now)
	if ClassifyWindow(now) == WindowEvening {
		if g.eveningShown == day || g.skipEvening == day {
			return Trigger{}, false
		}
		g.eveningShown = day
		if g.onShown != nil {
			g.onShown(WindowEvening, day)
		}
		return Trigger{Window: WindowEvening, Day: day}, true
	}

	if g.morningShown == day || g.skipMorning == day {
		return Trigger{}, false
	}
	g.morningShown = day
	if g.onShown != nil {
		g.onShown(WindowMorning, day)
	}
	return Trigger{Window: WindowMorning, Day: day}, true
}

// SkipToday suppresses the window's summary for the rest of the day.
// One-way: there is no unskip.
func (g *Gate) SkipToday(window Window, now time.Time) {
	day := model.Day(now)
	switch window {
	case WindowMorning:
		g.skipMorning = day
	case WindowEvening:
		g.skipEvening = day
	default:
		return
	}
	if g.onSkip != nil {
		g.onSkip(window, day)
	}
}
