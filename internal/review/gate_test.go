package review

import (
	"testing"
	"time"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestClassifyWindow(t *testing.T) {
	cases := []struct {
		now  string
		want Window
	}{
		{"2026-09-01 00:00:00", WindowMorning},
		{"2026-09-01 09:15:00", WindowMorning},
		{"2026-09-01 17:29:59", WindowMorning},
		{"2026-09-01 17:30:00", WindowEvening},
		{"2026-09-01 17:31:00", WindowEvening},
		{"2026-09-01 23:59:59", WindowEvening},
	}
	for _, tc := range cases {
		if got := ClassifyWindow(at(t, tc.now)); got != tc.want {
			t.Fatalf("ClassifyWindow(%s) = %q, want %q", tc.now, got, tc.want)
		}
	}
}

func TestEveningTriggersExactlyOncePerDay(t *testing.T) {
	gate := NewGate()

	trigger, ok := gate.Evaluate(at(t, "2026-09-01 17:31:00"))
	if !ok {
		t.Fatal("expected evening trigger")
	}
	if trigger.Window != WindowEvening || trigger.Day != "2026-09-01" {
		t.Fatalf("unexpected trigger: %+v", trigger)
	}

	if _, ok := gate.Evaluate(at(t, "2026-09-01 17:31:30")); ok {
		t.Fatal("second poll in the same minute must not trigger again")
	}
	if _, ok := gate.Evaluate(at(t, "2026-09-01 22:00:00")); ok {
		t.Fatal("already-shown evening must stay quiet all day")
	}

	// markers are day-keyed, so the next day fires again
	if _, ok := gate.Evaluate(at(t, "2026-09-02 18:00:00")); !ok {
		t.Fatal("next day evening should trigger")
	}
}

func TestMorningAndEveningMarkersAreIndependent(t *testing.T) {
	gate := NewGate()

	trigger, ok := gate.Evaluate(at(t, "2026-09-01 08:00:00"))
	if !ok || trigger.Window != WindowMorning {
		t.Fatalf("expected morning trigger, got %+v ok=%v", trigger, ok)
	}

	trigger, ok = gate.Evaluate(at(t, "2026-09-01 18:00:00"))
	if !ok || trigger.Window != WindowEvening {
		t.Fatalf("morning marker must not block evening, got %+v ok=%v", trigger, ok)
	}
}

func TestEveningWindowSuppressesMorningSummary(t *testing.T) {
	gate := NewGate()
	trigger, ok := gate.Evaluate(at(t, "2026-09-01 19:00:00"))
	if !ok || trigger.Window != WindowEvening {
		t.Fatalf("expected evening trigger inside window, got %+v", trigger)
	}
	// the morning summary for the day stays eligible outside the window
	trigger, ok = gate.Evaluate(at(t, "2026-09-01 23:59:59"))
	if ok {
		t.Fatalf("no second trigger expected, got %+v", trigger)
	}
}

func TestSkipTodayIsPerWindowAndDayKeyed(t *testing.T) {
	gate := NewGate()
	gate.SkipToday(WindowEvening, at(t, "2026-09-01 18:00:00"))

	if _, ok := gate.Evaluate(at(t, "2026-09-01 18:01:00")); ok {
		t.Fatal("skipped evening must not trigger")
	}
	if trigger, ok := gate.Evaluate(at(t, "2026-09-01 09:00:00")); !ok || trigger.Window != WindowMorning {
		t.Fatal("evening skip must not affect morning")
	}
	if _, ok := gate.Evaluate(at(t, "2026-09-02 18:00:00")); !ok {
		t.Fatal("skip marker must expire at midnight")
	}
}

func TestGateSeededFromPersistedMarkers(t *testing.T) {
	gate := NewGate(WithMarkers("2026-09-01", "", "", "2026-09-01"))

	if _, ok := gate.Evaluate(at(t, "2026-09-01 09:00:00")); ok {
		t.Fatal("persisted morning-shown marker must suppress the morning summary")
	}
	if _, ok := gate.Evaluate(at(t, "2026-09-01 18:00:00")); ok {
		t.Fatal("persisted evening skip marker must suppress the evening summary")
	}
}

func TestGatePersistsMarkerChanges(t *testing.T) {
	shown := map[Window]string{}
	skipped := map[Window]string{}
	gate := NewGate(
		WithShownFunc(func(w Window, day string) { shown[w] = day }),
		WithSkipFunc(func(w Window, day string) { skipped[w] = day }),
	)

	gate.Evaluate(at(t, "2026-09-01 18:00:00"))
	if shown[WindowEvening] != "2026-09-01" {
		t.Fatalf("shown marker not persisted: %v", shown)
	}

	gate.SkipToday(WindowMorning, at(t, "2026-09-01 18:05:00"))
	if skipped[WindowMorning] != "2026-09-01" {
		t.Fatalf("skip marker not persisted: %v", skipped)
	}
}

func TestPollerEmitsImmediatelyAndStops(t *testing.T) {
	poller := NewPoller(20 * time.Millisecond)
	poller.Start()

	select {
	case <-poller.C():
	case <-time.After(time.Second):
		t.Fatal("expected immediate poll instant")
	}

	select {
	case <-poller.C():
	case <-time.After(time.Second):
		t.Fatal("expected periodic poll instant")
	}

	poller.Stop()
	if _, open := <-poller.C(); open {
		// one buffered instant may remain; the channel must close after it
		if _, open := <-poller.C(); open {
			t.Fatal("poller channel still open after Stop")
		}
	}
}

func TestPollerKeepsFreshestUndrainedInstant(t *testing.T) {
	poller := NewPoller(time.Hour)
	first := at(t, "2026-09-01 18:00:00")
	second := at(t, "2026-09-01 18:00:30")

	poller.emit(first)
	poller.emit(second)

	select {
	case got := <-poller.C():
		if !got.Equal(second) {
			t.Fatalf("expected the newer instant, got %v", got)
		}
	default:
		t.Fatal("expected a buffered poll instant")
	}
}
