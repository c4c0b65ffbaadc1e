package notify

import (
	"time"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

// NoticeTTL is how long a visible notice stays up before auto-dismissal.
const NoticeTTL = 8 * time.Second

// Notice is the visible transient completion notice. Seq identifies one
// issue of the notice so a stale dismissal timer cannot take down a
// replacement.
type Notice struct {
	Seq  int
	Text string
	Mode model.Mode
}

// Dispatcher produces the localized spoken and visible completion
// notifications. A new notification replaces the previous one in both
// channels; nothing is queued.
type Dispatcher struct {
	speaker Speaker
	seq     int
}

func NewDispatcher(speaker Speaker) *Dispatcher {
	if speaker == nil {
		speaker = NoopSpeaker{}
	}
	return &Dispatcher{speaker: speaker}
}

// Notify speaks the announcement for the finished mode, cancelling any
// announcement still in flight, and returns the notice to display. The
// caller owns the NoticeTTL dismissal timer.
func (d *Dispatcher) Notify(finished model.Mode, lang model.Language, name, role string) Notice {
	d.speaker.Cancel()
	_ = d.speaker.Speak(ComposeSpeech(finished, lang, name, role), lang)

	d.seq++
	return Notice{
		Seq:  d.seq,
		Text: ComposeToast(finished, lang),
		Mode: finished,
	}
}
