package notify

import (
	"os/exec"
	"runtime"
	"strconv"
	"sync"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

// Speech runs at 0.9x of the platform default rate.
const speechRate = 0.9

// Speaker is the single-slot spoken-announcement resource: speaking
// cancels and replaces any announcement still in flight.
type Speaker interface {
	Speak(text string, lang model.Language) error
	Cancel()
}

type NoopSpeaker struct{}

func (NoopSpeaker) Speak(string, model.Language) error { return nil }
func (NoopSpeaker) Cancel()                            {}

// ExecSpeaker shells out to the platform TTS tool, holding at most one
// child process at a time.
type ExecSpeaker struct {
	mu      sync.Mutex
	current *exec.Cmd
}

func (s *ExecSpeaker) Speak(text string, lang model.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()

	cmd := speakCommand(text, lang)
	if cmd == nil {
		return nil
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	s.current = cmd
	go func() { _ = cmd.Wait() }()
	return nil
}

func (s *ExecSpeaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *ExecSpeaker) cancelLocked() {
	if s.current != nil && s.current.Process != nil {
		_ = s.current.Process.Kill()
	}
	s.current = nil
}

func speakCommand(text string, lang model.Language) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		// say defaults to ~200 wpm
		rate := scaledRate(200)
		if lang == model.LanguageZH {
			return exec.Command("say", "-v", "Tingting", "-r", rate, text)
		}
		return exec.Command("say", "-r", rate, text)
	case "linux":
		// espeak defaults to 175 wpm
		rate := scaledRate(175)
		voice := "en-us"
		if lang == model.LanguageZH {
			voice = "zh"
		}
		return exec.Command("espeak", "-v", voice, "-s", rate, text)
	default:
		return nil
	}
}

func scaledRate(defaultWPM int) string {
	return strconv.Itoa(int(float64(defaultWPM) * speechRate))
}
