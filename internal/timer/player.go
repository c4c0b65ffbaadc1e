package timer

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Player emits a short audio clip. Playback is fire-and-forget; failures
// are swallowed because audio is purely cosmetic.
type Player interface {
	Play(wav []byte) error
}

type NoopPlayer struct{}

func (NoopPlayer) Play([]byte) error { return nil }

// ExecPlayer shells out to the platform audio tool.
type ExecPlayer struct{}

func (ExecPlayer) Play(wav []byte) error {
	path := filepath.Join(os.TempDir(), "flowpomodoro-chime.wav")
	if err := os.WriteFile(path, wav, 0o644); err != nil {
		return err
	}
	switch runtime.GOOS {
	case "linux":
		return exec.Command("aplay", "-q", path).Start()
	case "darwin":
		return exec.Command("afplay", path).Start()
	default:
		return nil
	}
}
