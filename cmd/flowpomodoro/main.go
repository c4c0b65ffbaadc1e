package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/williiamwang/FlowPomodoro/internal/assistant"
	"github.com/williiamwang/FlowPomodoro/internal/config"
	"github.com/williiamwang/FlowPomodoro/internal/notify"
	"github.com/williiamwang/FlowPomodoro/internal/review"
	"github.com/williiamwang/FlowPomodoro/internal/storage"
	"github.com/williiamwang/FlowPomodoro/internal/timer"
	"github.com/williiamwang/FlowPomodoro/internal/update"
)

var (
	configPath string
	dbPath     string
	noAudio    bool
	noSpeech   bool
)

var rootCmd = &cobra.Command{
	Use:   "flowpomodoro",
	Short: "A pomodoro focus timer with tasks, quotes and daily reviews",
	RunE:  runApp,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", defaultConfigPath(), "path to the YAML config file")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the sqlite database (overrides config)")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable the completion chime")
	rootCmd.Flags().BoolVar(&noSpeech, "no-speech", false, "disable spoken announcements")
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = config.FromEnv(cfg)
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if noAudio {
		cfg.Audio = false
	}
	if noSpeech {
		cfg.Speech = false
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	logger := openLogger(cfg.DBPath)

	repo, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	var speaker notify.Speaker = notify.NoopSpeaker{}
	if cfg.Speech {
		speaker = &notify.ExecSpeaker{}
	}

	poller := review.NewPoller(review.PollInterval)
	poller.Start()
	defer poller.Stop()

	m := update.NewModel(update.Deps{
		State:     storage.NewStateStore(repo, logger),
		Assistant: assistant.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, logger),
		Speaker:   speaker,
		Player:    timer.ExecPlayer{},
		Poll:      poller.C(),
		Audio:     cfg.Audio,
		Logger:    logger,
	})

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("flowpomodoro failed: %w", err)
	}
	return nil
}

// openLogger writes structured logs next to the database; the terminal
// belongs to the TUI.
func openLogger(dbPath string) zerolog.Logger {
	path := filepath.Join(filepath.Dir(dbPath), "flowpomodoro.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flowpomodoro", "config.yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
