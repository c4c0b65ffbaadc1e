package storage

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

// Persisted keys. Values are JSON documents; see the per-load helpers for
// their shapes.
const (
	KeyTheme           = "theme"
	KeyLanguage        = "language"
	KeyAssistantName   = "assistant_name"
	KeyAssistantRole   = "assistant_role"
	KeyQuotesCache     = "quotes_cache"
	KeyTasks           = "tasks"
	KeySettings        = "settings"
	KeyMorningShown    = "morning_shown"
	KeyEveningShown    = "evening_shown"
	KeySkipMorningDate = "skip_morning_date"
	KeySkipEveningDate = "skip_evening_date"
)

const DefaultAssistantName = "梦玉"

func DefaultAssistantRole(lang model.Language) string {
	if lang == model.LanguageEN {
		return "pet"
	}
	return "小宠物"
}

// StateStore reads and writes the application's persisted state. Every
// load degrades to a built-in default on a missing or corrupt entry; the
// fault is logged and never surfaced.
type StateStore struct {
	repo Repository
	log  zerolog.Logger
}

func NewStateStore(repo Repository, log zerolog.Logger) *StateStore {
	return &StateStore{repo: repo, log: log}
}

func (s *StateStore) load(ctx context.Context, key string, out any) bool {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("state load failed, using default")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("state entry corrupt, using default")
		return false
	}
	return true
}

func (s *StateStore) save(ctx context.Context, key string, in any) {
	raw, err := json.Marshal(in)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("state encode failed")
		return
	}
	if err := s.repo.Set(ctx, key, raw); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("state save failed")
	}
}

func (s *StateStore) Theme(ctx context.Context) model.Theme {
	var theme model.Theme
	if s.load(ctx, KeyTheme, &theme) && theme.IsValid() {
		return theme
	}
	return model.ThemeLight
}

func (s *StateStore) SaveTheme(ctx context.Context, theme model.Theme) {
	s.save(ctx, KeyTheme, theme)
}

func (s *StateStore) Language(ctx context.Context) model.Language {
	var lang model.Language
	if s.load(ctx, KeyLanguage, &lang) && lang.IsValid() {
		return lang
	}
	return model.LanguageZH
}

func (s *StateStore) SaveLanguage(ctx context.Context, lang model.Language) {
	s.save(ctx, KeyLanguage, lang)
}

func (s *StateStore) AssistantName(ctx context.Context) string {
	var name string
	if s.load(ctx, KeyAssistantName, &name) && name != "" {
		return name
	}
	return DefaultAssistantName
}

func (s *StateStore) SaveAssistantName(ctx context.Context, name string) {
	s.save(ctx, KeyAssistantName, name)
}

func (s *StateStore) AssistantRole(ctx context.Context, lang model.Language) string {
	var role string
	if s.load(ctx, KeyAssistantRole, &role) && role != "" {
		return role
	}
	return DefaultAssistantRole(lang)
}

func (s *StateStore) SaveAssistantRole(ctx context.Context, role string) {
	s.save(ctx, KeyAssistantRole, role)
}

// Quotes merges the persisted pools with defaults so every mode always
// has a non-empty pool.
func (s *StateStore) Quotes(ctx context.Context, defaults model.QuotePools) model.QuotePools {
	out := model.QuotePools{}
	var saved model.QuotePools
	loaded := s.load(ctx, KeyQuotesCache, &saved)
	for _, mode := range model.Modes {
		if loaded && len(saved[mode]) > 0 {
			out[mode] = saved[mode]
			continue
		}
		out[mode] = append([]model.QuoteEntry(nil), defaults[mode]...)
	}
	return out
}

func (s *StateStore) SaveQuotes(ctx context.Context, pools model.QuotePools) {
	s.save(ctx, KeyQuotesCache, pools)
}

func (s *StateStore) Tasks(ctx context.Context) []model.Task {
	var tasks []model.Task
	if !s.load(ctx, KeyTasks, &tasks) {
		return nil
	}
	out := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.EstimatedPomodoros < 1 {
			task.EstimatedPomodoros = 1
		}
		if task.CompletedPomodoros < 0 {
			task.CompletedPomodoros = 0
		}
		if err := task.Validate(); err != nil {
			s.log.Warn().Err(err).Str("task", task.ID).Msg("dropping invalid persisted task")
			continue
		}
		out = append(out, task)
	}
	return out
}

func (s *StateStore) SaveTasks(ctx context.Context, tasks []model.Task) {
	s.save(ctx, KeyTasks, tasks)
}

func (s *StateStore) Settings(ctx context.Context) model.ModeMinutes {
	var minutes model.ModeMinutes
	if s.load(ctx, KeySettings, &minutes) && minutes.Validate() == nil {
		return minutes
	}
	return model.DefaultModeMinutes()
}

func (s *StateStore) SaveSettings(ctx context.Context, minutes model.ModeMinutes) {
	s.save(ctx, KeySettings, minutes)
}

// Marker reads one of the daily-review date markers; empty when unset.
func (s *StateStore) Marker(ctx context.Context, key string) string {
	var day string
	if s.load(ctx, key, &day) && model.IsDay(day) {
		return day
	}
	return ""
}

func (s *StateStore) SaveMarker(ctx context.Context, key, day string) {
	s.save(ctx, key, day)
}
