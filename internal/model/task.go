package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("model: task title is required")
	ErrInvalidEstimate = errors.New("model: task estimate must be positive")
	ErrInvalidDueDate  = errors.New("model: task due date must be YYYY-MM-DD")
)

const DayLayout = "2006-01-02"

// Day formats t as a local calendar-day string.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// IsDay reports whether s is a well-formed calendar-day string.
func IsDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}

// Task is one tracked todo item. DueDate and CompletedAt are calendar-day
// strings; CompletedAt is set exactly while Completed is true.
type Task struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Completed          bool   `json:"completed"`
	DueDate            string `json:"dueDate,omitempty"`
	EstimatedPomodoros int    `json:"estimatedPomodoros"`
	CompletedPomodoros int    `json:"completedPomodoros"`
	CompletedAt        string `json:"completedAt,omitempty"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.EstimatedPomodoros < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidEstimate, t.EstimatedPomodoros)
	}
	if t.CompletedPomodoros < 0 {
		return fmt.Errorf("model: completed pomodoros must be non-negative, got %d", t.CompletedPomodoros)
	}
	if t.DueDate != "" && !IsDay(t.DueDate) {
		return fmt.Errorf("%w: %q", ErrInvalidDueDate, t.DueDate)
	}
	if t.Completed && t.CompletedAt == "" {
		return errors.New("model: completed_at is required when task is completed")
	}
	if !t.Completed && t.CompletedAt != "" {
		return errors.New("model: completed_at must be empty when task is not completed")
	}
	return nil
}
