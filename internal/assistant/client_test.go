package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/williiamwang/FlowPomodoro/internal/model"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"```json\n1. Write the outline```", "Write the outline"},
		{`"Draft introduction"`, "Draft introduction"},
		{"- Review   notes", "Review notes"},
		{"* Plan sprint", "Plan sprint"},
		{"3) Ship it", "Ship it"},
		{"“整理资料”", "整理资料"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := cleanTitle(tc.in); got != tc.want {
			t.Fatalf("cleanTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractTasksJSONArray(t *testing.T) {
	got := extractTasks(`["Plan the work", "Do the work", "Review the work"]`, model.LanguageEN)
	want := []string{"Plan the work", "Do the work", "Review the work"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tasks: %v", got)
	}
}

func TestExtractTasksObjectForm(t *testing.T) {
	got := extractTasks(`{"tasks": ["One thing", "Another thing", "Third thing", "Fourth thing"]}`, model.LanguageEN)
	if len(got) != 4 || got[0] != "One thing" {
		t.Fatalf("unexpected tasks: %v", got)
	}
}

func TestExtractTasksLineAndDelimiterFallbacks(t *testing.T) {
	byLine := extractTasks("1. First step\n2. Second step\n3. Third step", model.LanguageEN)
	if len(byLine) != 3 || byLine[2] != "Third step" {
		t.Fatalf("unexpected line split: %v", byLine)
	}

	delimited := extractTasks("查资料，写初稿，改终稿", model.LanguageZH)
	if len(delimited) != 3 || delimited[0] != "查资料" {
		t.Fatalf("unexpected delimiter split: %v", delimited)
	}
}

func TestExtractTasksCapsAtEight(t *testing.T) {
	raw := `["a1x","b2x","c3x","d4x","e5x","f6x","g7x","h8x","i9x","j10x"]`
	if got := extractTasks(raw, model.LanguageEN); len(got) != maxBreakdownTasks {
		t.Fatalf("expected cap at %d, got %d", maxBreakdownTasks, len(got))
	}
}

func TestLocalBreakdown(t *testing.T) {
	split := localBreakdown("查资料，写初稿，复盘总结", model.LanguageZH)
	if len(split) != 3 || split[1] != "写初稿" {
		t.Fatalf("unexpected split fallback: %v", split)
	}

	templated := localBreakdown("学习围棋", model.LanguageZH)
	if len(templated) != 5 || templated[0] != "明确需求" {
		t.Fatalf("unexpected template fallback: %v", templated)
	}

	empty := localBreakdown("   ", model.LanguageEN)
	if len(empty) != 3 || empty[0] != "Clarify requirements" {
		t.Fatalf("unexpected empty-goal fallback: %v", empty)
	}
}

func TestBreakdownWithoutCredentialUsesFallback(t *testing.T) {
	client := NewClient("", "", "", zerolog.Nop())
	got := client.Breakdown(context.Background(), "Write thesis", model.LanguageEN)
	if len(got) < 3 {
		t.Fatalf("expected fallback breakdown, got %v", got)
	}
}

func TestQuoteBatchParsesServiceResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"[\"“First quote”\",\"'Second quote'\"]"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "", server.URL, zerolog.Nop())
	got := client.QuoteBatch(context.Background(), model.ModeWork, model.LanguageEN)
	want := []string{"First quote", "Second quote"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected quotes: %v", got)
	}
}

func TestQuoteBatchFallsBackOnTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", "", server.URL, zerolog.Nop())
	got := client.QuoteBatch(context.Background(), model.ModeShortBreak, model.LanguageEN)
	if len(got) != 7 {
		t.Fatalf("expected 7 fallback quotes, got %d", len(got))
	}
	seen := make(map[string]bool, len(got))
	for _, q := range got {
		seen[q] = true
	}
	for _, q := range fallbackQuotes[model.ModeShortBreak][model.LanguageEN] {
		if !seen[q] {
			t.Fatalf("fallback pool member missing: %q", q)
		}
	}
}

func TestQuoteBatchWithoutCredentialUsesFallback(t *testing.T) {
	client := NewClient("", "", "", zerolog.Nop())
	got := client.QuoteBatch(context.Background(), model.ModeLongBreak, model.LanguageZH)
	if len(got) != 7 {
		t.Fatalf("expected 7 fallback quotes, got %d", len(got))
	}
}
