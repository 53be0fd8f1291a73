package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	for i, purpose := range []string{"definition-grading", "definition-grading", "smoke-test"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			SessionID:    "session-1",
			InputTokens:  100 + i,
			OutputTokens: 10,
			LatencyMs:    50,
			Success:      true,
			RequestBody:  "[user]\ndefine ubiquitous",
			ResponseBody: `{"verdict":"correct"}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "smoke-test" {
		t.Errorf("events[0].Purpose = %q, want smoke-test", events[0].Purpose)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("events[0].InputTokens = %d, want 102", events[0].InputTokens)
	}
	if events[0].SessionID != "session-1" {
		t.Errorf("events[0].SessionID = %q, want session-1", events[0].SessionID)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp not parsed from stored row")
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "definition-grading"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 filtered events, got %d", len(filtered))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 event with limit, got %d", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "definition-grading",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected non-nil event")
	}
	if e.Success {
		t.Error("expected failed event")
	}
	if e.ErrorMessage != "rate limited" {
		t.Errorf("ErrorMessage = %q", e.ErrorMessage)
	}
	if e.Timestamp.IsZero() {
		t.Error("timestamp not recorded")
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "definition-grading", InputTokens: 100, OutputTokens: 10, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "definition-grading", InputTokens: 200, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "smoke-test", InputTokens: 50, OutputTokens: 5, LatencyMs: 80, Success: true},
	}
	for i, c := range calls {
		if err := repo.AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose groups, got %d", len(byPurpose))
	}
	var grading *UsageStat
	for i := range byPurpose {
		if byPurpose[i].Group == "definition-grading" {
			grading = &byPurpose[i]
		}
	}
	if grading == nil {
		t.Fatal("definition-grading group missing")
	}
	if grading.Calls != 2 || grading.InputTokens != 300 || grading.OutputTokens != 30 {
		t.Errorf("grading stats = %+v", grading)
	}
	if grading.AvgLatencyMs != 200 {
		t.Errorf("AvgLatencyMs = %d, want 200", grading.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model groups, got %d", len(byModel))
	}
}

func TestParseEventTimestamp_Layouts(t *testing.T) {
	cases := []string{
		"2026-08-28T20:36:31Z",     // modernc.org/sqlite CURRENT_TIMESTAMP
		"2026-08-28T20:36:31.123Z", // with fractional seconds
		"2026-08-28 20:36:31",      // SQLite text representation
	}
	for _, ts := range cases {
		got, err := parseEventTimestamp(ts)
		if err != nil {
			t.Errorf("parseEventTimestamp(%q): %v", ts, err)
			continue
		}
		if got.UTC().Format("2006-01-02 15:04:05") != "2026-08-28 20:36:31" {
			t.Errorf("parseEventTimestamp(%q) = %v", ts, got)
		}
	}

	if _, err := parseEventTimestamp("yesterday"); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("LEXISCOPE_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEXISCOPE_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dir, "lexiscope", "lexiscope.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
