package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestStatsCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats" {
			http.NotFound(w, r)
			return
		}
		oldest, newest := "2024-01-05T00:00:00", "2025-08-30T00:00:00"
		first, last := 1, 47
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_memos":       47,
			"oldest_date":       oldest,
			"newest_date":       newest,
			"first_memo_number": first,
			"last_memo_number":  last,
		})
	}))
	defer srv.Close()

	out, err := execute(t, testApp(t), "stats", "--api", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, want := range []string{
		"Total memos: 47",
		"Oldest: January 5, 2024 (memo #1)",
		"Newest: August 30, 2025 (memo #47)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestStatsCmdEmptyDiary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_memos": 0,
			"oldest_date": nil,
			"newest_date": nil,
		})
	}))
	defer srv.Close()

	out, err := execute(t, testApp(t), "stats", "--api", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Total memos: 0") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Oldest:") {
		t.Errorf("no date lines expected for an empty diary:\n%s", out)
	}
}
