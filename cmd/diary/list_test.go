package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/vinayakray19/conquest-of-infinity/internal"
)

// newMemoServer serves a fixed descending memo list with limit/skip.
func newMemoServer(t *testing.T, count int) *httptest.Server {
	t.Helper()
	memos := make([]internal.Memo, 0, count)
	for i := count; i >= 1; i-- {
		memos = append(memos, internal.Memo{
			Number:  i,
			Title:   fmt.Sprintf("Entry %d", i),
			Content: "content",
			Date:    "2025-06-01T00:00:00",
		})
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/memos" {
			http.NotFound(w, r)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		end := skip + limit
		if skip > len(memos) {
			skip = len(memos)
		}
		if end > len(memos) {
			end = len(memos)
		}
		_ = json.NewEncoder(w).Encode(memos[skip:end])
	}))
}

func testApp(t *testing.T) *app {
	t.Helper()
	dir := t.TempDir()
	return &app{
		configPath:  filepath.Join(dir, "config.yaml"),
		sessionPath: filepath.Join(dir, "session.yaml"),
	}
}

func execute(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd("test", a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListCmd(t *testing.T) {
	srv := newMemoServer(t, 12)
	defer srv.Close()

	out, err := execute(t, testApp(t), "list", "--api", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out, "Memo #12. Entry 12. June 1, 2025") {
		t.Errorf("missing first entry in output:\n%s", out)
	}
	if !strings.Contains(out, "Page 1 of 2 (12 memos total)") {
		t.Errorf("missing pagination summary:\n%s", out)
	}
	if strings.Count(out, "Memo #") != 10 {
		t.Errorf("expected one page of 10 memos:\n%s", out)
	}
}

func TestListCmdSecondPage(t *testing.T) {
	srv := newMemoServer(t, 12)
	defer srv.Close()

	out, err := execute(t, testApp(t), "list", "--page", "2", "--api", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.Contains(out, "Memo #2. Entry 2.") {
		t.Errorf("missing second-page entry:\n%s", out)
	}
	if !strings.Contains(out, "Page 2 of 2") {
		t.Errorf("missing pagination summary:\n%s", out)
	}
}

func TestListCmdJSON(t *testing.T) {
	srv := newMemoServer(t, 3)
	defer srv.Close()

	out, err := execute(t, testApp(t), "list", "--json", "--api", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var data struct {
		Memos      []internal.Memo `json:"memos"`
		TotalMemos int             `json:"total_memos"`
	}
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if len(data.Memos) != 3 || data.TotalMemos != 3 {
		t.Errorf("got %d memos, total %d", len(data.Memos), data.TotalMemos)
	}
}

func TestListCmdUnreachable(t *testing.T) {
	srv := newMemoServer(t, 1)
	srv.Close()

	_, err := execute(t, testApp(t), "list", "--api", srv.URL)
	if err == nil {
		t.Fatal("expected error for unreachable API")
	}
	if !strings.Contains(err.Error(), "cannot reach API") {
		t.Errorf("expected unreachable error, got: %v", err)
	}
}
