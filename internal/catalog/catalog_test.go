package catalog

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assets.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRows() []AssetRow {
	return []AssetRow{
		{Kind: "icons", Name: "icon16.png", Rel: "myayai-extension/assets/icons/icon16.png", Width: 16, Height: 16, Bytes: 400, SHA256: strings.Repeat("a", 64)},
		{Kind: "promo", Name: "promo-440x280.png", Rel: "store-assets/promo-440x280.png", Width: 440, Height: 280, Bytes: 9000, SHA256: strings.Repeat("b", 64)},
	}
}

func TestRecordRunAndRuns(t *testing.T) {
	s := tempStore(t)

	id, err := s.RecordRun(time.Now(), "/repo", "", 120*time.Millisecond, sampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if id <= 0 {
		t.Fatalf("RecordRun id = %d, want > 0", id)
	}

	runs, err := s.Runs(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Root != "/repo" || r.Filter != "" {
		t.Errorf("run = %+v, want root /repo with empty filter", r)
	}
	if r.Assets != 2 {
		t.Errorf("run.Assets = %d, want 2", r.Assets)
	}
	if r.Duration != 120*time.Millisecond {
		t.Errorf("run.Duration = %v, want 120ms", r.Duration)
	}
}

func TestRunsNewestFirst(t *testing.T) {
	s := tempStore(t)

	for _, root := range []string{"/first", "/second", "/third"} {
		if _, err := s.RecordRun(time.Now(), root, "", 0, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.Runs(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Root != "/third" || runs[2].Root != "/first" {
		t.Errorf("run order = [%s %s %s], want newest first", runs[0].Root, runs[1].Root, runs[2].Root)
	}
}

func TestRunsLimit(t *testing.T) {
	s := tempStore(t)

	for i := 0; i < 5; i++ {
		if _, err := s.RecordRun(time.Now(), "/repo", "", 0, nil); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.Runs(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("Runs(2) returned %d runs, want 2", len(runs))
	}
}

func TestRunsEmptyStore(t *testing.T) {
	s := tempStore(t)

	runs, err := s.Runs(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestRunAssets(t *testing.T) {
	s := tempStore(t)

	id, err := s.RecordRun(time.Now(), "/repo", "icons", 0, sampleRows())
	if err != nil {
		t.Fatal(err)
	}

	assets, err := s.RunAssets(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 asset rows, got %d", len(assets))
	}
	if assets[0].Name != "icon16.png" || assets[0].Width != 16 {
		t.Errorf("assets[0] = %+v, want icon16.png 16x16", assets[0])
	}
	if assets[1].Rel != "store-assets/promo-440x280.png" {
		t.Errorf("assets[1].Rel = %q", assets[1].Rel)
	}
}

func TestClearCascadesToAssets(t *testing.T) {
	s := tempStore(t)

	id, err := s.RecordRun(time.Now(), "/repo", "", 0, sampleRows())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}

	runs, _ := s.Runs(0)
	if len(runs) != 0 {
		t.Errorf("expected no runs after Clear, got %d", len(runs))
	}
	assets, err := s.RunAssets(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(assets) != 0 {
		t.Errorf("expected cascade delete of asset rows, got %d", len(assets))
	}
}

func TestCleanRemovesOldRuns(t *testing.T) {
	s := tempStore(t)

	// Insert an old run directly; RecordRun always stamps now.
	oldTS := time.Now().AddDate(0, 0, -30).Format(time.RFC3339)
	if _, err := s.db.Exec(
		`INSERT INTO runs (timestamp, root, filter, asset_count, duration_ms) VALUES (?, ?, '', 0, 0)`,
		oldTS, "/old"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordRun(time.Now(), "/new", "", 0, nil); err != nil {
		t.Fatal(err)
	}

	removed, err := s.Clean(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("Clean(7) removed %d runs, want 1", removed)
	}

	runs, _ := s.Runs(0)
	if len(runs) != 1 || runs[0].Root != "/new" {
		t.Errorf("remaining runs = %+v, want only /new", runs)
	}
}

func TestDayCutoff(t *testing.T) {
	cutoff := DayCutoff(1)
	now := time.Now()
	if cutoff.Hour() != 0 || cutoff.Minute() != 0 {
		t.Errorf("DayCutoff(1) = %v, want midnight", cutoff)
	}
	if cutoff.Day() != now.Day() && now.Sub(cutoff) > 24*time.Hour {
		t.Errorf("DayCutoff(1) = %v, want today's midnight", cutoff)
	}
}

func TestPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
}

func TestOpenCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "assets.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open in missing dir: %v", err)
	}
	s.Close()
}
