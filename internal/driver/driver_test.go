package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fsdc/internal/diag"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func testFiles() map[string]string {
	return map[string]string{
		"b.fsd":      "service TestApi",
		"a.fsd":      "service A { method do {}: {} }\n# do\nremarks\n",
		"sub/c.fsd":  "\ufeffservice C {}\r\n# C\r\ntext\r\n",
		"notes.txt":  "ignored",
		"sub/d.fsd":  "service D {}\n# E\nunused\n",
		"sub/e.fsdx": "ignored too",
	}
}

func TestCheckFiles(t *testing.T) {
	dir := writeFiles(t, testFiles())
	res, err := CheckFiles(context.Background(), []string{dir}, Options{Jobs: 3, BaseDir: dir, PathMode: "relative"})
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}

	var names []string
	for _, f := range res.Files {
		names = append(names, f.Name)
	}
	want := []string{"a.fsd", "b.fsd", "sub/c.fsd", "sub/d.fsd"}
	if len(names) != len(want) {
		t.Fatalf("files = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("files = %v, want %v", names, want)
		}
	}

	if res.Files[0].Failed() || res.Files[0].Service == nil {
		t.Fatalf("a.fsd: %v", res.Files[0].Errors)
	}
	if got := diag.FormatShort(res.Files[1].Errors); got != "b.fsd(1,16): expected '{'" {
		t.Errorf("b.fsd errors = %q", got)
	}
	if c := res.Files[2]; c.Failed() || c.Service.Remarks()[0] != "text" {
		t.Errorf("sub/c.fsd: errors %v", c.Errors)
	}
	if got := diag.FormatShort(res.Files[3].Errors); got != "sub/d.fsd(2,1): Unused remarks heading: E" {
		t.Errorf("sub/d.fsd errors = %q", got)
	}

	if !res.Failed() || res.ErrorCount() != 2 {
		t.Errorf("Failed = %v, ErrorCount = %d", res.Failed(), res.ErrorCount())
	}
	if len(res.Timing().Phases) == 0 {
		t.Errorf("no timings recorded")
	}
}

func TestCheckFilesCache(t *testing.T) {
	dir := writeFiles(t, testFiles())
	cache, err := OpenDiskCache(t.TempDir(), "fsdc")
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{BaseDir: dir, PathMode: "relative", Cache: cache}

	first, err := CheckFiles(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CheckFiles(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first.Files {
		if first.Files[i].Cached {
			t.Errorf("%s: cached on first run", first.Files[i].Name)
		}
		if !second.Files[i].Cached {
			t.Errorf("%s: not cached on second run", second.Files[i].Name)
		}
		if a, b := diag.FormatShort(first.Files[i].Errors), diag.FormatShort(second.Files[i].Errors); a != b {
			t.Errorf("%s: cached errors differ:\n%s\n%s", first.Files[i].Name, a, b)
		}
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	third, err := CheckFiles(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.Files[0].Cached {
		t.Errorf("entry survived DropAll")
	}
}

func TestCheckFilesProgress(t *testing.T) {
	dir := writeFiles(t, testFiles())
	var (
		mu     sync.Mutex
		events []Event
	)
	sink := SinkFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})
	if _, err := CheckFiles(context.Background(), []string{dir}, Options{Progress: sink}); err != nil {
		t.Fatal(err)
	}

	final := make(map[string]Status)
	queued := 0
	for _, ev := range events {
		switch ev.Status {
		case StatusQueued:
			queued++
		case StatusDone, StatusError:
			final[ev.File] = ev.Status
		}
	}
	if queued != 4 || len(final) != 4 {
		t.Fatalf("queued %d, finished %d: %+v", queued, len(final), events)
	}
	if final[filepath.Join(dir, "b.fsd")] != StatusError || final[filepath.Join(dir, "a.fsd")] != StatusDone {
		t.Errorf("unexpected statuses: %v", final)
	}
}

func TestCheckFilesCancelled(t *testing.T) {
	dir := writeFiles(t, testFiles())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CheckFiles(ctx, []string{dir}, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := writeFiles(t, testFiles())
	res, err := ParseFile(context.Background(), filepath.Join(dir, "a.fsd"), Options{PathMode: "basename"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Name != "a.fsd" || res.Service == nil || res.Service.Name() != "A" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if _, err := ParseFile(context.Background(), filepath.Join(dir, "missing.fsd"), Options{}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestMaxDiagnostics(t *testing.T) {
	dir := writeFiles(t, map[string]string{"x.fsd": "service X {}\n# a\n# b\n# c\n"})
	res, err := ParseFile(context.Background(), filepath.Join(dir, "x.fsd"), Options{MaxDiagnostics: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %d, want 2", len(res.Errors))
	}
}

func TestExpandPaths(t *testing.T) {
	dir := writeFiles(t, testFiles())
	explicit := filepath.Join(dir, "notes.txt")
	files, err := ExpandPaths([]string{dir, explicit, filepath.Join(dir, "a.fsd")})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 5 {
		t.Fatalf("files = %v", files)
	}

	if _, err := ExpandPaths([]string{filepath.Join(dir, "nope")}); err == nil {
		t.Fatal("missing path accepted")
	}
}

func TestLoadFailure(t *testing.T) {
	res := loadFailure("x.fsd", os.ErrPermission)
	if !res.Failed() || !errors.Is(res.Errors[0], os.ErrPermission) {
		t.Fatalf("unexpected result: %+v", res.Errors)
	}
	if res.Errors[0].Code != diag.IOLoadFileError {
		t.Errorf("code = %v", res.Errors[0].Code)
	}
}
