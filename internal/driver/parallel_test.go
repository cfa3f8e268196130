package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"glassful/internal/diag"
	"glassful/internal/trace"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, text := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(text), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func byPath(results []FileResult) map[string]FileResult {
	m := make(map[string]FileResult, len(results))
	for _, r := range results {
		m[filepath.ToSlash(r.Path)] = r
	}
	return m
}

func TestOutputName(t *testing.T) {
	tests := map[string]string{
		"foo.frag.glsl.rs":      "foo.frag.glsl",
		"a/b/post.vert.glsl.rs": "a/b/post.vert.glsl",
	}
	for in, want := range tests {
		if got := OutputName(in); got != want {
			t.Errorf("OutputName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranslateDirIsolatesFailures(t *testing.T) {
	src := writeTree(t, map[string]string{
		"ok.frag.glsl.rs":      "fn main() {}",
		"sub/bad.vert.glsl.rs": "fn main() { let x: i32 = 1 }",
		"boom.frag.glsl.rs":    "fn boom() {}",
		"notes.rs":             "not a shader",
	})
	out := t.TempDir()
	ctx := trace.WithTracer(context.Background(), &faultyTracer{boom: "item:boom"})
	events := make(chan Event, 16)

	results, err := TranslateDir(ctx, DirOptions{Src: src, Out: out, Jobs: 2, Events: events})
	if err != nil {
		t.Fatalf("TranslateDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	got := byPath(results)

	if r := got["ok.frag.glsl.rs"]; r.Status != StatusOK {
		t.Errorf("ok file: %v %v", r.Status, r.Err)
	}
	data, err := os.ReadFile(filepath.Join(out, "ok.frag.glsl"))
	if err != nil || string(data) != "void main() {\n}\n" {
		t.Errorf("ok output = %q, %v", data, err)
	}

	bad := got["sub/bad.vert.glsl.rs"]
	var derr *Error
	if bad.Status != StatusFailed || !errors.As(bad.Err, &derr) {
		t.Errorf("bad file: %v %v", bad.Status, bad.Err)
	}
	if _, err := os.Stat(filepath.Join(out, "sub", "bad.vert.glsl")); !os.IsNotExist(err) {
		t.Errorf("failed file produced output: %v", err)
	}

	boom := got["boom.frag.glsl.rs"]
	var fault *diag.Fault
	if boom.Status != StatusFault || !errors.As(boom.Err, &fault) {
		t.Errorf("faulting file: %v %v", boom.Status, boom.Err)
	}

	var starts, dones int
	for ev := range events {
		switch ev.Kind {
		case EventStart:
			starts++
		case EventDone:
			dones++
			if ev.Total != 3 {
				t.Errorf("event total = %d", ev.Total)
			}
		}
	}
	if starts != 3 || dones != 3 {
		t.Errorf("events: %d starts, %d dones", starts, dones)
	}
}

func TestTranslateDirUsesCache(t *testing.T) {
	src := writeTree(t, map[string]string{"a.frag.glsl.rs": "fn main() {}"})
	out := t.TempDir()
	cache, err := OpenDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := TranslateDir(context.Background(), DirOptions{Src: src, Out: out, Cache: cache})
	if err != nil || first[0].Status != StatusOK {
		t.Fatalf("first run: %v %+v", err, first)
	}
	if err := os.Remove(filepath.Join(out, "a.frag.glsl")); err != nil {
		t.Fatal(err)
	}

	second, err := TranslateDir(context.Background(), DirOptions{Src: src, Out: out, Cache: cache})
	if err != nil || second[0].Status != StatusCached {
		t.Fatalf("second run: %v %+v", err, second)
	}
	data, err := os.ReadFile(filepath.Join(out, "a.frag.glsl"))
	if err != nil || string(data) != "void main() {\n}\n" {
		t.Errorf("cached output = %q, %v", data, err)
	}
}

func TestTranslateDirEmpty(t *testing.T) {
	events := make(chan Event)
	results, err := TranslateDir(context.Background(), DirOptions{Src: t.TempDir(), Events: events})
	if err != nil || len(results) != 0 {
		t.Errorf("results=%v err=%v", results, err)
	}
	if _, open := <-events; open {
		t.Error("events channel left open")
	}
}

func TestTranslateDirMissingSource(t *testing.T) {
	if _, err := TranslateDir(context.Background(), DirOptions{Src: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
