package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"glassful/internal/diag"
	"glassful/internal/observ"
	"glassful/internal/trace"
)

// SourceSuffix marks translatable files; the output name drops the ".rs".
const SourceSuffix = ".glsl.rs"

// DirOptions configure TranslateDir.
type DirOptions struct {
	Src            string
	Out            string // "" = next to the sources
	Jobs           int    // 0 = GOMAXPROCS
	MaxDiagnostics int
	Cache          *DiskCache    // nil disables caching
	Events         chan<- Event  // closed by TranslateDir when it returns
	Timer          *observ.Timer // shared by all workers
}

// Status is the fate of one file.
type Status uint8

const (
	StatusPending Status = iota
	StatusOK
	StatusCached
	StatusFailed // user diagnostics
	StatusFault  // internal fault, recovered
	StatusIOError
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusOK:
		return "ok"
	case StatusCached:
		return "cached"
	case StatusFailed:
		return "failed"
	case StatusFault:
		return "fault"
	case StatusIOError:
		return "io-error"
	default:
		return "unknown"
	}
}

// EventKind distinguishes progress events.
type EventKind uint8

const (
	EventStart EventKind = iota + 1
	EventDone
)

// Event reports progress of TranslateDir.
type Event struct {
	Kind   EventKind
	Path   string // relative to Src
	Status Status // valid for EventDone
	Index  int
	Total  int
}

// FileResult is the outcome for one source file.
type FileResult struct {
	Path    string // relative to Src
	OutPath string
	Status  Status
	Err     error // *Error, *diag.Fault or an I/O error
}

// ListSources returns the sorted paths of all sources under dir.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// OutputName maps "a/foo.frag.glsl.rs" to "a/foo.frag.glsl".
func OutputName(rel string) string {
	return strings.TrimSuffix(rel, ".rs")
}

// TranslateDir translates every source under opts.Src in parallel. One
// file's failure, including an internal fault, never affects the others.
// The returned error is non-nil only when the directory cannot be listed
// or ctx is canceled; per-file problems live in the results.
func TranslateDir(ctx context.Context, opts DirOptions) ([]FileResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}
	root := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "build", trace.CurrentSpan(ctx)).WithExtra("dir", opts.Src)
	defer root.End("")
	ctx = trace.WithSpan(ctx, root)

	files, err := ListSources(opts.Src)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	out := opts.Out
	if out == "" {
		out = opts.Src
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		rel, err := filepath.Rel(opts.Src, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		results[i] = FileResult{Path: rel, OutPath: filepath.Join(out, OutputName(rel))}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := emit(gctx, opts.Events, Event{Kind: EventStart, Path: rel, Index: i, Total: len(files)}); err != nil {
				return err
			}
			translateOne(gctx, path, &results[i], opts)
			return emit(gctx, opts.Events, Event{Kind: EventDone, Path: rel, Status: results[i].Status, Index: i, Total: len(files)})
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func emit(ctx context.Context, ch chan<- Event, ev Event) error {
	if ch == nil {
		return nil
	}
	select {
	case ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func translateOne(ctx context.Context, path string, res *FileResult, opts DirOptions) {
	data, err := os.ReadFile(path)
	if err != nil {
		res.Status, res.Err = StatusIOError, fmt.Errorf("read %s: %w", path, err)
		return
	}
	src := string(data)
	key := CacheKey(src)

	if hit, ok, err := opts.Cache.Get(key); err == nil && ok {
		if err := writeOutput(res.OutPath, hit.Output); err != nil {
			res.Status, res.Err = StatusIOError, err
			return
		}
		res.Status = StatusCached
		return
	}

	glsl, err := Isolated(ctx, res.Path, src, Options{MaxDiagnostics: opts.MaxDiagnostics, Timer: opts.Timer})
	if err != nil {
		var fault *diag.Fault
		switch {
		case errors.As(err, &fault):
			res.Status = StatusFault
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			res.Status = StatusPending
		default:
			res.Status = StatusFailed
		}
		res.Err = err
		return
	}
	if err := writeOutput(res.OutPath, glsl); err != nil {
		res.Status, res.Err = StatusIOError, err
		return
	}
	res.Status = StatusOK
	// кэш: оптимизация; ошибка записи не портит результат
	_ = opts.Cache.Put(key, &CachePayload{SourceHash: key, Output: glsl})
}

func writeOutput(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
