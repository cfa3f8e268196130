package main

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"glassful/internal/driver"
	"glassful/internal/ui"
)

type buildOutcome struct {
	results []driver.FileResult
	err     error
}

func runBuildWithUI(ctx context.Context, title string, opts driver.DirOptions) ([]driver.FileResult, error) {
	paths, err := driver.ListSources(opts.Src)
	if err != nil {
		return nil, err
	}
	files := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(opts.Src, p)
		if err != nil {
			rel = filepath.Base(p)
		}
		files[i] = rel
	}

	events := make(chan driver.Event, 256)
	opts.Events = events
	outcomeCh := make(chan buildOutcome, 1)
	go func() {
		res, err := driver.TranslateDir(ctx, opts)
		outcomeCh <- buildOutcome{results: res, err: err}
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// после ctrl+c модель больше не читает канал; дочитываем, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
