package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColoredPlainWithoutColor(t *testing.T) {
	prevNoColor, prevVersion := color.NoColor, Version
	t.Cleanup(func() { color.NoColor, Version = prevNoColor, prevVersion })
	color.NoColor = true

	tests := []string{"0.1.0-dev", "1.2.3", "1.2.3-rc.1+build.7", "nightly"}
	for _, v := range tests {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() with Version=%q = %q", v, got)
		}
	}
}

func TestColoredAddsEscapes(t *testing.T) {
	prevNoColor, prevVersion := color.NoColor, Version
	t.Cleanup(func() { color.NoColor, Version = prevNoColor, prevVersion })
	color.NoColor = false
	Version = "1.2.3"

	if got := Colored(); got == Version {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
}

func TestCurrent(t *testing.T) {
	prev := GitCommit
	t.Cleanup(func() { GitCommit = prev })
	GitCommit = "abc123"

	info := Current()
	if info.Version != Version || info.GitCommit != "abc123" {
		t.Errorf("Current() = %+v", info)
	}
}
