package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glassful/internal/prof"
)

// activeProfile is stopped by finishRun; the heap profile is written then.
var activeProfile *prof.Session

// setupProfiling reads the profiling flags and starts the requested profilers.
func setupProfiling(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = pf.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = pf.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = pf.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	activeProfile = session
	return nil
}

func stopProfiling() {
	if err := activeProfile.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "profile: %v\n", err)
	}
	activeProfile = nil
}

// finishRun releases everything persistentPreRun set up. It runs after
// Execute whether or not the command failed.
func finishRun() {
	closeTracing()
	stopProfiling()
}
