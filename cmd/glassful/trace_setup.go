package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glassful/internal/trace"
)

// activeTracer is closed by main once the command finished, whatever the outcome.
var activeTracer = trace.Nop

// setupTracing reads the trace flags and stores the tracer in the command
// context.
func setupTracing(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	output, err := pf.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace without a level means phase-level tracing
	if output != "" && level == trace.LevelOff && !pf.Changed("trace-level") {
		level = trace.LevelPhase
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tracer, err := trace.New(trace.Config{Level: level, Format: format, OutputPath: output})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer
	cmd.SetContext(trace.WithTracer(ctx, tracer))
	return nil
}

func closeTracing() {
	if err := activeTracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
	activeTracer = trace.Nop
}
