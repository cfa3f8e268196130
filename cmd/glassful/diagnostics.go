package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"glassful/internal/diag"
	"glassful/internal/diagfmt"
	"glassful/internal/driver"
	"glassful/internal/observ"
)

// reportedError marks an error whose details already went to stderr.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func errorAlreadyReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

// renderDiagnostics prints a *driver.Error in the format chosen by
// --diag-format. Other errors are returned unchanged.
func renderDiagnostics(cmd *cobra.Command, w io.Writer, err error) error {
	var derr *driver.Error
	if !errors.As(err, &derr) {
		return err
	}
	derr.Bag.Sort()
	format, _ := cmd.Root().PersistentFlags().GetString("diag-format")
	switch format {
	case "json":
		if jerr := diagfmt.JSON(w, derr.Bag, derr.Files, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); jerr != nil {
			return fmt.Errorf("failed to write diagnostics: %w", jerr)
		}
	case "short":
		diagfmt.Short(w, derr.Bag, derr.Files, diagfmt.PathModeAuto)
	default:
		diagfmt.Pretty(w, derr.Bag, derr.Files, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   2,
			ShowNotes: true,
		})
	}
	return reportedError{err: err}
}

func describeFault(err error) (string, bool) {
	var fault *diag.Fault
	if !errors.As(err, &fault) {
		return "", false
	}
	return fmt.Sprintf("internal fault %s: %s (this is a bug in glassful)", fault.Code.ID(), fault.Msg), true
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

// newTimer returns a timer when --timings is set, nil otherwise.
func newTimer(cmd *cobra.Command) *observ.Timer {
	if on, _ := cmd.Root().PersistentFlags().GetBool("timings"); on {
		return observ.NewTimer()
	}
	return nil
}

func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
}
