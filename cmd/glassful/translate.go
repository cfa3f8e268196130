package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"glassful/internal/driver"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] <file.glsl.rs|->",
	Short: "Translate one source file to GLSL",
	Long: `Translate reads one source file ("-" for stdin) and prints the GLSL
translation, or the diagnostics that stopped it.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringP("output", "o", "", "write GLSL to this file instead of stdout")
	translateCmd.Flags().Bool("isolated", false, "run in a fault-isolated worker; report only success or failure")
}

func readSource(cmd *cobra.Command, path string) (name, src string, err error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return path, string(data), nil
}

func runTranslate(cmd *cobra.Command, args []string) error {
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	isolated, err := cmd.Flags().GetBool("isolated")
	if err != nil {
		return fmt.Errorf("failed to get isolated flag: %w", err)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	name, src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var glsl string
	if isolated {
		out, ok := driver.TryTranslate(ctx, name, src)
		if !ok {
			return fmt.Errorf("translation of %s failed", name)
		}
		glsl = out
	} else {
		timer := newTimer(cmd)
		glsl, err = driver.TranslateWithOptions(ctx, name, src, driver.Options{MaxDiagnostics: maxDiags, Timer: timer})
		printTimings(cmd, timer)
		if err != nil {
			return renderDiagnostics(cmd, cmd.ErrOrStderr(), err)
		}
	}

	if outPath == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), glsl)
		return err
	}
	if err := os.WriteFile(outPath, []byte(glsl), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
