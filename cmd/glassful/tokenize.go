package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"glassful/internal/diagfmt"
	"glassful/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.glsl.rs|->",
	Short: "Dump the tokens of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	name, src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	tokens, fs, lexErr := driver.Tokenize(name, src, maxDiags)
	// токены печатаем даже при ошибках лексера
	if format == "json" {
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	} else {
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, fs)
	}
	if err != nil {
		return err
	}
	if lexErr != nil {
		return renderDiagnostics(cmd, cmd.ErrOrStderr(), lexErr)
	}
	return nil
}
