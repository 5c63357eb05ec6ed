package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fire/internal/diagfmt"
	"fire/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.fire|directory>",
	Short: "Tokenize a fire source file or directory",
	Long:  `Tokenize breaks down a fire source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		fs, files, err := driver.ParseDir(cmd.Context(), driver.Options{Root: filePath, MaxDiagnostics: maxDiag})
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		failed := false
		for _, f := range files {
			if err := printDiagnostics(cmd, f.Bag, fs, "pretty"); err != nil {
				return err
			}
			failed = failed || f.Bag.HasErrors()
			fmt.Fprintf(os.Stdout, "== %s ==\n", f.Path)
			if err := writeTokens(format, f); err != nil {
				return err
			}
		}
		if failed {
			return fmt.Errorf("tokenization reported errors")
		}
		return nil
	}

	result, err := driver.Tokenize(filePath, maxDiag)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if err := printDiagnostics(cmd, result.Bag, result.FileSet, "pretty"); err != nil {
		return err
	}
	if err := writeTokens(format, &driver.FileResult{Tokens: result.Tokens}); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("tokenization reported errors")
	}
	return nil
}

func writeTokens(format string, f *driver.FileResult) error {
	if format == "json" {
		return diagfmt.FormatTokensJSON(os.Stdout, f.Tokens)
	}
	return diagfmt.FormatTokensPretty(os.Stdout, f.Tokens)
}
