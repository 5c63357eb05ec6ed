package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fire/internal/ast"
	"fire/internal/diagfmt"
	"fire/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.fire|directory>",
	Short: "Parse a fire source file or directory and output AST",
	Long:  `Parse analyzes a fire source file or all *.fire files in a directory and outputs their Abstract Syntax Trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiag, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiag)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := printDiagnostics(cmd, result.Bag, result.FileSet, "pretty"); err != nil {
			return err
		}
		if result.AST == nil {
			return fmt.Errorf("parsing reported errors")
		}
		return writeAST(format, result.AST)
	}

	fs, files, err := driver.ParseDir(cmd.Context(), driver.Options{Root: filePath, MaxDiagnostics: maxDiag, Jobs: jobs})
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	failed := 0
	for _, f := range files {
		if err := printDiagnostics(cmd, f.Bag, fs, "pretty"); err != nil {
			return err
		}
		if f.AST == nil {
			failed++
			continue
		}
		if err := writeAST(format, f.AST); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(files))
	}
	return nil
}

func writeAST(format string, file *ast.File) error {
	if format == "json" {
		return diagfmt.FormatASTJSON(os.Stdout, file)
	}
	return diagfmt.FormatASTPretty(os.Stdout, file)
}
