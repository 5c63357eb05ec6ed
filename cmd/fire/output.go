package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fire/internal/console"
	"fire/internal/diag"
	"fire/internal/diagfmt"
	"fire/internal/source"
)

// switchEnabled reads an auto|on|off flag and resolves it for the given stream.
func switchEnabled(flags *pflag.FlagSet, name string, f *os.File) (bool, error) {
	value, err := flags.GetString(name)
	if err != nil {
		return false, err
	}
	mode, err := console.ParseMode(name, value)
	if err != nil {
		return false, err
	}
	return mode.Enabled(isTerminal(f)), nil
}

// colorEnabled resolves --color for the given stream.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	on, err := switchEnabled(cmd.Root().PersistentFlags(), "color", f)
	return err == nil && on
}

func newLogger(cmd *cobra.Command) *console.Logger {
	flags := cmd.Root().PersistentFlags()
	quiet, _ := flags.GetBool("quiet")
	verbose, _ := flags.GetBool("verbose")
	return console.New(os.Stderr, console.Options{
		Color:   colorEnabled(cmd, os.Stderr),
		Quiet:   quiet,
		Verbose: verbose,
	})
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

// printDiagnostics выводит диагностику в stderr, если есть.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, format string) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	switch format {
	case "", "pretty":
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd, os.Stderr),
			Context:   1,
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: true,
		})
		return nil
	case "short":
		_, err := fmt.Fprintln(os.Stderr, diag.FormatShort(bag.Items(), fs))
		return err
	case "json":
		return diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		})
	default:
		return fmt.Errorf("unknown diagnostics format: %s", format)
	}
}
