// Package main implements the fire CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fire/internal/prof"
	"fire/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "fire",
	Short:         "Fire language compiler",
	Long:          `Fire compiles .fire sources into Kindling templates`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Root().PersistentFlags()
		var p prof.Profiles
		p.CPU, _ = flags.GetString("cpuprofile")
		p.Mem, _ = flags.GetString("memprofile")
		p.Trace, _ = flags.GetString("trace")
		if !p.Enabled() {
			return nil
		}
		var err error
		profiling, err = prof.Start(p)
		return err
	},
}

// profiling останавливается в main, чтобы профиль писался и при ошибке команды.
var profiling *prof.Session

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("verbose", false, "log every compilation step")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to file")
	rootCmd.PersistentFlags().String("trace", "", "write a runtime trace to file")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if profErr := profiling.Stop(); profErr != nil {
		newLogger(rootCmd).Warn("profiling: %v", profErr)
	}
	if err != nil {
		newLogger(rootCmd).Error("%v", err)
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
