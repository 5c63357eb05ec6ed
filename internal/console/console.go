// Package console prints the CLI's human-facing status lines.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Mode is an auto|on|off switch resolved against a terminal.
// Both --color and --ui take it.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ParseMode accepts auto|on|off, case-insensitively; flag names the
// option in the error.
func ParseMode(flag, value string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ModeAuto, nil
	case "on":
		return ModeOn, nil
	case "off":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

// Enabled resolves the mode against whether the output is a terminal.
func (m Mode) Enabled(isTTY bool) bool {
	switch m {
	case ModeOn:
		return true
	case ModeOff:
		return false
	default:
		return isTTY
	}
}

// Logger writes prefixed status lines. Quiet drops Info and Success;
// Verbose lines are shown only when Verbose is set. Warn and Error always print.
type Logger struct {
	out     io.Writer
	quiet   bool
	verbose bool

	info, warn, fail, ok, dim *color.Color
}

// Options configure a Logger.
type Options struct {
	Color   bool
	Quiet   bool
	Verbose bool
}

func New(out io.Writer, opts Options) *Logger {
	l := &Logger{
		out:     out,
		quiet:   opts.Quiet,
		verbose: opts.Verbose,
		info:    color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		fail:    color.New(color.FgRed, color.Bold),
		ok:      color.New(color.FgGreen, color.Bold),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{l.info, l.warn, l.fail, l.ok, l.dim} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return l
}

func (l *Logger) line(c *color.Color, tag, format string, args ...any) {
	if l.out == nil {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", c.Sprint(tag), fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	if l == nil || l.quiet {
		return
	}
	l.line(l.info, "info:", format, args...)
}

func (l *Logger) Success(format string, args ...any) {
	if l == nil || l.quiet {
		return
	}
	l.line(l.ok, "done:", format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	if l == nil {
		return
	}
	l.line(l.warn, "warning:", format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	if l == nil {
		return
	}
	l.line(l.fail, "error:", format, args...)
}

// Verbose — подробности по шагам компиляции (--verbose).
func (l *Logger) Verbose(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.line(l.dim, "  >", format, args...)
}

// IsVerbose reports whether Verbose lines are printed.
func (l *Logger) IsVerbose() bool { return l != nil && l.verbose }
