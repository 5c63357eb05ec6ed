package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"fire/internal/diag"
	"fire/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		sev := p.severity(d.Severity)
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			location(fs, d.Primary, opts.PathMode),
			sev.Sprint(strings.ToUpper(d.Severity.String())),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		snippet(w, fs, d.Primary, int(opts.Context), p)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
		}
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if int(sp.File) >= fs.Len() {
		return "?"
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", f.FormatPath(mode.key(), fs.BaseDir()), start.Line, start.Col)
}

// snippet печатает строку со span и context строк над ней, под ней каретку.
func snippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, p palette) {
	if int(sp.File) >= fs.Len() {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	first := start.Line
	if back, err := safecast.Conv[uint32](context); err == nil {
		first = 1
		if start.Line > back {
			first = start.Line - back
		}
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		line := expandTabs(f.GetLine(ln))
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gutterWidth, ln), line)
	}

	raw := f.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(raw) {
		col = len(raw)
	}
	lastCol := len(raw)
	if end.Line == start.Line && int(end.Col)-1 < lastCol {
		lastCol = int(end.Col) - 1
	}
	if lastCol < col {
		lastCol = col
	}
	pad := runewidth.StringWidth(expandTabs(raw[:col]))
	width := runewidth.StringWidth(expandTabs(raw[col:lastCol]))
	fmt.Fprintf(w, "%s %s%s\n",
		p.gutter.Sprint(strings.Repeat(" ", gutterWidth)+" |"),
		strings.Repeat(" ", pad),
		p.caret.Sprint(caret(width)))
}

func caret(width int) string {
	if width <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", width-1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
