package diagfmt

import (
	"encoding/json"
	"io"

	"fire/internal/diag"
	"fire/internal/source"
)

// JSONSpan is a resolved span. Start/End are nil unless positions were asked for.
type JSONSpan struct {
	File  string          `json:"file"`
	Bytes [2]uint32       `json:"bytes"`
	Start *source.LineCol `json:"start,omitempty"`
	End   *source.LineCol `json:"end,omitempty"`
}

type JSONNote struct {
	Message string   `json:"message"`
	At      JSONSpan `json:"at"`
}

type JSONDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	At       JSONSpan   `json:"at"`
	Notes    []JSONNote `json:"notes,omitempty"`
}

// JSONReport is the document written by `--diag-format json`.
type JSONReport struct {
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) span(sp source.Span) JSONSpan {
	out := JSONSpan{File: "?", Bytes: [2]uint32{sp.Start, sp.End}}
	if b.fs == nil || int(sp.File) >= b.fs.Len() {
		return out
	}
	out.File = b.fs.Get(sp.File).FormatPath(b.opts.PathMode.key(), b.fs.BaseDir())
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(sp)
		out.Start, out.End = &start, &end
	}
	return out
}

func (b jsonBuilder) diagnostic(d diag.Diagnostic) JSONDiagnostic {
	out := JSONDiagnostic{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		At:       b.span(d.Primary),
	}
	if b.opts.IncludeNotes {
		for _, n := range d.Notes {
			out.Notes = append(out.Notes, JSONNote{Message: n.Msg, At: b.span(n.Span)})
		}
	}
	return out
}

// BuildJSON converts the bag without encoding it. Opts.Max trims the
// listing; the counters always reflect the whole bag.
func BuildJSON(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) JSONReport {
	rep := JSONReport{Diagnostics: []JSONDiagnostic{}}
	if bag == nil {
		return rep
	}
	b := jsonBuilder{fs: fs, opts: opts}
	for i, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			rep.Errors++
		case diag.SevWarning:
			rep.Warnings++
		}
		if opts.Max > 0 && i >= opts.Max {
			continue
		}
		rep.Diagnostics = append(rep.Diagnostics, b.diagnostic(d))
	}
	return rep
}

func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildJSON(bag, fs, opts))
}
