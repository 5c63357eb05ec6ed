package diag

import "fire/internal/source"

// Reporter receives finished diagnostics from a phase.
// *Bag, ReporterFunc and *Deduper implement it.
type Reporter interface {
	Report(d Diagnostic)
}

type ReporterFunc func(d Diagnostic)

func (f ReporterFunc) Report(d Diagnostic) {
	if f != nil {
		f(d)
	}
}

// Report adds d, silently dropping it once the limit is reached.
func (b *Bag) Report(d Diagnostic) {
	if b != nil {
		b.Add(d)
	}
}

type dedupKey struct {
	code Code
	sev  Severity
	span source.Span
	msg  string
}

// Deduper forwards a diagnostic to next only the first time its
// code, severity, primary span and message are seen. Notes are not compared.
type Deduper struct {
	next Reporter
	seen map[dedupKey]struct{}
	// Dropped counts suppressed repeats.
	Dropped int
}

func NewDeduper(next Reporter) *Deduper {
	return &Deduper{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *Deduper) Report(d Diagnostic) {
	if r == nil {
		return
	}
	key := dedupKey{code: d.Code, sev: d.Severity, span: d.Primary, msg: d.Message}
	if _, dup := r.seen[key]; dup {
		r.Dropped++
		return
	}
	r.seen[key] = struct{}{}
	if r.next != nil {
		r.next.Report(d)
	}
}
