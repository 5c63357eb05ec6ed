package observ

import "time"

// Timer records wall time of sequential compiler phases.
// Не потокобезопасен: фазы меряет только горутина драйвера.
type Timer struct {
	now    func() time.Time
	phases []phase
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
	open  bool
}

func NewTimer() *Timer { return &Timer{now: time.Now} }

// Start opens a phase; the returned func closes it with a note.
// Closing twice keeps the first measurement.
func (t *Timer) Start(name string) func(note string) {
	t.phases = append(t.phases, phase{name: name, start: t.now(), open: true})
	idx := len(t.phases) - 1
	return func(note string) {
		p := &t.phases[idx]
		if !p.open {
			return
		}
		p.dur, p.note, p.open = t.now().Sub(p.start), note, false
	}
}

type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is the serialisable view of a Timer. Open phases are left out.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Note returns the note of the first phase called name.
func (r Report) Note(name string) string {
	for _, p := range r.Phases {
		if p.Name == name {
			return p.Note
		}
	}
	return ""
}

func (t *Timer) Report() Report {
	var r Report
	var total time.Duration
	for _, p := range t.phases {
		if p.open {
			continue
		}
		total += p.dur
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: ms(p.dur), Note: p.note})
	}
	if len(r.Phases) > 0 {
		r.TotalMS = ms(total)
	}
	return r
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
