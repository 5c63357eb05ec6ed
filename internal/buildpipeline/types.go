package buildpipeline

import "time"

// Stage is one step of `fire build` as shown to the user.
type Stage string

const (
	// StageParse: загрузка, лексер и парсер всех файлов.
	StageParse    Stage = "parse"
	StageRegister Stage = "register"
	StageLower    Stage = "lower"
	// StageEmit writes .kindling files.
	StageEmit Stage = "emit"
)

// Stages lists every stage in execution order.
var Stages = [...]Stage{StageParse, StageRegister, StageLower, StageEmit}

var stageLabels = map[Stage]string{
	StageParse:    "parsing",
	StageRegister: "registering",
	StageLower:    "lowering",
	StageEmit:     "emitting",
}

// Label is the progressive form used by the progress UI ("lowering").
func (s Stage) Label() string { return stageLabels[s] }

// Order returns the position of s in Stages, or -1.
func (s Stage) Order() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

// Fraction is the share of the build finished once s has started.
func (s Stage) Fraction() float64 {
	i := s.Order()
	if i < 0 {
		return 0
	}
	return float64(i+1) / float64(len(Stages)+1)
}

type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Terminal reports whether nothing more happens to the file after st.
func (st Status) Terminal() bool { return st == StatusDone || st == StatusError }

// Event is a progress update for one file, or for the whole build when
// File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

type ProgressSink interface {
	OnEvent(Event)
}

// Timings accumulates wall time per stage. The zero value is ready to use.
type Timings struct {
	d    [len(Stages)]time.Duration
	seen [len(Stages)]bool
}

// Set overwrites the duration of stage; unknown stages are ignored.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if i := stage.Order(); i >= 0 {
		t.d[i], t.seen[i] = dur, true
	}
}

// Add extends stage by dur. Parse is reported in two driver phases.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.Set(stage, t.Duration(stage)+dur)
}

func (t Timings) Has(stage Stage) bool {
	i := stage.Order()
	return i >= 0 && t.seen[i]
}

func (t Timings) Duration(stage Stage) time.Duration {
	if i := stage.Order(); i >= 0 {
		return t.d[i]
	}
	return 0
}

func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, s := range stages {
		total += t.Duration(s)
	}
	return total
}
