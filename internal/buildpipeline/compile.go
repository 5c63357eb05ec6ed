package buildpipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fire/internal/config"
	"fire/internal/driver"
)

// ErrDiagnostics is returned when compilation reported at least one error.
var ErrDiagnostics = errors.New("diagnostics reported errors")

// CompileRequest configures the shared compilation pipeline.
type CompileRequest struct {
	// Root is the source directory.
	Root                  string
	Settings              config.Settings
	MaxDiagnostics        int
	Jobs                  int
	Cache                 *driver.DiskCache
	Memory                *driver.MemoryCache
	AllowDiagnosticsError bool
	Progress              ProgressSink
	// Files are display names for progress events, usually ListSources output.
	Files []string
}

// CompileResult captures compilation artefacts and stage timings.
type CompileResult struct {
	Driver  *driver.Result
	Timings Timings
}

// Compile runs parsing, registration and lowering into Kindling headers.
func Compile(ctx context.Context, req *CompileRequest) (CompileResult, error) {
	var result CompileResult
	if ctx == nil {
		ctx = context.Background()
	}
	if req == nil {
		return result, fmt.Errorf("missing compile request")
	}
	if req.Root == "" {
		return result, fmt.Errorf("missing source directory")
	}

	if req.Progress != nil && len(req.Files) > 0 {
		emitQueued(req.Progress, req.Files)
	}
	phases := &phaseObserver{
		sink:    req.Progress,
		files:   req.Files,
		timings: &result.Timings,
	}

	opts := driver.Options{
		Root:           req.Root,
		MaxDiagnostics: req.MaxDiagnostics,
		Jobs:           req.Jobs,
		Cache:          req.Cache,
		Memory:         req.Memory,
		Observer:       phases.OnPhase,
	}
	res, err := driver.Compile(ctx, opts, req.Settings)
	result.Driver = res
	if err != nil {
		emitStage(req.Progress, req.Files, phases.current(), StatusError, err, 0)
		return result, err
	}
	if res.Bag.HasErrors() && !req.AllowDiagnosticsError {
		err = fmt.Errorf("%w: %d error(s)", ErrDiagnostics, res.Bag.ErrorCount())
		emitStage(req.Progress, req.Files, StageLower, StatusError, err, 0)
		return result, err
	}
	return result, nil
}

// phaseObserver переводит фазы драйвера в события стадий.
type phaseObserver struct {
	sink    ProgressSink
	files   []string
	timings *Timings
	last    Stage
}

var phaseStages = map[string]Stage{
	driver.PhaseLoad:     StageParse,
	driver.PhaseParse:    StageParse,
	driver.PhaseRegister: StageRegister,
	driver.PhaseLower:    StageLower,
}

// OnPhase updates the progress UI and stage timings based on compiler phase events.
func (p *phaseObserver) OnPhase(ev driver.PhaseEvent) {
	stage, ok := phaseStages[ev.Name]
	if !ok {
		return
	}
	switch ev.Status {
	case driver.PhaseStart:
		if stage == p.last {
			return
		}
		p.last = stage
		emitStage(p.sink, p.files, stage, StatusWorking, nil, 0)
	case driver.PhaseEnd:
		p.timings.Add(stage, ev.Elapsed)
	}
}

func (p *phaseObserver) current() Stage {
	if p.last == "" {
		return StageParse
	}
	return p.last
}

func emitQueued(sink ProgressSink, files []string) {
	if sink == nil {
		return
	}
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: StageParse, Status: StatusQueued})
	}
}

func emitStage(sink ProgressSink, files []string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	for _, file := range files {
		sink.OnEvent(Event{File: file, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
	}
}
