// Package prof wires runtime/pprof and runtime/trace to CLI flags.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// Profiles names the output files of one run; empty paths are skipped.
type Profiles struct {
	CPU   string
	Mem   string
	Trace string
}

// Enabled reports whether any profile was requested.
func (p Profiles) Enabled() bool {
	return p.CPU != "" || p.Mem != "" || p.Trace != ""
}

// Session is an active profiling run. Mem is captured on Stop.
type Session struct {
	profiles  Profiles
	cpuFile   *os.File
	traceFile *os.File
}

// Start enables CPU profiling and tracing as requested.
func Start(p Profiles) (*Session, error) {
	s := &Session{profiles: p}
	if p.CPU != "" {
		f, err := os.Create(p.CPU)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, err
		}
		s.cpuFile = f
	}
	if p.Trace != "" {
		f, err := os.Create(p.Trace)
		if err != nil {
			s.stopCPU()
			return nil, err
		}
		if err := trace.Start(f); err != nil {
			_ = f.Close()
			s.stopCPU()
			return nil, err
		}
		s.traceFile = f
	}
	return s, nil
}

func (s *Session) stopCPU() error {
	if s.cpuFile == nil {
		return nil
	}
	pprof.StopCPUProfile()
	err := s.cpuFile.Close()
	s.cpuFile = nil
	return err
}

// Stop finishes every active profile and writes the heap profile.
// Safe to call on a nil Session and more than once.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	var errs []error
	if err := s.stopCPU(); err != nil {
		errs = append(errs, fmt.Errorf("cpu profile: %w", err))
	}
	if s.traceFile != nil {
		trace.Stop()
		if err := s.traceFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("trace: %w", err))
		}
		s.traceFile = nil
	}
	if s.profiles.Mem != "" {
		if err := writeMem(s.profiles.Mem); err != nil {
			errs = append(errs, fmt.Errorf("heap profile: %w", err))
		}
		s.profiles.Mem = ""
	}
	return errors.Join(errs...)
}

func writeMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
