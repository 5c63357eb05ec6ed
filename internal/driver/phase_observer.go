package driver

import (
	"fmt"
	"time"
)

// Имена фаз, о которых сообщают ParseDir и Compile.
const (
	PhaseLoad     = "load"
	PhaseParse    = "parse"
	PhaseRegister = "register"
	PhaseLower    = "lower"
)

type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

func (s PhaseStatus) String() string {
	if s == PhaseEnd {
		return "end"
	}
	return "start"
}

// PhaseEvent marks a phase boundary. Elapsed is set on PhaseEnd only.
type PhaseEvent struct {
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

func (e PhaseEvent) String() string { return fmt.Sprintf("%s:%s", e.Name, e.Status) }

// PhaseObserver is called synchronously on the driver goroutine, never
// from parse workers.
type PhaseObserver func(PhaseEvent)

// begin reports the start of name and returns the matching end call.
func (o PhaseObserver) begin(name string) func() {
	if o == nil {
		return func() {}
	}
	o(PhaseEvent{Name: name, Status: PhaseStart})
	start := time.Now()
	return func() {
		o(PhaseEvent{Name: name, Status: PhaseEnd, Elapsed: time.Since(start)})
	}
}
