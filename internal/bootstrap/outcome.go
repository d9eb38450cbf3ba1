package bootstrap

import "fmt"

// Class partitions stage results: a stage either advances bootstrap,
// degrades it with a documented fallback, or aborts it.
type Class int

const (
	ClassSuccess Class = iota
	ClassDegraded
	ClassFatal
)

// Outcome is the explicit result of one bootstrap stage. Errors never cross
// a stage boundary raw; the driver consumes outcomes.
type Outcome struct {
	Class   Class
	Err     error  // fatal cause
	Warning string // degraded explanation
	Notify  bool   // surface the warning on the splash and pause
}

func Succeed() Outcome {
	return Outcome{}
}

func Fail(err error) Outcome {
	return Outcome{Class: ClassFatal, Err: err}
}

// Degrade records a fallback that is logged only.
func Degrade(warning string) Outcome {
	return Outcome{Class: ClassDegraded, Warning: warning}
}

// DegradeVisible additionally holds the warning on the splash for a
// perceptible moment; the user might otherwise never notice the fallback.
func DegradeVisible(warning string) Outcome {
	return Outcome{Class: ClassDegraded, Warning: warning, Notify: true}
}

// StageError names the bootstrap stage that failed fatally.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
