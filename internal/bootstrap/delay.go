package bootstrap

import "time"

// Delayer paces user-visible transitions during bootstrap. The pauses exist
// for perceptibility, not synchronization; tests swap in a recorder so
// sequencing can be asserted without wall-clock cost.
type Delayer interface {
	Pause(d time.Duration)
}

type sleeper struct{}

func (sleeper) Pause(d time.Duration) {
	time.Sleep(d)
}

// Sleeper returns the wall-clock Delayer used in production.
func Sleeper() Delayer {
	return sleeper{}
}
