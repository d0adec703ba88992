package profile

import "slices"

// Settings selects what to profile and where profiles are written.
type Settings struct {
	Mode  string // one of [Modes]; empty disables profiling
	Dir   string // output directory; empty uses the working directory
	Quiet bool   // suppress the profiler's own log lines
}

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Start begins profiling as configured by s. It returns a no-op [Stopper]
// when s has no mode or the binary was built without the pprof tag.
func (s Settings) Start() Stopper {
	if s.Mode == "" {
		return nop{}
	}

	return start(s)
}

// Supported reports whether mode can be profiled by this build.
func Supported(mode string) bool {
	return slices.Contains(Modes(), mode)
}

type nop struct{}

func (nop) Stop() {}
