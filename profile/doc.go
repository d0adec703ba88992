// Package profile provides optional runtime profiling for lambda.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof .
//	./lambda --pprof-mode cpu eval '(* 2 (+ 1 1))'
//	go tool pprof ./lambda ~/.cache/lambda/pprof/cpu.pprof
//
// Without the tag [Modes] is empty and [Settings.Start] returns a no-op, so
// callers never need their own build constraints.
//
// Profiles are written to the configured directory, one file per mode
// (cpu.pprof, mem.pprof, trace.out, ...). With the tag the package also
// imports [net/http/pprof], registering its handlers on the default mux.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
