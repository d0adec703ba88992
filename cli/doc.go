// Package cli builds the lambda command line on [github.com/alecthomas/kong].
//
// Without a command, lambda starts the read-evaluate loop:
//
//	lambda                        # line editor on a terminal, plain loop otherwise
//	echo '(+ 1 2)' | lambda       # prints 3
//	lambda eval '(* 2 (+ 1 1))' '(/ 1 0)'
//	lambda eval -o yaml '(+ 1.5 2)'
//	lambda tokens '(+ 12 "a")'
//	lambda tree --arena '(- 5 (* 2 2))'
//
// # Configuration
//
// Flag defaults can be overridden from files in the user configuration
// directory (for example ~/.config/lambda on Linux). config.json is read
// with [kong.JSON]; config.yaml, as written by "lambda init", is read by a
// YAML resolver that accepts flat or nested keys:
//
//	log-level: debug
//	log:
//	  pretty: false
//
// Command-line flags take precedence over both files.
//
// # Logging
//
//   - --log-level: trace, debug, info, warn or error
//   - --log-format: json or text
//   - --log-time-layout: a time package layout name, a custom layout, or none
//   - --[no-]log-caller, --[no-]log-pretty
//
// Logging flags are applied before parsing begins, wherever they appear.
//
// # Profiling
//
// Built with the pprof tag, the --pprof-mode and --pprof-dir flags profile
// the whole run:
//
//	go build -tags pprof .
//	lambda --pprof-mode cpu eval '(* 2 (+ 1 1))'
//
// Profiles default to the pprof directory under the user cache directory.
package cli
