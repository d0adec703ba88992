// Package lang parses and evaluates a small prefix-notation arithmetic
// language written as S-expressions.
//
// # Grammar
//
// Informal EBNF:
//
//	statement → '(' expr ')'
//	expr      → atom | funcall | '(' statement ')'
//	funcall   → (Operator | Text) expr*
//	atom      → Number | String | Nil
//
// A funcall's arguments run until the closing parenthesis or the end of
// input. Comments start with ';' and run to the end of the line.
//
// # Evaluation
//
// Parenthesized expressions are reduced while they are parsed: when
// [ParseExpr] meets an open parenthesis it parses the nested statement and
// replaces it with the value [Stateval] computes. By the time a funcall's
// argument list is complete every parenthesized argument is an atom.
//
// The builtins are + - * and /. Each folds left over its arguments, taking
// its numeric kind from the first one:
//
//	(+ 1 2)         ; 3
//	(+ 1.5 2)       ; 3.500000
//	(- 5 2 1)       ; 2
//	(* 2 (+ 1 1))   ; 4
//	(/ 7 2.0)       ; 3
//
// Names outside that set parse as funcalls and fail when evaluated.
//
// # Memory
//
// Every node built for one line comes from an [Arena] that is released as
// a whole when the line is done. Tokens and atoms view the line itself;
// [ObjectFromAtom] copies string bytes into the arena so the final value does
// not depend on the line buffer.
package lang
