// Package diag defines the diagnostic model shared by the lexer, parser and scoper.
//
// Compilation is fail-fast: the first error of a phase ends it. Phases emit
// through a Reporter; CountingReporter is the error-count side channel the
// parser consults to tell a soft non-match (nothing reported) from a fatal
// structural error. The driver turns the first error into a *FatalError and
// the CLI prints it as "path:line:col: error: message." before exiting with a
// non-zero status.
//
// Package diag does not perform any formatting beyond FatalError.Error;
// rendering lives in internal/diagfmt.
package diag
