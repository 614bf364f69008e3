package diag

import (
	"rlc/internal/source"
)

// FatalError carries the diagnostic that stopped compilation. The driver
// returns it; the CLI prints it and exits non-zero.
type FatalError struct {
	Diag Diagnostic
	Pos  source.Position
}

// NewFatal resolves the primary span of d against fs.
func NewFatal(fs *source.FileSet, d Diagnostic) *FatalError {
	return &FatalError{Diag: d, Pos: fs.Position(d.Primary)}
}

// Error formats the classic "path:line:col: error: message." line.
func (e *FatalError) Error() string {
	return e.Pos.String() + ": " + e.Diag.Severity.String() + ": " + e.Diag.Message + "."
}
