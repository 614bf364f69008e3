package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAsIs prints the path the file was loaded with.
	PathModeAsIs PathMode = iota
	PathModeAbsolute
	PathModeRelative // относительно BaseDir
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   bool // строка исходника и каретка под span
	ShowCode  bool // "[SYN2001]" после severity
	ShowNotes bool
	PathMode  PathMode
	BaseDir   string
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	IncludeNotes     bool
	Max              int // обрезка вывода, не Bag
	PathMode         PathMode
	BaseDir          string
}
