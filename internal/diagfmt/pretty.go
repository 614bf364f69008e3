package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rlc/internal/diag"
	"rlc/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид, по одной на строку:
//
//	<path>:<line>:<col>: error: <message>.
//
// С Context под строкой печатается исходник с кареткой ^~~~ по span, с
// ShowNotes следуют заметки в том же формате с severity "note".
// Идёт по bag.Items(); порядок задаёт вызывающий (bag.Sort()).
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPrinter(w, fs, opts)
	for _, d := range bag.Items() {
		p.diagnostic(d)
	}
}

// PrettyOne печатает одну диагностику, например из *diag.FatalError.
func PrettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	newPrinter(w, fs, opts).diagnostic(d)
}

type printer struct {
	w     io.Writer
	fs    *source.FileSet
	opts  PrettyOpts
	sev   map[diag.Severity]*color.Color
	caret *color.Color
	path  *color.Color
}

func newPrinter(w io.Writer, fs *source.FileSet, opts PrettyOpts) *printer {
	p := &printer{
		w:    w,
		fs:   fs,
		opts: opts,
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		caret: color.New(color.FgGreen, color.Bold),
		path:  color.New(color.Bold),
	}
	// цвет решает вызывающий, а не глобальный color.NoColor
	for _, c := range []*color.Color{p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo], p.caret, p.path} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) diagnostic(d diag.Diagnostic) {
	label := d.Severity.String()
	if p.opts.ShowCode {
		label += " [" + d.Code.ID() + "]"
	}
	p.line(d.Primary, d.Severity, label, d.Message)
	if !p.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		p.line(n.Span, diag.SevInfo, diag.SevInfo.String(), n.Msg)
	}
}

func (p *printer) line(sp source.Span, sev diag.Severity, label, msg string) {
	f := p.fs.Get(sp.File)
	if f == nil {
		fmt.Fprintf(p.w, "%s: %s.\n", p.sev[sev].Sprint(label), msg) //nolint:errcheck
		return
	}
	start, end := p.fs.Resolve(sp)
	path := formatPath(f.Path, p.opts.PathMode, p.opts.BaseDir)
	loc := fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
	fmt.Fprintf(p.w, "%s: %s: %s.\n", p.path.Sprint(loc), p.sev[sev].Sprint(label), msg) //nolint:errcheck
	if p.opts.Context {
		p.context(f.GetLine(start.Line), start, end)
	}
}

// context печатает строку исходника и подчёркивание. Ширина символов берётся
// из runewidth, табуляции повторяются как есть, так что каретка совпадает с
// колонкой и для широких символов.
func (p *printer) context(text string, start, end source.LineCol) {
	text = strings.TrimRight(text, "\r\n")
	fmt.Fprintf(p.w, "  %s\n", text) //nolint:errcheck

	col := min(max(int(start.Col)-1, 0), len(text))
	var pad strings.Builder
	for _, r := range text[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	stop := len(text)
	if end.Line == start.Line && int(end.Col)-1 <= len(text) {
		stop = int(end.Col) - 1
	}
	width := 1
	if stop > col {
		width = runewidth.StringWidth(text[col:stop])
	}
	mark := "^"
	if width > 1 {
		mark += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(p.w, "  %s%s\n", pad.String(), p.caret.Sprint(mark)) //nolint:errcheck
}
