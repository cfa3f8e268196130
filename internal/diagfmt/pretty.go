package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"glassful/internal/diag"
	"glassful/internal/source"
)

const tabWidth = 4

type palette struct {
	sev      map[diag.Severity]*color.Color
	code     *color.Color
	location *color.Color
	gutter   *color.Color
	caret    *color.Color
	note     *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevBug:     mk(color.FgMagenta, color.Bold),
		},
		code:     mk(color.Bold),
		location: mk(color.FgWhite, color.Bold),
		gutter:   mk(color.FgBlue),
		caret:    mk(color.FgRed, color.Bold),
		note:     mk(color.FgCyan),
	}
}

// Pretty форматирует диагностики в человекочитаемый вид, в порядке bag.Items():
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | let x = 1 +;
//	     |            ^
//	note: <path>:<line>:<col>: <Message>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "\n... %d more diagnostics not shown\n", n)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.code
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.location.Sprint(location(fs, d.Primary, opts.PathMode)),
		sev.Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message)
	snippet(w, fs, d.Primary, opts, pal)
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "%s %s: %s\n", pal.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
	}
}

// Short prints one line per diagnostic, without source context.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n", location(fs, d.Primary, mode), d.Severity, d.Code.ID(), d.Message)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil || !fs.HasFile(sp.File) {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(fs, sp.File, mode), start.Line, start.Col)
}

func snippet(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts, pal palette) {
	if fs == nil || !fs.HasFile(sp.File) {
		return
	}
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(file.GetLine(ln))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := file.GetLine(start.Line)
	col := clampCol(start.Col, line)
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	endCol := len(line)
	if end.Line == start.Line {
		endCol = clampCol(end.Col, line)
	}
	width := runewidth.StringWidth(expandTabs(line[col:max(endCol, col)]))
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", pad),
		pal.caret.Sprint(marker))
}

// clampCol turns a 1-based byte column into an offset within line.
func clampCol(col uint32, line string) int {
	if col == 0 {
		return 0
	}
	return min(int(col-1), len(line))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
