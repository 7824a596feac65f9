package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/bcpeinhardt/hcl/internal/diag"
	"github.com/bcpeinhardt/hcl/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan, color.Bold)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с
// аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d.Primary, d.Severity.String(), d.Code.ID(), d.Message, opts)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeader(w, fs, n.Span, "NOTE", d.Code.ID(), n.Msg, opts)
				writeContext(w, fs, n.Span, opts)
			}
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev, code, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	path := file.FormatPath(opts.PathMode.formatMode(), fs.BaseDir())

	label := sev
	if opts.Color {
		label = severityColor(sev).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, label, code, msg)
}

func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)

	first := uint32(1)
	if ctx := uint32(max(int(opts.Context), 0)); start.Line > ctx {
		first = start.Line - ctx
	}
	for line := first; line <= start.Line; line++ {
		text := file.GetLine(line)
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "...")
		}
		fmt.Fprintf(w, "  %4d | %s\n", line, text)
	}

	// подчёркивание ^~~~ по Span, не выходя за конец строки
	lineText := file.GetLine(start.Line)
	col := int(start.Col) - 1
	if col > len(lineText) {
		col = len(lineText)
	}
	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if rest := len(lineText) - col; width > rest && rest > 0 {
		width = rest
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = sevErrorColor.Sprint(marker)
	}
	fmt.Fprintf(w, "       | %s%s\n", strings.Repeat(" ", col), marker)
}

func severityColor(sev string) *color.Color {
	switch sev {
	case diag.SevError.String():
		return sevErrorColor
	case diag.SevWarning.String():
		return sevWarningColor
	default:
		return sevInfoColor
	}
}
