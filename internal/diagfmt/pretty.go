package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"aoc/internal/diag"
	"aoc/internal/source"
)

type palette struct {
	err, warn, info, code, path, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan, color.Bold),
		code:  color.New(color.FgMagenta),
		path:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		note:  color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку входа с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}

	for _, d := range items {
		loc := locationString(fs, d.Primary, opts.PathMode, opts.BaseDir)
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			pal.path.Sprint(loc),
			pal.severity(d.Severity).Sprint(d.Severity),
			pal.code.Sprint(d.Code.ID()),
			d.Message,
		); err != nil {
			return err
		}
		if err := writeSnippet(w, fs, d.Primary, pal); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nloc := locationString(fs, n.Span, opts.PathMode, opts.BaseDir)
			if _, err := fmt.Fprintf(w, "  %s %s: %s\n", pal.note.Sprint("note:"), nloc, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func locationString(fs *source.FileSet, sp source.Span, mode PathMode, base string) string {
	f := fileOf(fs, sp)
	if f == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(f.Path, mode, base), start.Line, start.Col)
}

func fileOf(fs *source.FileSet, sp source.Span) *source.File {
	if fs == nil {
		return nil
	}
	return fs.Get(sp.File)
}

// writeSnippet prints the line holding sp and a caret row under it.
// Columns are measured in display cells so wide runes keep the caret aligned.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, pal palette) error {
	f := fileOf(fs, sp)
	if f == nil {
		return nil
	}
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return nil
	}

	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(max(int(end.Col)-1, from), len(line))
	}
	pad := runewidth.StringWidth(line[:from])
	width := max(runewidth.StringWidth(line[from:to]), 1)

	underline := "^" + strings.Repeat("~", width-1)
	_, err := fmt.Fprintf(w, "  %s\n  %s%s\n", line, strings.Repeat(" ", pad), pal.caret.Sprint(underline))
	return err
}
