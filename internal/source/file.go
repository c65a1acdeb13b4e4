package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// Text returns the whole content as a string.
func (f *File) Text() string {
	return string(f.Content)
}

// Lines splits the content into rows. A single trailing newline does not
// produce an empty last row.
func (f *File) Lines() []string {
	text := strings.TrimSuffix(string(f.Content), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// lineStart returns the byte offset of 0-based row.
func (f *File) lineStart(row int) (uint32, bool) {
	switch {
	case row < 0:
		return 0, false
	case row == 0:
		return 0, true
	case row-1 < len(f.LineIdx):
		return f.LineIdx[row-1] + 1, true
	default:
		return 0, false
	}
}

// GetLine returns line lineNum (1-based) without its newline, or "".
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	start, ok := f.lineStart(int(lineNum - 1))
	if !ok {
		return ""
	}
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if int(lineNum-1) < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// PosSpan maps grid cells [startCol, endCol] of 0-based row to a byte span.
// Cells outside the file collapse to an empty span at the end of content.
func (f *File) PosSpan(row, startCol, endCol int) Span {
	size, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	base, ok := f.lineStart(row)
	if !ok || startCol < 0 || endCol < startCol {
		return Span{File: f.ID, Start: size, End: size}
	}
	start, err := safecast.Conv[uint32](startCol)
	if err != nil {
		return Span{File: f.ID, Start: size, End: size}
	}
	width, err := safecast.Conv[uint32](endCol - startCol + 1)
	if err != nil {
		return Span{File: f.ID, Start: size, End: size}
	}
	sp := Span{File: f.ID, Start: min(base+start, size)}
	sp.End = min(sp.Start+width, size)
	return sp
}
