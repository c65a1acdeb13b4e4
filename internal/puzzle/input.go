package puzzle

import (
	"strconv"
	"strings"
)

// Lines splits puzzle text into rows, dropping a trailing newline and any
// '\r' left from CRLF input.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Ints parses whitespace-separated integers. line is used for error
// reporting only.
func Ints(line int, s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, Malformed(line, "expected integer, got %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
