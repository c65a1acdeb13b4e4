package grid

import (
	"context"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Scan classifies every cell of lines and returns the symbol and number
// tokens in row-major order. Rows are independent: no state crosses a line
// boundary. On error no tokens are returned.
func Scan(lines []string) (Tokens, error) {
	var out Tokens
	for row, line := range lines {
		toks, err := ScanRow(row, line)
		if err != nil {
			return Tokens{}, err
		}
		out.append(toks)
	}
	return out, nil
}

// ScanRow scans a single line as grid row row.
func ScanRow(row int, line string) (Tokens, error) {
	var (
		out Tokens
		st  state
	)
	for col := 0; col < len(line); col++ {
		ch := line[col]
		if ch != '.' && !isDigit(ch) && !isSymbol(ch) {
			r, size := utf8.DecodeRuneInString(line[col:])
			return Tokens{}, &InvalidCharacterError{Row: row, Col: col, Char: r, Width: size}
		}
		var err error
		st, err = step(st, ch, row, col, &out)
		if err != nil {
			return Tokens{}, err
		}
	}
	// конец строки: число заканчивается на последней колонке
	flush(st, len(line)-1, &out)
	return out, nil
}

// ScanConcurrent scans rows in parallel with at most jobs workers
// (GOMAXPROCS when jobs <= 0). The result is identical to Scan: tokens keep
// row-major order and, when several rows are invalid, the error of the
// lowest row is returned.
func ScanConcurrent(ctx context.Context, lines []string, jobs int) (Tokens, error) {
	if len(lines) == 0 {
		return Tokens{}, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	rows := make([]Tokens, len(lines))
	errs := make([]error, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(lines)))
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i], errs[i] = ScanRow(i, line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tokens{}, err
	}

	for _, err := range errs {
		if err != nil {
			return Tokens{}, err
		}
	}
	var out Tokens
	for _, toks := range rows {
		out.append(toks)
	}
	return out, nil
}
