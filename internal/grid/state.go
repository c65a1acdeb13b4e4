package grid

import (
	"math"
	"unicode/utf8"
)

type stateKind uint8

const (
	stateIdle   stateKind = iota // после '.' или в начале строки
	stateNumber                  // копим цифры
	stateSymbol                  // символ ждёт сброса
)

// state is the per-row scanner state. It is passed by value through step;
// only the fields for the current kind are meaningful.
type state struct {
	kind  stateKind
	value int64 // stateNumber: value so far
	char  byte  // stateSymbol: pending character
	row   int
	col   int // stateNumber: first digit; stateSymbol: symbol column
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

// isSymbol reports printable ASCII other than digits and '.'.
// Space is not a symbol.
func isSymbol(ch byte) bool {
	return ch > ' ' && ch < utf8.RuneSelf && ch != 0x7f && ch != '.' && !isDigit(ch)
}

// flush emits whatever is pending and returns the idle state.
// end is the last column of a pending number; it is ignored otherwise.
func flush(st state, end int, out *Tokens) state {
	switch st.kind {
	case stateNumber:
		out.Numbers = append(out.Numbers, Number{
			Value:    st.value,
			Row:      st.row,
			StartCol: st.col,
			EndCol:   end,
		})
	case stateSymbol:
		out.Symbols = append(out.Symbols, Symbol{Char: st.char, Row: st.row, Col: st.col})
	}
	return state{kind: stateIdle}
}

// step consumes the byte at (row, col) and returns the next state.
// The caller has already rejected bytes that belong to no class.
func step(st state, ch byte, row, col int, out *Tokens) (state, error) {
	switch {
	case isDigit(ch):
		d := int64(ch - '0')
		if st.kind == stateNumber {
			if st.value > (math.MaxInt64-d)/10 {
				return st, &NumericOverflowError{Row: row, StartCol: st.col, Col: col}
			}
			st.value = st.value*10 + d
			return st, nil
		}
		// pending symbol (or nothing) is flushed before the run starts
		flush(st, col-1, out)
		return state{kind: stateNumber, value: d, row: row, col: col}, nil

	case ch == '.':
		return flush(st, col-1, out), nil

	default:
		flush(st, col-1, out)
		return state{kind: stateSymbol, char: ch, row: row, col: col}, nil
	}
}
