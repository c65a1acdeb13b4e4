package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Входные данные
	InpInfo             Code = 1000
	InpInvalidCharacter Code = 1001
	InpNumericOverflow  Code = 1002
	InpMalformedLine    Code = 1003
	InpEmpty            Code = 1004

	// Запуск решений
	RunInfo       Code = 2000
	RunSolverFail Code = 2001
	RunCacheError Code = 2003
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	InpInfo:             "Input information",
	InpInvalidCharacter: "Invalid character in grid",
	InpNumericOverflow:  "Number does not fit in 64 bits",
	InpMalformedLine:    "Malformed input line",
	InpEmpty:            "Empty input",
	RunInfo:             "Run information",
	RunSolverFail:       "Solver failed",
	RunCacheError:       "Answer cache error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("INP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RUN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
