// Package grade maps symbolic letter grades to fixed-width display codes.
package grade

import (
	"fmt"
	"strings"

	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

// LetterGrade is a symbolic grade selection.
type LetterGrade int

const (
	APlusPlus LetterGrade = iota
	APlus
	A
	AMinus
	BPlus
	B
	BMinus
	CPlus
	C
	CMinus
	DPlus
	D
	DMinus
	F
	Exempt
	Withdrew
)

type entry struct {
	name   string
	symbol string
}

// symbols is indexed by LetterGrade. Every symbol fits in three slots, which
// is why Exempt and Withdrew render as EX and W.
var symbols = [...]entry{
	APlusPlus: {"APlusPlus", "A++"},
	APlus:     {"APlus", "A+"},
	A:         {"A", "A"},
	AMinus:    {"AMinus", "A-"},
	BPlus:     {"BPlus", "B+"},
	B:         {"B", "B"},
	BMinus:    {"BMinus", "B-"},
	CPlus:     {"CPlus", "C+"},
	C:         {"C", "C"},
	CMinus:    {"CMinus", "C-"},
	DPlus:     {"DPlus", "D+"},
	D:         {"D", "D"},
	DMinus:    {"DMinus", "D-"},
	F:         {"F", "F"},
	Exempt:    {"Exempt", "EX"},
	Withdrew:  {"Withdrew", "W"},
}

// Valid reports whether g is one of the declared grades.
func (g LetterGrade) Valid() bool {
	return g >= 0 && int(g) < len(symbols)
}

// String returns the grade's name, e.g. "APlus".
func (g LetterGrade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("LetterGrade(%d)", int(g))
	}
	return symbols[g].name
}

// Symbol returns the rendered grade, e.g. "A+".
func (g LetterGrade) Symbol() string {
	if !g.Valid() {
		return ""
	}
	return symbols[g].symbol
}

// Encode renders g into a three-slot code. The symbol fills the leading
// slots and the remainder stay zero. Undeclared values are rejected.
func Encode(g LetterGrade) (models.LetterGradeCode, error) {
	var code models.LetterGradeCode
	if !g.Valid() {
		return code, appErrors.Clone(appErrors.ErrInvalidEnum, fmt.Sprintf("unknown letter grade %d", int(g)))
	}
	i := 0
	for _, r := range symbols[g].symbol {
		code[i] = r
		i++
	}
	return code, nil
}

// Parse resolves a grade from its symbol ("B+") or its name ("BPlus"), the
// name being matched case-insensitively.
func Parse(s string) (LetterGrade, error) {
	s = strings.TrimSpace(s)
	for i, e := range symbols {
		if s == e.symbol || strings.EqualFold(s, e.name) {
			return LetterGrade(i), nil
		}
	}
	return 0, appErrors.Clone(appErrors.ErrInvalidEnum, fmt.Sprintf("unknown letter grade %q", s))
}

// All lists every declared grade from best to worst.
func All() []LetterGrade {
	grades := make([]LetterGrade, len(symbols))
	for i := range symbols {
		grades[i] = LetterGrade(i)
	}
	return grades
}
