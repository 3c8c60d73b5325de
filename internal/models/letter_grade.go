package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// LetterGradeSlots is the fixed width of a letter-grade code.
const LetterGradeSlots = 3

// LetterGradeCode is a fixed three-slot grade such as "A+" or "B-". Slots are
// filled from the left; unused slots hold 0.
type LetterGradeCode [LetterGradeSlots]rune

// IsZero reports whether no slot is set.
func (c LetterGradeCode) IsZero() bool {
	return c == LetterGradeCode{}
}

// String renders the set slots for display.
func (c LetterGradeCode) String() string {
	var b strings.Builder
	for _, r := range c {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// raw keeps interior empty slots and drops trailing ones.
func (c LetterGradeCode) raw() string {
	end := LetterGradeSlots
	for end > 0 && c[end-1] == 0 {
		end--
	}
	return string(c[:end])
}

// MarshalJSON encodes the slots as a string, trailing empty slots trimmed.
func (c LetterGradeCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw())
}

// UnmarshalJSON accepts at most three runes and zero-fills the rest.
func (c *LetterGradeCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("letter grade: %w", err)
	}
	if utf8.RuneCountInString(s) > LetterGradeSlots {
		return fmt.Errorf("letter grade %q exceeds %d slots", s, LetterGradeSlots)
	}
	var code LetterGradeCode
	i := 0
	for _, r := range s {
		code[i] = r
		i++
	}
	*c = code
	return nil
}
