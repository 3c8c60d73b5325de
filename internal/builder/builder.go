// Package builder assembles validated record entities.
//
// Each builder stages one entity. Setters that cannot fail return the
// builder for chaining; setters that can fail return an error and leave the
// staged entity untouched, so the caller may retry with corrected input.
// Build finalizes derived fields and hands the entity over. After Build the
// builder is consumed: Build and fallible setters return ErrBuilderConsumed
// and chaining setters do nothing.
package builder

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

const (
	minGPA = 0.0
	maxGPA = 4.0
)

var validate = validator.New()

// ClampGPA bounds g to [0, 4]. NaN becomes 0.
func ClampGPA(g float64) float64 {
	switch {
	case math.IsNaN(g) || g < minGPA:
		return minGPA
	case g > maxGPA:
		return maxGPA
	default:
		return g
	}
}

// ClampNonNegative maps negative values and NaN to 0.
func ClampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// clampTotal keeps total from dropping below received.
func clampTotal(total, received float64) float64 {
	if math.IsNaN(total) || total < received {
		return received
	}
	return total
}

// letterGradeFromText copies the runes of s verbatim into a fresh code.
func letterGradeFromText(s string) (models.LetterGradeCode, error) {
	var code models.LetterGradeCode
	if s == "" {
		return code, appErrors.Clone(appErrors.ErrInvalidArgument, "letter grade is required")
	}
	if n := utf8.RuneCountInString(s); n > models.LetterGradeSlots {
		return code, appErrors.Clone(appErrors.ErrOutOfRange,
			fmt.Sprintf("letter grade must be 1 to %d symbols, got %d", models.LetterGradeSlots, n))
	}
	i := 0
	for _, r := range s {
		code[i] = r
		i++
	}
	return code, nil
}

// letterGradeFromRunes copies only letters and digits, each into the slot at
// its own index; any other rune leaves its slot empty. This differs from
// letterGradeFromText on purpose: ['A','-'] gives "A" where "A-" gives "A-".
func letterGradeFromRunes(rs []rune) (models.LetterGradeCode, error) {
	var code models.LetterGradeCode
	if rs == nil {
		return code, appErrors.Clone(appErrors.ErrInvalidArgument, "letter grade is required")
	}
	if len(rs) == 0 || len(rs) > models.LetterGradeSlots {
		return code, appErrors.Clone(appErrors.ErrOutOfRange,
			fmt.Sprintf("letter grade must hold 1 to %d symbols, got %d", models.LetterGradeSlots, len(rs)))
	}
	for i, r := range rs {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			code[i] = r
		}
	}
	return code, nil
}

func consumed(entity string) error {
	return appErrors.Clone(appErrors.ErrBuilderConsumed, entity+" builder already built")
}

func required(what string) error {
	return appErrors.Clone(appErrors.ErrInvalidArgument, what+" is required")
}

func validateEntity(entity string, v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid "+entity)
	}
	return nil
}
