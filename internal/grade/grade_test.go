package grade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

func TestEncodeAllGrades(t *testing.T) {
	expected := map[LetterGrade]models.LetterGradeCode{
		APlusPlus: {'A', '+', '+'},
		APlus:     {'A', '+'},
		A:         {'A'},
		AMinus:    {'A', '-'},
		BPlus:     {'B', '+'},
		B:         {'B'},
		BMinus:    {'B', '-'},
		CPlus:     {'C', '+'},
		C:         {'C'},
		CMinus:    {'C', '-'},
		DPlus:     {'D', '+'},
		D:         {'D'},
		DMinus:    {'D', '-'},
		F:         {'F'},
		Exempt:    {'E', 'X'},
		Withdrew:  {'W'},
	}
	require.Len(t, expected, len(All()))

	for _, g := range All() {
		code, err := Encode(g)
		require.NoError(t, err, g.String())
		assert.Equal(t, expected[g], code, g.String())
		assert.Equal(t, g.Symbol(), code.String())
	}
}

func TestEncodeAPlusLeavesLastSlotEmpty(t *testing.T) {
	code, err := Encode(APlus)
	require.NoError(t, err)
	assert.Equal(t, 'A', code[0])
	assert.Equal(t, '+', code[1])
	assert.Equal(t, rune(0), code[2])
}

func TestEncodeRejectsUnknownValue(t *testing.T) {
	for _, g := range []LetterGrade{-1, Withdrew + 1, 99} {
		_, err := Encode(g)
		require.Error(t, err)
		assert.True(t, errors.Is(err, appErrors.ErrInvalidEnum))
	}
}

func TestParse(t *testing.T) {
	cases := map[string]LetterGrade{
		"A++":      APlusPlus,
		"B-":       BMinus,
		"cplus":    CPlus,
		" DMinus ": DMinus,
		"EX":       Exempt,
		"withdrew": Withdrew,
		"F":        F,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("E")
	require.True(t, errors.Is(err, appErrors.ErrInvalidEnum))
}

func TestStringOfUnknownValue(t *testing.T) {
	assert.Equal(t, "LetterGrade(42)", LetterGrade(42).String())
	assert.Empty(t, LetterGrade(42).Symbol())
}
