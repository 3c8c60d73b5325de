package builder

import (
	"time"

	"github.com/noah-isme/reportcard/internal/grade"
	"github.com/noah-isme/reportcard/internal/models"
)

// ActivityBuilder stages one Activity.
type ActivityBuilder struct {
	activity *models.Activity
	built    bool
}

// NewActivityBuilder starts an empty activity.
func NewActivityBuilder() *ActivityBuilder {
	return &ActivityBuilder{activity: &models.Activity{}}
}

// SetName sets the activity name.
func (b *ActivityBuilder) SetName(name string) *ActivityBuilder {
	if !b.built {
		b.activity.Name = name
	}
	return b
}

// SetDescription sets the free-form description.
func (b *ActivityBuilder) SetDescription(description string) *ActivityBuilder {
	if !b.built {
		b.activity.Description = description
	}
	return b
}

// SetDueDate sets when the activity is due, stored in UTC.
func (b *ActivityBuilder) SetDueDate(due time.Time) *ActivityBuilder {
	if !b.built {
		due = due.UTC()
		b.activity.DueDate = &due
	}
	return b
}

// SetDateReceived sets when the graded activity came back, stored in UTC.
func (b *ActivityBuilder) SetDateReceived(received time.Time) *ActivityBuilder {
	if !b.built {
		received = received.UTC()
		b.activity.DateReceived = &received
	}
	return b
}

// SetPointsReceived stores the score, negatives stored as 0.
func (b *ActivityBuilder) SetPointsReceived(points float64) *ActivityBuilder {
	if !b.built {
		b.activity.PointsReceived = ClampNonNegative(points)
	}
	return b
}

// SetTotalPoints stores the maximum score, never below the points received
// so far. Build re-applies the bound against the final points received.
func (b *ActivityBuilder) SetTotalPoints(total float64) *ActivityBuilder {
	if !b.built {
		b.activity.TotalPoints = clampTotal(total, b.activity.PointsReceived)
	}
	return b
}

// SetPercentage stores the overall percentage, negatives stored as 0.
func (b *ActivityBuilder) SetPercentage(percentage float64) *ActivityBuilder {
	if !b.built {
		b.activity.Percentage = ClampNonNegative(percentage)
	}
	return b
}

// SetLetterGrade copies a 1-3 symbol grade verbatim.
func (b *ActivityBuilder) SetLetterGrade(letterGrade string) error {
	if b.built {
		return consumed("activity")
	}
	code, err := letterGradeFromText(letterGrade)
	if err != nil {
		return err
	}
	b.activity.LetterGrade = code
	return nil
}

// SetLetterGradeRunes copies the letters and digits of a 1-3 rune grade.
func (b *ActivityBuilder) SetLetterGradeRunes(letterGrade []rune) error {
	if b.built {
		return consumed("activity")
	}
	code, err := letterGradeFromRunes(letterGrade)
	if err != nil {
		return err
	}
	b.activity.LetterGrade = code
	return nil
}

// SetGrade encodes a symbolic grade.
func (b *ActivityBuilder) SetGrade(g grade.LetterGrade) error {
	if b.built {
		return consumed("activity")
	}
	code, err := grade.Encode(g)
	if err != nil {
		return err
	}
	b.activity.LetterGrade = code
	return nil
}

// Build finalizes the activity.
func (b *ActivityBuilder) Build() (*models.Activity, error) {
	if b.built {
		return nil, consumed("activity")
	}
	b.activity.TotalPoints = clampTotal(b.activity.TotalPoints, b.activity.PointsReceived)
	if err := validateEntity("activity", b.activity); err != nil {
		return nil, err
	}
	b.built = true
	return b.activity, nil
}
