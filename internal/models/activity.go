package models

import "time"

// Activity is one graded piece of work inside a course.
type Activity struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	DateReceived   *time.Time      `json:"date_received,omitempty"`
	PointsReceived float64         `json:"points_received" validate:"gte=0"`
	TotalPoints    float64         `json:"total_points" validate:"gtefield=PointsReceived"`
	LetterGrade    LetterGradeCode `json:"letter_grade"`
	Percentage     float64         `json:"percentage" validate:"gte=0"`

	// Course is the owning course. Lookup only, never serialized.
	Course *Course `json:"-" validate:"-"`
}

// Clone copies the activity without its owner.
func (a *Activity) Clone() *Activity {
	if a == nil {
		return nil
	}
	clone := *a
	clone.DueDate = cloneTime(a.DueDate)
	clone.DateReceived = cloneTime(a.DateReceived)
	clone.Course = nil
	return &clone
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
