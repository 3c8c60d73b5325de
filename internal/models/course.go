package models

// Course is a course taken during a term.
type Course struct {
	CourseCode          string          `json:"course_code"`
	Name                string          `json:"name"`
	GPA                 float64         `json:"gpa" validate:"gte=0,lte=4"`
	IsExemptOrWithdrawn bool            `json:"is_exempt_or_withdrawn"`
	LetterGrade         LetterGradeCode `json:"letter_grade"`
	// ActivityCount is len(Activities) when the course was built.
	ActivityCount int         `json:"activity_count" validate:"gte=0"`
	Activities    []*Activity `json:"activities"`

	// Term is the owning term. Lookup only, never serialized.
	Term *Term `json:"-" validate:"-"`
}

// Clone deep-copies the course and its activities. The copy has no owner and
// its activities point back at the copy.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Term = nil
	if c.Activities != nil {
		clone.Activities = make([]*Activity, len(c.Activities))
		for i, a := range c.Activities {
			clone.Activities[i] = a.Clone()
			if clone.Activities[i] != nil {
				clone.Activities[i].Course = &clone
			}
		}
	}
	return &clone
}
