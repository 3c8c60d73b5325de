package models

import "time"

// Term is one academic term in the user's record.
type Term struct {
	Title         string    `json:"title,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	GPA           float64   `json:"gpa" validate:"gte=0,lte=4"`
	IsDeansHonour bool      `json:"is_deans_honour"`
	// CourseCount is len(Courses) when the term was built.
	CourseCount int       `json:"course_count" validate:"gte=0"`
	Courses     []*Course `json:"courses"`

	// User is the owning record. Lookup only, never serialized.
	User *User `json:"-" validate:"-"`
}

// Clone deep-copies the term and everything below it. The copy has no owner.
func (t *Term) Clone() *Term {
	if t == nil {
		return nil
	}
	clone := *t
	clone.User = nil
	if t.Courses != nil {
		clone.Courses = make([]*Course, len(t.Courses))
		for i, c := range t.Courses {
			clone.Courses[i] = c.Clone()
			if clone.Courses[i] != nil {
				clone.Courses[i].Term = &clone
			}
		}
	}
	return &clone
}
