package builder

import (
	"time"

	"github.com/noah-isme/reportcard/internal/models"
)

// TermBuilder stages one Term and its courses.
type TermBuilder struct {
	term  *models.Term
	built bool
}

// NewTermBuilder starts a term beginning now.
func NewTermBuilder() *TermBuilder {
	return &TermBuilder{term: &models.Term{StartDate: time.Now().UTC()}}
}

// SetTitle sets the optional title, e.g. "Fall 2022".
func (b *TermBuilder) SetTitle(title string) *TermBuilder {
	if !b.built {
		b.term.Title = title
	}
	return b
}

// SetStartDate sets the first day of the term.
func (b *TermBuilder) SetStartDate(start time.Time) *TermBuilder {
	if !b.built {
		b.term.StartDate = start.UTC()
	}
	return b
}

// SetEndDate sets the last day of the term.
func (b *TermBuilder) SetEndDate(end time.Time) *TermBuilder {
	if !b.built {
		b.term.EndDate = end.UTC()
	}
	return b
}

// SetGPA stores the term GPA clamped to [0, 4].
func (b *TermBuilder) SetGPA(gpa float64) *TermBuilder {
	if !b.built {
		b.term.GPA = ClampGPA(gpa)
	}
	return b
}

// SetDeansHonour records whether the term made the Dean's Honour List.
func (b *TermBuilder) SetDeansHonour(deansHonour bool) *TermBuilder {
	if !b.built {
		b.term.IsDeansHonour = deansHonour
	}
	return b
}

// SetCourses replaces the course list with copies of courses.
func (b *TermBuilder) SetCourses(courses []*models.Course) error {
	if b.built {
		return consumed("term")
	}
	if len(courses) == 0 {
		return required("courses")
	}
	copies := make([]*models.Course, 0, len(courses))
	for _, c := range courses {
		if c == nil {
			return required("course")
		}
		copies = append(copies, c.Clone())
	}
	b.term.Courses = copies
	return nil
}

// AddCourse appends a copy of course.
func (b *TermBuilder) AddCourse(course *models.Course) error {
	if b.built {
		return consumed("term")
	}
	if course == nil {
		return required("course")
	}
	if b.term.Courses == nil {
		b.term.Courses = make([]*models.Course, 0, 4)
	}
	b.term.Courses = append(b.term.Courses, course.Clone())
	return nil
}

// Build snapshots the course count and points every course at the term.
func (b *TermBuilder) Build() (*models.Term, error) {
	if b.built {
		return nil, consumed("term")
	}
	b.term.CourseCount = len(b.term.Courses)
	for _, c := range b.term.Courses {
		c.Term = b.term
	}
	if err := validateEntity("term", b.term); err != nil {
		return nil, err
	}
	b.built = true
	return b.term, nil
}
