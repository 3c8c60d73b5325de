package builder

import (
	"github.com/noah-isme/reportcard/internal/grade"
	"github.com/noah-isme/reportcard/internal/models"
)

// CourseBuilder stages one Course and its activities.
type CourseBuilder struct {
	course *models.Course
	built  bool
}

// NewCourseBuilder starts an empty course.
func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{course: &models.Course{}}
}

// SetCourseCode sets the course code, e.g. "CST1234".
func (b *CourseBuilder) SetCourseCode(code string) error {
	if b.built {
		return consumed("course")
	}
	if code == "" {
		return required("course code")
	}
	b.course.CourseCode = code
	return nil
}

// SetCourseCodeRunes sets the course code from runes.
func (b *CourseBuilder) SetCourseCodeRunes(code []rune) error {
	if b.built {
		return consumed("course")
	}
	if len(code) == 0 {
		return required("course code")
	}
	b.course.CourseCode = string(code)
	return nil
}

// SetName sets the full course name.
func (b *CourseBuilder) SetName(name string) *CourseBuilder {
	if !b.built {
		b.course.Name = name
	}
	return b
}

// SetGPA stores the course GPA clamped to [0, 4].
func (b *CourseBuilder) SetGPA(gpa float64) *CourseBuilder {
	if !b.built {
		b.course.GPA = ClampGPA(gpa)
	}
	return b
}

// SetExemptOrWithdrawn flags a course that does not count toward the GPA.
func (b *CourseBuilder) SetExemptOrWithdrawn(exemptOrWithdrawn bool) *CourseBuilder {
	if !b.built {
		b.course.IsExemptOrWithdrawn = exemptOrWithdrawn
	}
	return b
}

// SetLetterGrade copies a 1-3 symbol grade verbatim.
func (b *CourseBuilder) SetLetterGrade(letterGrade string) error {
	if b.built {
		return consumed("course")
	}
	code, err := letterGradeFromText(letterGrade)
	if err != nil {
		return err
	}
	b.course.LetterGrade = code
	return nil
}

// SetLetterGradeRunes copies the letters and digits of a 1-3 rune grade.
func (b *CourseBuilder) SetLetterGradeRunes(letterGrade []rune) error {
	if b.built {
		return consumed("course")
	}
	code, err := letterGradeFromRunes(letterGrade)
	if err != nil {
		return err
	}
	b.course.LetterGrade = code
	return nil
}

// SetGrade encodes a symbolic grade.
func (b *CourseBuilder) SetGrade(g grade.LetterGrade) error {
	if b.built {
		return consumed("course")
	}
	code, err := grade.Encode(g)
	if err != nil {
		return err
	}
	b.course.LetterGrade = code
	return nil
}

// SetActivities replaces the activity list with copies of activities.
func (b *CourseBuilder) SetActivities(activities []*models.Activity) error {
	if b.built {
		return consumed("course")
	}
	if len(activities) == 0 {
		return required("activities")
	}
	copies := make([]*models.Activity, 0, len(activities))
	for _, a := range activities {
		if a == nil {
			return required("activity")
		}
		copies = append(copies, a.Clone())
	}
	b.course.Activities = copies
	return nil
}

// AddActivity appends a copy of activity. The argument itself is not
// re-parented.
func (b *CourseBuilder) AddActivity(activity *models.Activity) error {
	if b.built {
		return consumed("course")
	}
	if activity == nil {
		return required("activity")
	}
	if b.course.Activities == nil {
		b.course.Activities = make([]*models.Activity, 0, 4)
	}
	b.course.Activities = append(b.course.Activities, activity.Clone())
	return nil
}

// Build snapshots the activity count and points every activity at the
// course.
func (b *CourseBuilder) Build() (*models.Course, error) {
	if b.built {
		return nil, consumed("course")
	}
	b.course.ActivityCount = len(b.course.Activities)
	for _, a := range b.course.Activities {
		a.Course = b.course
	}
	if err := validateEntity("course", b.course); err != nil {
		return nil, err
	}
	b.built = true
	return b.course, nil
}
