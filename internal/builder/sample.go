package builder

import (
	"time"

	"github.com/noah-isme/reportcard/internal/grade"
	"github.com/noah-isme/reportcard/internal/models"
)

type sampleActivity struct {
	name, description string
	due, received     time.Time
	points, total     float64
	grade             grade.LetterGrade
}

type sampleCourse struct {
	code, name string
	gpa        float64
	grade      grade.LetterGrade
}

type sampleTerm struct {
	title      string
	start, end time.Time
	gpa        float64
	courses    []sampleCourse
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	sampleActivities = []sampleActivity{
		{"Midterm", "Midterm for this class.", date(2022, 5, 5), date(2022, 6, 5), 45, 50, grade.AMinus},
		{"Final Exam", "The big final!", date(2022, 8, 5), date(2022, 8, 5), 25, 50, grade.F},
	}
	sampleTerms = []sampleTerm{
		{"Fall 2022", date(2022, 9, 6), date(2022, 12, 16), 4.0, []sampleCourse{
			{"CST1234", "C# Class", 4.0, grade.A},
			{"CST4321", "Java Class", 3.0, grade.B},
		}},
		{"Winter 2023", date(2023, 1, 9), date(2023, 4, 21), 4.0, []sampleCourse{
			{"CST6666", "C++ Class", 2.0, grade.C},
			{"CST9999", "How to use Google", 3.0, grade.B},
		}},
	}
)

// SampleUser builds a two-term demonstration record through the builders.
// Every course carries the same two activities.
func SampleUser(name string, created time.Time) (*models.User, error) {
	activities := make([]*models.Activity, 0, len(sampleActivities))
	for _, s := range sampleActivities {
		ab := NewActivityBuilder().
			SetName(s.name).
			SetDescription(s.description).
			SetDueDate(s.due).
			SetDateReceived(s.received).
			SetPointsReceived(s.points).
			SetTotalPoints(s.total).
			SetPercentage(s.points * 100 / s.total)
		if err := ab.SetGrade(s.grade); err != nil {
			return nil, err
		}
		activity, err := ab.Build()
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}

	ub := NewUserBuilder().SetName(name).SetCreationDate(created)
	for _, st := range sampleTerms {
		tb := NewTermBuilder().
			SetTitle(st.title).
			SetStartDate(st.start).
			SetEndDate(st.end).
			SetGPA(st.gpa).
			SetDeansHonour(st.gpa >= 3.5)
		for _, sc := range st.courses {
			course, err := buildSampleCourse(sc, activities)
			if err != nil {
				return nil, err
			}
			if err := tb.AddCourse(course); err != nil {
				return nil, err
			}
		}
		term, err := tb.Build()
		if err != nil {
			return nil, err
		}
		if err := ub.AddTerm(term); err != nil {
			return nil, err
		}
	}
	return ub.Build()
}

func buildSampleCourse(sc sampleCourse, activities []*models.Activity) (*models.Course, error) {
	cb := NewCourseBuilder().SetName(sc.name).SetGPA(sc.gpa).SetExemptOrWithdrawn(false)
	if err := cb.SetCourseCode(sc.code); err != nil {
		return nil, err
	}
	if err := cb.SetGrade(sc.grade); err != nil {
		return nil, err
	}
	if err := cb.SetActivities(activities); err != nil {
		return nil, err
	}
	return cb.Build()
}
