package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/noah-isme/reportcard/internal/builder"
	"github.com/noah-isme/reportcard/internal/dto"
	"github.com/noah-isme/reportcard/internal/grade"
	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

// buildUser turns a request into a finished record through the builders.
func buildUser(req dto.RecordRequest, now time.Time) (*models.User, error) {
	created := now
	if req.CreationDate != nil {
		created = req.CreationDate.UTC()
	}
	ub := builder.NewUserBuilder().SetName(req.Name).SetCreationDate(created)
	for i, tr := range req.Terms {
		term, err := buildTerm(tr, now)
		if err != nil {
			return nil, at(fmt.Sprintf("terms[%d]", i), err)
		}
		if err := ub.AddTerm(term); err != nil {
			return nil, err
		}
	}
	return ub.Build()
}

func buildTerm(req dto.TermRequest, now time.Time) (*models.Term, error) {
	start := now
	if req.StartDate != nil {
		start = req.StartDate.UTC()
	}
	tb := builder.NewTermBuilder().
		SetTitle(req.Title).
		SetStartDate(start).
		SetGPA(req.GPA).
		SetDeansHonour(req.IsDeansHonour)
	if req.EndDate != nil {
		tb.SetEndDate(req.EndDate.UTC())
	}
	for i, cr := range req.Courses {
		course, err := buildCourse(cr)
		if err != nil {
			return nil, at(fmt.Sprintf("courses[%d]", i), err)
		}
		if err := tb.AddCourse(course); err != nil {
			return nil, err
		}
	}
	return tb.Build()
}

func buildCourse(req dto.CourseRequest) (*models.Course, error) {
	cb := builder.NewCourseBuilder().
		SetName(req.Name).
		SetGPA(req.GPA).
		SetExemptOrWithdrawn(req.IsExemptOrWithdrawn)
	if err := cb.SetCourseCode(req.CourseCode); err != nil {
		return nil, at("course_code", err)
	}
	if err := applyGrade(req.LetterGrade, req.Grade, cb.SetLetterGrade, cb.SetGrade); err != nil {
		return nil, err
	}
	for i, ar := range req.Activities {
		activity, err := buildActivity(ar)
		if err != nil {
			return nil, at(fmt.Sprintf("activities[%d]", i), err)
		}
		if err := cb.AddActivity(activity); err != nil {
			return nil, err
		}
	}
	return cb.Build()
}

func buildActivity(req dto.ActivityRequest) (*models.Activity, error) {
	ab := builder.NewActivityBuilder().
		SetName(req.Name).
		SetDescription(req.Description).
		SetPointsReceived(req.PointsReceived).
		SetTotalPoints(req.TotalPoints).
		SetPercentage(percentage(req))
	if req.DueDate != nil {
		ab.SetDueDate(req.DueDate.UTC())
	}
	if req.DateReceived != nil {
		ab.SetDateReceived(req.DateReceived.UTC())
	}
	if err := applyGrade(req.LetterGrade, req.Grade, ab.SetLetterGrade, ab.SetGrade); err != nil {
		return nil, err
	}
	return ab.Build()
}

// percentage returns the explicit value, or points over total once both are
// clamped the way the builder clamps them.
func percentage(req dto.ActivityRequest) float64 {
	if req.Percentage != nil {
		return *req.Percentage
	}
	received := builder.ClampNonNegative(req.PointsReceived)
	total := math.Max(req.TotalPoints, received)
	if total <= 0 {
		return 0
	}
	return received * 100 / total
}

func applyGrade(letter, named string, setLetter func(string) error, setGrade func(grade.LetterGrade) error) error {
	switch {
	case named != "":
		g, err := grade.Parse(named)
		if err != nil {
			return at("grade", err)
		}
		return at("grade", setGrade(g))
	case letter != "":
		return at("letter_grade", setLetter(letter))
	default:
		return nil
	}
}

// at prefixes the message of a typed error with the field it came from.
func at(field string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		return err
	}
	return appErrors.Clone(appErr, field+": "+appErr.Message)
}

func countRecord(user *models.User) (terms, courses, activities int) {
	terms = len(user.Terms)
	for _, term := range user.Terms {
		courses += len(term.Courses)
		for _, course := range term.Courses {
			activities += len(course.Activities)
		}
	}
	return terms, courses, activities
}
