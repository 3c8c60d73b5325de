package builder

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/reportcard/internal/grade"
	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

func buildActivity(t *testing.T, name string, points, total float64) *models.Activity {
	t.Helper()
	activity, err := NewActivityBuilder().SetName(name).SetPointsReceived(points).SetTotalPoints(total).Build()
	require.NoError(t, err)
	return activity
}

func TestClampGPA(t *testing.T) {
	inputs := []float64{-100, -1, -0.0001, 0, 0.5, 2.75, 4, 4.0001, 4.5, 1e9, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, g := range inputs {
		got := ClampGPA(g)
		assert.GreaterOrEqual(t, got, 0.0, "input %v", g)
		assert.LessOrEqual(t, got, 4.0, "input %v", g)
		if g >= 0 && g <= 4 {
			assert.Equal(t, g, got)
		}
	}
}

func TestTermGPAIsClamped(t *testing.T) {
	high, err := NewTermBuilder().SetGPA(4.5).Build()
	require.NoError(t, err)
	assert.Equal(t, 4.0, high.GPA)

	low, err := NewTermBuilder().SetGPA(-1.0).Build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, low.GPA)

	course, err := NewCourseBuilder().SetGPA(7).Build()
	require.NoError(t, err)
	assert.Equal(t, 4.0, course.GPA)
}

func TestActivityPointsAreClamped(t *testing.T) {
	pairs := []struct{ points, total float64 }{
		{45, 50}, {25, 50}, {-5, 10}, {-5, -10}, {10, 5}, {0, 0}, {50, 50},
	}
	for _, p := range pairs {
		activity := buildActivity(t, "quiz", p.points, p.total)
		received := math.Max(p.points, 0)
		assert.Equal(t, received, activity.PointsReceived)
		assert.Equal(t, math.Max(p.total, received), activity.TotalPoints)
	}
}

func TestActivityTotalRevalidatedAtBuild(t *testing.T) {
	activity, err := NewActivityBuilder().SetTotalPoints(30).SetPointsReceived(45).Build()
	require.NoError(t, err)
	assert.Equal(t, 45.0, activity.PointsReceived)
	assert.Equal(t, 45.0, activity.TotalPoints)
}

func TestActivityPercentageNeverNegative(t *testing.T) {
	activity, err := NewActivityBuilder().SetPercentage(-12).Build()
	require.NoError(t, err)
	assert.Equal(t, 0.0, activity.Percentage)
}

func TestSetLetterGradeText(t *testing.T) {
	for _, in := range []string{"A", "B+", "A++", "ÄÖ"} {
		b := NewActivityBuilder()
		require.NoError(t, b.SetLetterGrade(in))
		activity, err := b.Build()
		require.NoError(t, err)
		runes := []rune(in)
		assert.Equal(t, runes, activity.LetterGrade[:len(runes)])
		for _, r := range activity.LetterGrade[len(runes):] {
			assert.Equal(t, rune(0), r)
		}
	}
}

func TestSetLetterGradeTextBounds(t *testing.T) {
	b := NewCourseBuilder()
	require.NoError(t, b.SetLetterGrade("B"))

	err := b.SetLetterGrade("")
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))

	err = b.SetLetterGrade("A+++")
	assert.True(t, errors.Is(err, appErrors.ErrOutOfRange))

	course, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "B", course.LetterGrade.String(), "failed calls leave the grade untouched")
}

func TestSetLetterGradeRunesSkipsSymbols(t *testing.T) {
	ab := NewActivityBuilder()
	require.NoError(t, ab.SetLetterGradeRunes([]rune{'A', '-', '+'}))
	fromRunes, err := ab.Build()
	require.NoError(t, err)
	assert.Equal(t, models.LetterGradeCode{'A'}, fromRunes.LetterGrade)

	tb := NewActivityBuilder()
	require.NoError(t, tb.SetLetterGrade("A-+"))
	fromText, err := tb.Build()
	require.NoError(t, err)
	assert.Equal(t, models.LetterGradeCode{'A', '-', '+'}, fromText.LetterGrade)

	assert.NotEqual(t, fromText.LetterGrade, fromRunes.LetterGrade)
}

func TestSetLetterGradeRunesKeepsSlotIndex(t *testing.T) {
	cb := NewCourseBuilder()
	require.NoError(t, cb.SetLetterGradeRunes([]rune{'-', 'B', '2'}))
	course, err := cb.Build()
	require.NoError(t, err)
	assert.Equal(t, models.LetterGradeCode{0, 'B', '2'}, course.LetterGrade)
}

func TestSetLetterGradeRunesBounds(t *testing.T) {
	b := NewActivityBuilder()
	assert.True(t, errors.Is(b.SetLetterGradeRunes(nil), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(b.SetLetterGradeRunes([]rune{}), appErrors.ErrOutOfRange))
	assert.True(t, errors.Is(b.SetLetterGradeRunes([]rune("ABCD")), appErrors.ErrOutOfRange))
}

func TestSetGradeOverwritesBuffer(t *testing.T) {
	b := NewCourseBuilder()
	require.NoError(t, b.SetLetterGrade("A++"))
	require.NoError(t, b.SetGrade(grade.APlus))
	course, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, models.LetterGradeCode{'A', '+', 0}, course.LetterGrade)

	err = NewActivityBuilder().SetGrade(grade.LetterGrade(100))
	assert.True(t, errors.Is(err, appErrors.ErrInvalidEnum))
}

func TestCourseBuildCountsAndStampsActivities(t *testing.T) {
	midterm := buildActivity(t, "Midterm", 45, 50)
	final := buildActivity(t, "Final", 25, 50)

	cb := NewCourseBuilder().SetName("C# Class").SetGPA(4)
	require.NoError(t, cb.SetCourseCode("CST1234"))
	require.NoError(t, cb.AddActivity(midterm))
	require.NoError(t, cb.AddActivity(final))
	course, err := cb.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, course.ActivityCount)
	require.Len(t, course.Activities, 2)
	for _, a := range course.Activities {
		assert.Same(t, course, a.Course)
	}
	assert.Equal(t, 45.0, course.Activities[0].PointsReceived)
	assert.Equal(t, 25.0, course.Activities[1].PointsReceived)
	assert.Nil(t, midterm.Course, "the added activity is copied, not re-parented")
}

func TestActivityCountIsSnapshot(t *testing.T) {
	cb := NewCourseBuilder()
	require.NoError(t, cb.AddActivity(buildActivity(t, "Lab", 1, 1)))
	course, err := cb.Build()
	require.NoError(t, err)

	course.Activities = append(course.Activities, &models.Activity{Name: "late"})
	assert.Equal(t, 1, course.ActivityCount)
}

func TestCollectionSettersRejectEmptyInput(t *testing.T) {
	cb := NewCourseBuilder()
	assert.True(t, errors.Is(cb.SetActivities(nil), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(cb.SetActivities([]*models.Activity{}), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(cb.SetActivities([]*models.Activity{{Name: "ok"}, nil}), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(cb.AddActivity(nil), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(cb.SetCourseCode(""), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(cb.SetCourseCodeRunes(nil), appErrors.ErrInvalidArgument))

	tb := NewTermBuilder()
	assert.True(t, errors.Is(tb.SetCourses(nil), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(tb.AddCourse(nil), appErrors.ErrInvalidArgument))

	ub := NewUserBuilder()
	assert.True(t, errors.Is(ub.SetTerms([]*models.Term{}), appErrors.ErrInvalidArgument))
	assert.True(t, errors.Is(ub.AddTerm(nil), appErrors.ErrInvalidArgument))

	user, err := ub.Build()
	require.NoError(t, err)
	assert.Nil(t, user.Terms)
}

func TestTermAndUserBuildStampOwners(t *testing.T) {
	cb := NewCourseBuilder()
	require.NoError(t, cb.SetCourseCodeRunes([]rune("CST4321")))
	require.NoError(t, cb.AddActivity(buildActivity(t, "Quiz", 8, 10)))
	course, err := cb.Build()
	require.NoError(t, err)

	tb := NewTermBuilder().SetTitle("Fall 2022")
	require.NoError(t, tb.SetCourses([]*models.Course{course, course}))
	term, err := tb.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, term.CourseCount)
	assert.NotSame(t, term.Courses[0], term.Courses[1])
	for _, c := range term.Courses {
		assert.Same(t, term, c.Term)
		assert.Equal(t, "CST4321", c.CourseCode)
		assert.Same(t, c, c.Activities[0].Course)
	}

	created := time.Date(2022, 10, 25, 0, 0, 0, 0, time.UTC)
	ub := NewUserBuilder().SetName("Sam").SetCreationDate(created)
	require.NoError(t, ub.AddTerm(term))
	user, err := ub.Build()
	require.NoError(t, err)
	assert.Equal(t, created, user.CreationDate)
	require.Len(t, user.Terms, 1)
	assert.Same(t, user, user.Terms[0].User)
	assert.Same(t, user.Terms[0], user.Terms[0].Courses[0].Term)
}

func TestBuilderIsConsumedByBuild(t *testing.T) {
	ab := NewActivityBuilder().SetName("Midterm")
	activity, err := ab.Build()
	require.NoError(t, err)

	_, err = ab.Build()
	assert.True(t, errors.Is(err, appErrors.ErrBuilderConsumed))
	assert.True(t, errors.Is(ab.SetLetterGrade("A"), appErrors.ErrBuilderConsumed))

	ab.SetName("changed")
	assert.Equal(t, "Midterm", activity.Name)

	cb := NewCourseBuilder()
	_, err = cb.Build()
	require.NoError(t, err)
	assert.True(t, errors.Is(cb.AddActivity(activity), appErrors.ErrBuilderConsumed))

	tb := NewTermBuilder()
	_, err = tb.Build()
	require.NoError(t, err)
	_, err = tb.Build()
	assert.True(t, errors.Is(err, appErrors.ErrBuilderConsumed))

	ub := NewUserBuilder()
	_, err = ub.Build()
	require.NoError(t, err)
	_, err = ub.Build()
	assert.True(t, errors.Is(err, appErrors.ErrBuilderConsumed))
}

func TestSampleUser(t *testing.T) {
	created := time.Date(2022, 10, 25, 12, 0, 0, 0, time.UTC)
	user, err := SampleUser("Sample Student", created)
	require.NoError(t, err)

	assert.Equal(t, "Sample Student", user.Name)
	require.Len(t, user.Terms, 2)
	assert.Equal(t, "Fall 2022", user.Terms[0].Title)
	for _, term := range user.Terms {
		assert.Same(t, user, term.User)
		assert.Equal(t, 2, term.CourseCount)
		assert.True(t, term.IsDeansHonour)
		for _, course := range term.Courses {
			assert.Same(t, term, course.Term)
			assert.Equal(t, 2, course.ActivityCount)
			for _, activity := range course.Activities {
				assert.Same(t, course, activity.Course)
			}
		}
	}
	midterm := user.Terms[0].Courses[0].Activities[0]
	assert.Equal(t, 90.0, midterm.Percentage)
	assert.Equal(t, "A-", midterm.LetterGrade.String())
}

func TestTimestampSettersStoreUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	at := time.Date(2022, 9, 6, 9, 0, 0, 0, tokyo)

	activity, err := NewActivityBuilder().SetName("Lab").SetDueDate(at).SetDateReceived(at).Build()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, activity.DueDate.Location())
	assert.Equal(t, time.UTC, activity.DateReceived.Location())
	assert.True(t, at.Equal(*activity.DueDate))

	term, err := NewTermBuilder().SetStartDate(at).SetEndDate(at.AddDate(0, 3, 0)).Build()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, term.StartDate.Location())
	assert.Equal(t, time.UTC, term.EndDate.Location())

	user, err := NewUserBuilder().SetName("Sam").SetCreationDate(at).Build()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, user.CreationDate.Location())
	assert.Equal(t, time.Date(2022, 9, 6, 0, 0, 0, 0, time.UTC), user.CreationDate)
}
