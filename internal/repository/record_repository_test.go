package repository

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/reportcard/internal/builder"
	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

func newRecordRepo(t *testing.T) *RecordRepository {
	t.Helper()
	return NewRecordRepository(filepath.Join(t.TempDir(), "profile", "data.json"), zap.NewNop())
}

func TestRecordRepositoryRoundTrip(t *testing.T) {
	repo := newRecordRepo(t)
	user, err := builder.SampleUser("Sample Student", time.Date(2022, 10, 25, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, repo.Serialize(user))
	require.True(t, repo.Exists())

	loaded, err := repo.Deserialize()
	require.NoError(t, err)
	require.Equal(t, user, loaded)

	for _, term := range loaded.Terms {
		assert.Same(t, loaded, term.User)
		for _, course := range term.Courses {
			assert.Same(t, term, course.Term)
			for _, activity := range course.Activities {
				assert.Same(t, course, activity.Course)
			}
		}
	}
}

func TestRecordRepositoryRoundTripEmptyUser(t *testing.T) {
	repo := newRecordRepo(t)
	user, err := builder.NewUserBuilder().SetName("Empty").SetCreationDate(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)).Build()
	require.NoError(t, err)

	require.NoError(t, repo.Serialize(user))
	loaded, err := repo.Deserialize()
	require.NoError(t, err)
	assert.Equal(t, user, loaded)
}

func TestRecordRepositoryWritesPrettyForwardOnlyJSON(t *testing.T) {
	repo := newRecordRepo(t)
	user, err := builder.SampleUser("Sample Student", time.Date(2022, 10, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Serialize(user))

	raw, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	doc := string(raw)
	assert.True(t, strings.HasPrefix(doc, "{\n  \"name\""))
	assert.Contains(t, doc, `"letter_grade": "A-"`)
	assert.NotContains(t, doc, `"user"`)
	assert.NotContains(t, doc, `"term"`)
	assert.NotContains(t, doc, `"course"`)
}

func TestRecordRepositorySerializeNil(t *testing.T) {
	err := newRecordRepo(t).Serialize(nil)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidArgument))
}

func TestRecordRepositoryDeserializeMissingFile(t *testing.T) {
	_, err := newRecordRepo(t).Deserialize()
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRecordRepositoryDeserializeMalformed(t *testing.T) {
	repo := newRecordRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), 0o755))

	for _, content := range []string{`{"name": "x", "terms": [`, ``, `{"terms":[{"courses":[{"letter_grade":"A+++"}]}]}`} {
		require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))
		_, err := repo.Deserialize()
		require.Error(t, err, content)
		assert.True(t, errors.Is(err, appErrors.ErrDecode), content)
	}
}

func TestDecodeRelinksHandWrittenDocument(t *testing.T) {
	user, err := Decode([]byte(`{
  "name": "Sam",
  "creation_date": "2022-10-25T00:00:00Z",
  "terms": [{"title": "Fall", "course_count": 1, "courses": [
    {"course_code": "CST1234", "letter_grade": "B+", "activity_count": 1, "activities": [{"name": "Quiz", "letter_grade": "A"}]}
  ]}]
}`))
	require.NoError(t, err)
	course := user.Terms[0].Courses[0]
	assert.Equal(t, models.LetterGradeCode{'B', '+'}, course.LetterGrade)
	assert.Same(t, course, course.Activities[0].Course)
	assert.Same(t, user, user.Terms[0].User)
}

func TestDeserializeRejectsOutOfRangeValues(t *testing.T) {
	repo := newRecordRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(repo.Path()), 0o755))

	cases := map[string]string{
		"term gpa above range":   `{"terms":[{"gpa":9.5}]}`,
		"course gpa below range": `{"terms":[{"gpa":3,"courses":[{"course_code":"C1","gpa":-3}]}]}`,
		"negative points": `{"terms":[{"courses":[{"course_code":"C1","activities":[
			{"name":"Quiz","points_received":-5,"total_points":10}]}]}]}`,
		"total below points": `{"terms":[{"courses":[{"course_code":"C1","activities":[
			{"name":"Quiz","points_received":8,"total_points":5}]}]}]}`,
		"null term": `{"terms":[null]}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, os.WriteFile(repo.Path(), []byte(content), 0o644))
			user, err := repo.Deserialize()
			require.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, appErrors.ErrDecode))
		})
	}
}

func TestDecodeNamesTheOffendingEntity(t *testing.T) {
	_, err := Decode([]byte(`{"terms":[{"gpa":3},{"courses":[{"course_code":"C1","gpa":4.5}]}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terms[1].courses[0]")
}

func TestRecordRepositoryRoundTripZonedTimes(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	activity, err := builder.NewActivityBuilder().
		SetName("Midterm").
		SetDueDate(time.Date(2022, 3, 1, 9, 0, 0, 0, est)).
		SetDateReceived(time.Date(2022, 3, 8, 14, 30, 0, 0, est)).
		SetPointsReceived(45).
		SetTotalPoints(50).
		Build()
	require.NoError(t, err)

	cb := builder.NewCourseBuilder().SetName("C# Class")
	require.NoError(t, cb.SetCourseCode("CST1234"))
	require.NoError(t, cb.AddActivity(activity))
	course, err := cb.Build()
	require.NoError(t, err)

	tb := builder.NewTermBuilder().
		SetStartDate(time.Date(2022, 1, 10, 8, 0, 0, 0, est)).
		SetEndDate(time.Date(2022, 4, 22, 17, 0, 0, 0, est))
	require.NoError(t, tb.AddCourse(course))
	term, err := tb.Build()
	require.NoError(t, err)

	ub := builder.NewUserBuilder().SetName("Sam").SetCreationDate(time.Date(2021, 12, 31, 23, 0, 0, 0, est))
	require.NoError(t, ub.AddTerm(term))
	user, err := ub.Build()
	require.NoError(t, err)

	repo := newRecordRepo(t)
	require.NoError(t, repo.Serialize(user))
	loaded, err := repo.Deserialize()
	require.NoError(t, err)
	require.Equal(t, user, loaded)
	assert.Equal(t, time.UTC, loaded.Terms[0].Courses[0].Activities[0].DueDate.Location())
}
