package service

import "github.com/noah-isme/reportcard/internal/models"

// recordView is the acyclic, human-oriented shape used for YAML exports.
type recordView struct {
	Name    string     `yaml:"name"`
	Created string     `yaml:"created"`
	Terms   []termView `yaml:"terms"`
}

type termView struct {
	Title       string       `yaml:"title,omitempty"`
	Start       string       `yaml:"start"`
	End         string       `yaml:"end,omitempty"`
	GPA         float64      `yaml:"gpa"`
	DeansHonour bool         `yaml:"deans_honour"`
	Courses     []courseView `yaml:"courses"`
}

type courseView struct {
	Code              string         `yaml:"code"`
	Name              string         `yaml:"name"`
	GPA               float64        `yaml:"gpa"`
	Grade             string         `yaml:"grade,omitempty"`
	ExemptOrWithdrawn bool           `yaml:"exempt_or_withdrawn,omitempty"`
	Activities        []activityView `yaml:"activities,omitempty"`
}

type activityView struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Due         string  `yaml:"due,omitempty"`
	Received    string  `yaml:"received,omitempty"`
	Points      float64 `yaml:"points"`
	Total       float64 `yaml:"total"`
	Percentage  float64 `yaml:"percentage"`
	Grade       string  `yaml:"grade,omitempty"`
}

func newRecordView(user *models.User) recordView {
	view := recordView{
		Name:    user.Name,
		Created: user.CreationDate.Format(dateLayout),
		Terms:   make([]termView, 0, len(user.Terms)),
	}
	for _, term := range user.Terms {
		tv := termView{
			Title:       term.Title,
			Start:       term.StartDate.Format(dateLayout),
			End:         formatDate(&term.EndDate),
			GPA:         term.GPA,
			DeansHonour: term.IsDeansHonour,
			Courses:     make([]courseView, 0, len(term.Courses)),
		}
		for _, course := range term.Courses {
			cv := courseView{
				Code:              course.CourseCode,
				Name:              course.Name,
				GPA:               course.GPA,
				Grade:             course.LetterGrade.String(),
				ExemptOrWithdrawn: course.IsExemptOrWithdrawn,
			}
			for _, activity := range course.Activities {
				cv.Activities = append(cv.Activities, activityView{
					Name:        activity.Name,
					Description: activity.Description,
					Due:         formatDate(activity.DueDate),
					Received:    formatDate(activity.DateReceived),
					Points:      activity.PointsReceived,
					Total:       activity.TotalPoints,
					Percentage:  activity.Percentage,
					Grade:       activity.LetterGrade.String(),
				})
			}
			tv.Courses = append(tv.Courses, cv)
		}
		view.Terms = append(view.Terms, tv)
	}
	return view
}
