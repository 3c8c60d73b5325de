package dto

import (
	"time"

	"github.com/noah-isme/reportcard/internal/models"
)

// RecordRequest captures PUT /record, the whole record replaced at once.
type RecordRequest struct {
	Name         string        `json:"name" validate:"required,max=200"`
	CreationDate *time.Time    `json:"creation_date,omitempty"`
	Terms        []TermRequest `json:"terms" validate:"omitempty,dive"`
}

// TermRequest captures POST /record/terms and the terms nested in a record.
type TermRequest struct {
	Title         string          `json:"title" validate:"max=200"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
	GPA           float64         `json:"gpa"`
	IsDeansHonour bool            `json:"is_deans_honour"`
	Courses       []CourseRequest `json:"courses" validate:"omitempty,dive"`
}

// CourseRequest describes one course. LetterGrade is the raw code of up to
// three characters; Grade names a standard grade ("A+" or "APlus"). Only one
// of them may be given.
type CourseRequest struct {
	CourseCode          string            `json:"course_code" validate:"required,max=32"`
	Name                string            `json:"name" validate:"max=200"`
	GPA                 float64           `json:"gpa"`
	IsExemptOrWithdrawn bool              `json:"is_exempt_or_withdrawn"`
	LetterGrade         string            `json:"letter_grade,omitempty"`
	Grade               string            `json:"grade,omitempty" validate:"excluded_with=LetterGrade"`
	Activities          []ActivityRequest `json:"activities" validate:"omitempty,dive"`
}

// ActivityRequest describes one graded activity. A missing percentage is
// derived from the points when the total is positive.
type ActivityRequest struct {
	Name           string     `json:"name" validate:"required,max=200"`
	Description    string     `json:"description"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	DateReceived   *time.Time `json:"date_received,omitempty"`
	PointsReceived float64    `json:"points_received"`
	TotalPoints    float64    `json:"total_points"`
	Percentage     *float64   `json:"percentage,omitempty"`
	LetterGrade    string     `json:"letter_grade,omitempty"`
	Grade          string     `json:"grade,omitempty" validate:"excluded_with=LetterGrade"`
}

// RecordSummary is returned after a write.
type RecordSummary struct {
	Name       string    `json:"name"`
	Terms      int       `json:"terms"`
	Courses    int       `json:"courses"`
	Activities int       `json:"activities"`
	SavedAt    time.Time `json:"saved_at"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
}

// SnapshotListResponse lists saved history entries.
type SnapshotListResponse struct {
	Items []models.RecordSnapshot `json:"items"`
}
