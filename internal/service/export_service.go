package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
	"github.com/noah-isme/reportcard/pkg/export"
	"github.com/noah-isme/reportcard/pkg/logger"
)

// Supported export formats.
const (
	ExportFormatCSV  = "csv"
	ExportFormatPDF  = "pdf"
	ExportFormatYAML = "yaml"
)

const dateLayout = "2006-01-02"

var activityHeaders = []string{
	"Term", "Course Code", "Course", "Course GPA", "Course Grade",
	"Activity", "Due", "Received", "Points", "Total", "Percentage", "Activity Grade",
}

var courseHeaders = []string{"Code", "Course", "GPA", "Grade", "Activities", "Status"}

type recordReader interface {
	Get(ctx context.Context) (*models.User, error)
}

// ExportResult is a rendered download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders the current record as CSV, PDF or YAML.
type ExportService struct {
	records recordReader
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	yaml    *export.YAMLExporter
	title   string
	logger  *zap.Logger
}

// NewExportService constructs the service. title heads PDF exports.
func NewExportService(records recordReader, title string, log *zap.Logger) *ExportService {
	if title == "" {
		title = "Report Card"
	}
	return &ExportService{
		records: records,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		yaml:    export.NewYAMLExporter(),
		title:   title,
		logger:  logger.OrNop(log),
	}
}

// Export renders the record in format. Unknown formats are a validation error.
func (s *ExportService) Export(ctx context.Context, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}
	if format != ExportFormatCSV && format != ExportFormatPDF && format != ExportFormatYAML {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}

	user, err := s.records.Get(ctx)
	if err != nil {
		return nil, err
	}

	var (
		body        []byte
		contentType string
	)
	switch format {
	case ExportFormatCSV:
		body, err = s.csv.Render(activityDataset(user))
		contentType = "text/csv"
	case ExportFormatPDF:
		body, err = s.pdf.Render(s.reportDocument(user))
		contentType = "application/pdf"
	case ExportFormatYAML:
		body, err = s.yaml.Render(newRecordView(user))
		contentType = "application/yaml"
	}
	if err != nil {
		s.logger.Error("failed to render export", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportResult{
		Filename:    exportFilename(user.Name, format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

// activityDataset flattens the record to one row per activity. Courses
// without activities still get a row.
func activityDataset(user *models.User) export.Dataset {
	data := export.Dataset{Headers: activityHeaders}
	for _, term := range user.Terms {
		for _, course := range term.Courses {
			base := map[string]string{
				"Term":         term.Title,
				"Course Code":  course.CourseCode,
				"Course":       course.Name,
				"Course GPA":   formatFloat(course.GPA, 2),
				"Course Grade": course.LetterGrade.String(),
			}
			if len(course.Activities) == 0 {
				data.Rows = append(data.Rows, base)
				continue
			}
			for _, activity := range course.Activities {
				row := make(map[string]string, len(activityHeaders))
				for k, v := range base {
					row[k] = v
				}
				row["Activity"] = activity.Name
				row["Due"] = formatDate(activity.DueDate)
				row["Received"] = formatDate(activity.DateReceived)
				row["Points"] = formatFloat(activity.PointsReceived, -1)
				row["Total"] = formatFloat(activity.TotalPoints, -1)
				row["Percentage"] = formatFloat(activity.Percentage, 1)
				row["Activity Grade"] = activity.LetterGrade.String()
				data.Rows = append(data.Rows, row)
			}
		}
	}
	return data
}

func (s *ExportService) reportDocument(user *models.User) export.Document {
	doc := export.Document{
		Title: s.title,
		Summary: []string{
			"Name: " + user.Name,
			"Created: " + user.CreationDate.Format(dateLayout),
			"Terms: " + strconv.Itoa(len(user.Terms)),
		},
	}
	for _, term := range user.Terms {
		heading := fmt.Sprintf("%s  (%s to %s)  GPA %s", term.Title,
			term.StartDate.Format(dateLayout), formatDate(&term.EndDate), formatFloat(term.GPA, 2))
		if term.IsDeansHonour {
			heading += "  Dean's honour"
		}
		data := export.Dataset{Headers: courseHeaders}
		for _, course := range term.Courses {
			status := ""
			if course.IsExemptOrWithdrawn {
				status = "Exempt/Withdrawn"
			}
			data.Rows = append(data.Rows, map[string]string{
				"Code":       course.CourseCode,
				"Course":     course.Name,
				"GPA":        formatFloat(course.GPA, 2),
				"Grade":      course.LetterGrade.String(),
				"Activities": strconv.Itoa(course.ActivityCount),
				"Status":     status,
			})
		}
		doc.Sections = append(doc.Sections, export.Section{Heading: heading, Data: data})
	}
	return doc
}

func exportFilename(name, format string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
	slug = strings.Join(strings.FieldsFunc(slug, func(r rune) bool { return r == '-' }), "-")
	if slug == "" {
		slug = "record"
	}
	return fmt.Sprintf("report-card-%s.%s", slug, format)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
