package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/reportcard/internal/models"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
	"github.com/noah-isme/reportcard/pkg/logger"
	"github.com/noah-isme/reportcard/pkg/storage"
)

var validate = validator.New()

// RecordRepository persists the whole record as one JSON document at a fixed
// path. It does no locking; callers serialize access.
type RecordRepository struct {
	file   *storage.LocalFile
	logger *zap.Logger
}

// NewRecordRepository binds the repository to the document at path.
func NewRecordRepository(path string, log *zap.Logger) *RecordRepository {
	return &RecordRepository{file: storage.NewLocalFile(path), logger: logger.OrNop(log)}
}

// Path returns the document location.
func (r *RecordRepository) Path() string {
	return r.file.Path()
}

// Exists reports whether a record has been saved.
func (r *RecordRepository) Exists() bool {
	return r.file.Exists()
}

// Serialize writes user and everything it owns, replacing the previous
// document atomically. Back-references are not written.
func (r *RecordRepository) Serialize(user *models.User) error {
	if user == nil {
		return appErrors.Clone(appErrors.ErrInvalidArgument, "user is required")
	}
	data, err := Encode(user)
	if err != nil {
		return err
	}
	if err := r.file.WriteAtomic(data); err != nil {
		return appErrors.WrapAs(appErrors.ErrIO, err, "write record")
	}
	r.logger.Debug("record saved",
		zap.String("path", r.file.Path()),
		zap.Int("terms", len(user.Terms)),
		zap.Int("bytes", len(data)))
	return nil
}

// Deserialize reads the document back and relinks every back-reference.
// A missing or unreadable file is ErrIO; bad content is ErrDecode.
func (r *RecordRepository) Deserialize() (*models.User, error) {
	data, err := r.file.Read()
	if err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrIO, err, "read record")
	}
	user, err := Decode(data)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("record loaded", zap.String("path", r.file.Path()), zap.Int("terms", len(user.Terms)))
	return user, nil
}

// Encode renders user as indented JSON.
func Encode(user *models.User) ([]byte, error) {
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode record")
	}
	return append(data, '\n'), nil
}

// Decode parses a record document, checks every entity against the model
// invariants and relinks its back-references. A document that violates them
// is ErrDecode; values are never clamped on the way in.
func Decode(data []byte) (*models.User, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, appErrors.Clone(appErrors.ErrDecode, "record document is empty")
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, appErrors.WrapAs(appErrors.ErrDecode, err, fmt.Sprintf("decode record (%d bytes)", len(data)))
	}
	if err := checkDecoded(&user); err != nil {
		return nil, err
	}
	models.Link(&user)
	return &user, nil
}

func checkDecoded(user *models.User) error {
	for i, term := range user.Terms {
		termAt := fmt.Sprintf("terms[%d]", i)
		if term == nil {
			return nullEntry(termAt)
		}
		if err := checkEntity(termAt, term); err != nil {
			return err
		}
		for j, course := range term.Courses {
			courseAt := fmt.Sprintf("%s.courses[%d]", termAt, j)
			if course == nil {
				return nullEntry(courseAt)
			}
			if err := checkEntity(courseAt, course); err != nil {
				return err
			}
			for k, activity := range course.Activities {
				activityAt := fmt.Sprintf("%s.activities[%d]", courseAt, k)
				if activity == nil {
					return nullEntry(activityAt)
				}
				if err := checkEntity(activityAt, activity); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkEntity(at string, entity interface{}) error {
	if err := validate.Struct(entity); err != nil {
		return appErrors.WrapAs(appErrors.ErrDecode, err, at+": invalid value")
	}
	return nil
}

func nullEntry(at string) error {
	return appErrors.Clone(appErrors.ErrDecode, at+": entry is null")
}
