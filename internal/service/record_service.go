package service

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/reportcard/internal/builder"
	"github.com/noah-isme/reportcard/internal/dto"
	"github.com/noah-isme/reportcard/internal/models"
	"github.com/noah-isme/reportcard/internal/repository"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
	"github.com/noah-isme/reportcard/pkg/logger"
)

const (
	recordCacheKey     = "record:current"
	recordCachePattern = "record:*"
)

// RecordStore is the whole-document persistence gateway.
type RecordStore interface {
	Serialize(user *models.User) error
	Deserialize() (*models.User, error)
}

// SnapshotStore keeps the history of saved documents.
type SnapshotStore interface {
	Create(ctx context.Context, snapshot *models.RecordSnapshot) error
	List(ctx context.Context, limit int) ([]models.RecordSnapshot, error)
	GetByID(ctx context.Context, id string) (*models.RecordSnapshot, error)
}

// RecordService owns the record document. The gateway underneath is not safe
// for concurrent use, so every operation holds mu.
type RecordService struct {
	mu        sync.Mutex
	store     RecordStore
	snapshots SnapshotStore
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewRecordService wires the service. snapshots, cache and metrics are optional.
func NewRecordService(store RecordStore, snapshots SnapshotStore, cache *CacheService, metrics *MetricsService, validate *validator.Validate, log *zap.Logger) *RecordService {
	if validate == nil {
		validate = validator.New()
	}
	return &RecordService{
		store:     store,
		snapshots: snapshots,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger.OrNop(log),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SnapshotsEnabled reports whether a history store is wired.
func (s *RecordService) SnapshotsEnabled() bool {
	return s.snapshots != nil
}

// Get returns the current record with back-references linked.
func (s *RecordService) Get(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Replace builds a new record from req and overwrites the saved one.
func (s *RecordService) Replace(ctx context.Context, req dto.RecordRequest) (*dto.RecordSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid record payload")
	}
	user, err := buildUser(req, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, user)
}

// AddTerm appends one term to the saved record.
func (s *RecordService) AddTerm(ctx context.Context, req dto.TermRequest) (*dto.RecordSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid term payload")
	}
	term, err := buildTerm(req, s.now())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	terms := make([]*models.Term, 0, len(current.Terms)+1)
	terms = append(terms, current.Terms...)
	terms = append(terms, term)

	ub := builder.NewUserBuilder().SetName(current.Name).SetCreationDate(current.CreationDate)
	if err := ub.SetTerms(terms); err != nil {
		return nil, err
	}
	user, err := ub.Build()
	if err != nil {
		return nil, err
	}
	return s.save(ctx, user)
}

// Snapshots lists the saved history, newest first.
func (s *RecordService) Snapshots(ctx context.Context, limit int) ([]models.RecordSnapshot, error) {
	if s.snapshots == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "snapshot history is disabled")
	}
	items, err := s.snapshots.List(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list snapshots")
	}
	if items == nil {
		items = []models.RecordSnapshot{}
	}
	return items, nil
}

// RestoreSnapshot makes a saved snapshot the current record.
func (s *RecordService) RestoreSnapshot(ctx context.Context, id string) (*dto.RecordSummary, error) {
	if s.snapshots == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "snapshot history is disabled")
	}
	snapshot, err := s.snapshots.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "snapshot not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load snapshot")
	}
	user, err := repository.Decode(snapshot.Document)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Info("restoring record snapshot", zap.String("snapshot_id", id))
	return s.save(ctx, user)
}

func (s *RecordService) load(ctx context.Context) (*models.User, error) {
	var cached models.User
	if hit, _ := s.cache.Get(ctx, recordCacheKey, &cached); hit {
		models.Link(&cached)
		return &cached, nil
	}

	start := time.Now()
	user, err := s.store.Deserialize()
	s.metrics.ObserveRecordLoad(time.Since(start), err)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "record not initialised")
		}
		s.logger.Error("failed to load record", zap.Error(err))
		return nil, err
	}

	_ = s.cache.Set(ctx, recordCacheKey, user, 0)
	return user, nil
}

// save writes user, drops cached copies and appends to the history. A failed
// history write is logged and does not fail the save.
func (s *RecordService) save(ctx context.Context, user *models.User) (*dto.RecordSummary, error) {
	document, err := repository.Encode(user)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	err = s.store.Serialize(user)
	s.metrics.ObserveRecordSave(time.Since(start), len(document), err)
	if err != nil {
		s.logger.Error("failed to save record", zap.Error(err))
		return nil, err
	}

	_ = s.cache.Invalidate(ctx, recordCachePattern)

	terms, courses, activities := countRecord(user)
	summary := &dto.RecordSummary{
		Name:       user.Name,
		Terms:      terms,
		Courses:    courses,
		Activities: activities,
		SavedAt:    s.now(),
	}

	if s.snapshots != nil {
		snapshot := &models.RecordSnapshot{
			UserName:  user.Name,
			TermCount: terms,
			Document:  document,
			CreatedAt: summary.SavedAt,
		}
		err := s.snapshots.Create(ctx, snapshot)
		s.metrics.ObserveSnapshot(err)
		if err != nil {
			s.logger.Warn("failed to write record snapshot", zap.Error(err))
		} else {
			summary.SnapshotID = snapshot.ID
		}
	}

	s.logger.Info("record saved",
		zap.String("name", user.Name),
		zap.Int("terms", terms),
		zap.Int("courses", courses),
		zap.Int("activities", activities))
	return summary, nil
}
