package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/reportcard/internal/models"
)

// document is BYTEA rather than JSONB: letter-grade codes may hold interior
// empty slots, encoded as \u0000, which JSONB refuses.
const snapshotSchema = `CREATE TABLE IF NOT EXISTS record_snapshots (
	id TEXT PRIMARY KEY,
	user_name TEXT NOT NULL,
	term_count INTEGER NOT NULL,
	document BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// SnapshotRepository keeps a history of saved record documents in Postgres.
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository constructs the repository.
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// EnsureSchema creates the snapshot table when missing.
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, snapshotSchema); err != nil {
		return fmt.Errorf("ensure snapshot schema: %w", err)
	}
	return nil
}

// Create stores one document.
func (r *SnapshotRepository) Create(ctx context.Context, snapshot *models.RecordSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO record_snapshots (id, user_name, term_count, document, created_at)
	VALUES (:id, :user_name, :term_count, :document, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, snapshot); err != nil {
		return fmt.Errorf("create record snapshot: %w", err)
	}
	return nil
}

// List returns snapshot metadata, newest first. Documents are not loaded.
func (r *SnapshotRepository) List(ctx context.Context, limit int) ([]models.RecordSnapshot, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const query = `SELECT id, user_name, term_count, created_at
	FROM record_snapshots ORDER BY created_at DESC LIMIT $1`
	var snapshots []models.RecordSnapshot
	if err := r.db.SelectContext(ctx, &snapshots, query, limit); err != nil {
		return nil, fmt.Errorf("list record snapshots: %w", err)
	}
	return snapshots, nil
}

// GetByID loads one snapshot including its document. A missing row returns
// sql.ErrNoRows.
func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (*models.RecordSnapshot, error) {
	const query = `SELECT id, user_name, term_count, document, created_at
	FROM record_snapshots WHERE id = $1`
	var snapshot models.RecordSnapshot
	if err := r.db.GetContext(ctx, &snapshot, query, id); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
