package store

import (
	"context"
	"database/sql"
	"time"
)

type Repository interface {
	CreateExport(ctx context.Context, record *ExportRecord) error
	GetExport(ctx context.Context, id string) (*ExportRecord, error)
	ListExports(ctx context.Context, limit int) ([]*ExportRecord, error)
	CountExports(ctx context.Context) (int, error)

	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateExport(ctx context.Context, e *ExportRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO exports (id, clip_id, format, template_id, quality, output_path, success, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.ClipID, e.Format, e.TemplateID, e.Quality, e.OutputPath, boolToInt(e.Success), nullString(e.Error), e.CreatedAt.Format(time.RFC3339))
	return err
}

func (r *SQLiteRepository) GetExport(ctx context.Context, id string) (*ExportRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, clip_id, format, template_id, quality, output_path, success, error, created_at
		FROM exports WHERE id = ?
	`, id)
	return r.scanExport(row)
}

func (r *SQLiteRepository) scanExport(row *sql.Row) (*ExportRecord, error) {
	var e ExportRecord
	var success int
	var errMsg sql.NullString
	var createdAt string

	err := row.Scan(&e.ID, &e.ClipID, &e.Format, &e.TemplateID, &e.Quality, &e.OutputPath, &success, &errMsg, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	e.Success = success == 1
	e.Error = errMsg.String
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}

func (r *SQLiteRepository) ListExports(ctx context.Context, limit int) ([]*ExportRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, clip_id, format, template_id, quality, output_path, success, error, created_at
		FROM exports ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exports []*ExportRecord
	for rows.Next() {
		var e ExportRecord
		var success int
		var errMsg sql.NullString
		var createdAt string

		if err := rows.Scan(&e.ID, &e.ClipID, &e.Format, &e.TemplateID, &e.Quality, &e.OutputPath, &success, &errMsg, &createdAt); err != nil {
			return nil, err
		}
		e.Success = success == 1
		e.Error = errMsg.String
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		exports = append(exports, &e)
	}
	return exports, rows.Err()
}

func (r *SQLiteRepository) CountExports(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exports`).Scan(&count)
	return count, err
}

func (r *SQLiteRepository) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *SQLiteRepository) SetConfig(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
