package postgres

import (
	"context"
	"database/sql"

	"casewrite/internal/model"
	"casewrite/internal/repository"
)

// IntakePostgres is a PostgreSQL implementation of repository.IntakeRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type IntakePostgres struct {
	db *sql.DB
}

// NewIntakePostgres creates a new IntakePostgres repository.
func NewIntakePostgres(db *sql.DB) *IntakePostgres {
	return &IntakePostgres{db: db}
}

var _ repository.IntakeRepository = (*IntakePostgres)(nil)

// Record inserts a ledger row.
func (r *IntakePostgres) Record(ctx context.Context, rec *model.IntakeRecord) error {
	const q = `
		INSERT INTO intakes (id, case_id, has_text, content_type, file_size, status, error_kind, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, q,
		rec.ID,
		rec.CaseID,
		rec.HasText,
		rec.ContentType,
		rec.FileSize,
		rec.Status,
		rec.ErrorKind,
		rec.DurationMs,
		rec.CreatedAt,
	)
	return err
}

// List returns ledger rows using LIMIT/OFFSET pagination and a total count.
func (r *IntakePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.IntakeRecord], error) {
	const qCount = `SELECT COUNT(*) FROM intakes`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, case_id, has_text, content_type, file_size, status, error_kind, duration_ms, created_at
		FROM intakes
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.IntakeRecord, 0)
	for rows.Next() {
		var rec model.IntakeRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.CaseID,
			&rec.HasText,
			&rec.ContentType,
			&rec.FileSize,
			&rec.Status,
			&rec.ErrorKind,
			&rec.DurationMs,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.IntakeRecord]{
		Items: items,
		Total: total,
	}, nil
}
