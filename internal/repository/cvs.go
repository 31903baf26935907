package repository

import (
	"context"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

func (r *Repository) GetAllCVs(page int, limit int) ([]*domain.CV, int, error) {
	query := `
		SELECT id, name, designation, user_id, location, file_url, approval_status, created_at, updated_at, version,
			COUNT(*) OVER() AS total
		FROM cvs
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	rows, err := r.dbpool.QueryContext(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cvs := make([]*domain.CV, 0)
	total := 0
	for rows.Next() {
		cv := &domain.CV{}
		dst := []any{&cv.ID, &cv.Name, &cv.Designation, &cv.UserID, &cv.Location, &cv.FileURL, &cv.ApprovalStatus, &cv.CreatedAt, &cv.UpdatedAt, &cv.Version, &total}
		if err := rows.Scan(dst...); err != nil {
			return nil, 0, err
		}
		cvs = append(cvs, cv)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return cvs, total, nil
}

func (r *Repository) GetCVByID(id int64) (*domain.CV, error) {
	query := `
		SELECT name, designation, user_id, location, file_url, approval_status, created_at, updated_at, version
		FROM cvs WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	cv := &domain.CV{
		ID: id,
	}

	dst := []any{&cv.Name, &cv.Designation, &cv.UserID, &cv.Location, &cv.FileURL, &cv.ApprovalStatus, &cv.CreatedAt, &cv.UpdatedAt, &cv.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return cv, nil
}

func (r *Repository) UpdateCVStatus(cv *domain.CV) error {
	query := `
		UPDATE cvs
		SET
			approval_status = $1,
			updated_at = NOW(),
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, cv.ApprovalStatus, cv.ID, cv.Version).Scan(&cv.UpdatedAt, &cv.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CreateCV(cv *domain.CV) error {
	query := `
		INSERT INTO cvs (name, designation, user_id, location, file_url, approval_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{cv.Name, cv.Designation, cv.UserID, cv.Location, cv.FileURL, cv.ApprovalStatus}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&cv.ID, &cv.CreatedAt, &cv.UpdatedAt, &cv.Version); err != nil {
		return err
	}

	return nil
}
