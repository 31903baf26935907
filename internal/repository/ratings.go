package repository

import (
	"context"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
)

func (r *Repository) GetRatingByUserID(userID int64) (*domain.Rating, error) {
	query := `
		SELECT id, competence_star, competence_comment, punctuality_star, punctuality_comment,
			behavior_star, behavior_comment, created_at, updated_at, version
		FROM ratings WHERE user_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rating := &domain.Rating{
		UserID: userID,
	}

	dst := []any{
		&rating.ID,
		&rating.Competence.Star, &rating.Competence.Comment,
		&rating.Punctuality.Star, &rating.Punctuality.Comment,
		&rating.Behavior.Star, &rating.Behavior.Comment,
		&rating.CreatedAt, &rating.UpdatedAt, &rating.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, userID).Scan(dst...); err != nil {
		return nil, err
	}

	return rating, nil
}

// UpsertRating writes the three category scores for a user, creating the row
// on first rating. Ratings are keyed by user, one row each.
func (r *Repository) UpsertRating(rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (user_id, competence_star, competence_comment, punctuality_star, punctuality_comment, behavior_star, behavior_comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET
			competence_star = EXCLUDED.competence_star,
			competence_comment = EXCLUDED.competence_comment,
			punctuality_star = EXCLUDED.punctuality_star,
			punctuality_comment = EXCLUDED.punctuality_comment,
			behavior_star = EXCLUDED.behavior_star,
			behavior_comment = EXCLUDED.behavior_comment,
			updated_at = NOW(),
			version = ratings.version + 1
		RETURNING id, created_at, updated_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{
		rating.UserID,
		rating.Competence.Star, rating.Competence.Comment,
		rating.Punctuality.Star, rating.Punctuality.Comment,
		rating.Behavior.Star, rating.Behavior.Comment,
	}
	dst := []any{&rating.ID, &rating.CreatedAt, &rating.UpdatedAt, &rating.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}
