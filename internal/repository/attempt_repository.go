package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"forceskill/internal/domain"
	"forceskill/internal/repository/models"
)

// AttemptRepository persists scored quiz attempts.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	ListByCourse(ctx context.Context, courseID string) ([]models.Attempt, error)
}

type attemptRepository struct {
	db *sqlx.DB
}

func NewAttemptRepository(db *sqlx.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	attempt.AttemptedAt = time.Now()
	query := `INSERT INTO attempts (id, user_id, course_id, score, total, points_awarded, attempted_at)
		VALUES (:id, :user_id, :course_id, :score, :total, :points_awarded, :attempted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, attempt); err != nil {
		return domain.NewInternalError("failed to create attempt", err)
	}
	return nil
}

func (r *attemptRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Attempt, error) {
	var attempts []models.Attempt
	query := `SELECT * FROM attempts WHERE course_id = $1 ORDER BY attempted_at DESC`
	if err := r.db.SelectContext(ctx, &attempts, query, courseID); err != nil {
		return nil, domain.NewInternalError("failed to list attempts", err)
	}
	return attempts, nil
}
