package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"forceskill/internal/domain"
	"forceskill/internal/repository/models"
)

// UserRepository persists users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	UpdatePointsAndRank(ctx context.Context, id string, points int, rank string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	query := `INSERT INTO users (id, google_id, email, name, profile_picture_url, points, rank, created_at, updated_at)
		VALUES (:id, :google_id, :email, :name, :profile_picture_url, :points, :rank, :created_at, :updated_at)`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return domain.NewInternalError("failed to create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get user by id", err)
	}
	return &user, nil
}

func (r *userRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	query := `SELECT * FROM users WHERE google_id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &user, query, googleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get user by google id", err)
	}
	return &user, nil
}

func (r *userRepository) UpdatePointsAndRank(ctx context.Context, id string, points int, rank string) error {
	query := `UPDATE users SET points = $1, rank = $2, updated_at = $3 WHERE id = $4 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, points, rank, time.Now(), id)
	if err != nil {
		return domain.NewInternalError("failed to update user points", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewInternalError("failed to read update result", err)
	}
	if affected == 0 {
		return domain.NewNotFoundError("user")
	}
	return nil
}
