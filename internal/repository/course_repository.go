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

// CourseRepository persists courses and their generated questions.
type CourseRepository interface {
	// CreateWithQuestions inserts the course and its questions in one
	// transaction.
	CreateWithQuestions(ctx context.Context, course *models.Course, questions []models.Question) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	ListByUser(ctx context.Context, userID string) ([]models.Course, error)
	GetQuestions(ctx context.Context, courseID string) ([]models.Question, error)
}

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateWithQuestions(ctx context.Context, course *models.Course, questions []models.Question) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	courseQuery := `INSERT INTO courses (id, user_id, title, document_url, mime_type, created_at, updated_at)
		VALUES (:id, :user_id, :title, :document_url, :mime_type, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, courseQuery, course); err != nil {
		return domain.NewInternalError("failed to create course", err)
	}

	questionQuery := `INSERT INTO questions (id, course_id, question, options, correct_answer, explanation, position, created_at)
		VALUES (:id, :course_id, :question, :options, :correct_answer, :explanation, :position, :created_at)`
	for i := range questions {
		questions[i].CreatedAt = now
		if _, err := tx.NamedExecContext(ctx, questionQuery, questions[i]); err != nil {
			return domain.NewInternalError("failed to create question", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.NewInternalError("failed to commit course", err)
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	query := `SELECT * FROM courses WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &course, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get course", err)
	}
	return &course, nil
}

func (r *courseRepository) ListByUser(ctx context.Context, userID string) ([]models.Course, error) {
	var courses []models.Course
	query := `SELECT * FROM courses WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &courses, query, userID); err != nil {
		return nil, domain.NewInternalError("failed to list courses", err)
	}
	return courses, nil
}

func (r *courseRepository) GetQuestions(ctx context.Context, courseID string) ([]models.Question, error) {
	var questions []models.Question
	query := `SELECT * FROM questions WHERE course_id = $1 ORDER BY position ASC`
	if err := r.db.SelectContext(ctx, &questions, query, courseID); err != nil {
		return nil, domain.NewInternalError("failed to get questions", err)
	}
	return questions, nil
}
