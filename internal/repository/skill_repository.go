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

// SkillRepository persists skills and their daily completion logs.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id string) (*models.Skill, error)
	ListByUser(ctx context.Context, userID string) ([]models.Skill, error)
	// LogCompletion records one completed day. Returns ErrDuplicateLog when
	// the day is already logged.
	LogCompletion(ctx context.Context, log *models.SkillLog) error
	// GetCompletionDates returns completed_on values, most recent first.
	GetCompletionDates(ctx context.Context, skillID string) ([]time.Time, error)
}

// ErrDuplicateLog signals a second completion log for the same day.
var ErrDuplicateLog = errors.New("skill already logged for this day")

type skillRepository struct {
	db *sqlx.DB
}

func NewSkillRepository(db *sqlx.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	skill.CreatedAt = time.Now()
	query := `INSERT INTO skills (id, user_id, name, icon, created_at)
		VALUES (:id, :user_id, :name, :icon, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, skill); err != nil {
		return domain.NewInternalError("failed to create skill", err)
	}
	return nil
}

func (r *skillRepository) GetByID(ctx context.Context, id string) (*models.Skill, error) {
	var skill models.Skill
	query := `SELECT * FROM skills WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.GetContext(ctx, &skill, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewInternalError("failed to get skill", err)
	}
	return &skill, nil
}

func (r *skillRepository) ListByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	var skills []models.Skill
	query := `SELECT * FROM skills WHERE user_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &skills, query, userID); err != nil {
		return nil, domain.NewInternalError("failed to list skills", err)
	}
	return skills, nil
}

func (r *skillRepository) LogCompletion(ctx context.Context, log *models.SkillLog) error {
	log.CreatedAt = time.Now()
	query := `INSERT INTO skill_logs (id, skill_id, completed_on, created_at)
		VALUES (:id, :skill_id, :completed_on, :created_at)
		ON CONFLICT (skill_id, completed_on) DO NOTHING`
	res, err := r.db.NamedExecContext(ctx, query, log)
	if err != nil {
		return domain.NewInternalError("failed to log completion", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.NewInternalError("failed to read log result", err)
	}
	if affected == 0 {
		return ErrDuplicateLog
	}
	return nil
}

func (r *skillRepository) GetCompletionDates(ctx context.Context, skillID string) ([]time.Time, error) {
	var dates []time.Time
	query := `SELECT completed_on FROM skill_logs WHERE skill_id = $1 ORDER BY completed_on DESC`
	if err := r.db.SelectContext(ctx, &dates, query, skillID); err != nil {
		return nil, domain.NewInternalError("failed to get completion dates", err)
	}
	return dates, nil
}
