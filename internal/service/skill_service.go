package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/logger"
	"forceskill/internal/repository"
	"forceskill/internal/repository/models"
	"forceskill/internal/util"
)

// SkillService tracks daily habits and their streaks.
type SkillService interface {
	CreateSkill(ctx context.Context, userID string, req *dto.CreateSkillRequest) (*dto.SkillResponse, error)
	ListSkills(ctx context.Context, userID string) ([]dto.SkillResponse, error)
	// CompleteToday marks the skill done for the current day and awards
	// completion points plus any streak bonus.
	CompleteToday(ctx context.Context, userID, skillID string) (*dto.SkillCompletionResponse, error)
}

type skillServiceImpl struct {
	skillRepo repository.SkillRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

// NewSkillService creates a skill service. now is injectable for tests; nil
// uses time.Now.
func NewSkillService(skillRepo repository.SkillRepository, userRepo repository.UserRepository, now func() time.Time) SkillService {
	if now == nil {
		now = time.Now
	}
	return &skillServiceImpl{skillRepo: skillRepo, userRepo: userRepo, now: now}
}

func (s *skillServiceImpl) CreateSkill(ctx context.Context, userID string, req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	skill := &domain.Skill{Name: req.Name}
	if err := skill.Validate(); err != nil {
		return nil, err
	}

	model := &models.Skill{
		ID:     util.NewULID(),
		UserID: userID,
		Name:   req.Name,
		Icon:   req.Icon,
	}
	if err := s.skillRepo.Create(ctx, model); err != nil {
		return nil, err
	}

	return &dto.SkillResponse{
		ID:        model.ID,
		Name:      model.Name,
		Icon:      model.Icon,
		CreatedAt: model.CreatedAt,
	}, nil
}

func (s *skillServiceImpl) ListSkills(ctx context.Context, userID string) ([]dto.SkillResponse, error) {
	skills, err := s.skillRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]dto.SkillResponse, 0, len(skills))
	for _, sk := range skills {
		dates, err := s.skillRepo.GetCompletionDates(ctx, sk.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.SkillResponse{
			ID:             sk.ID,
			Name:           sk.Name,
			Icon:           sk.Icon,
			CurrentStreak:  domain.CurrentStreak(dates, now),
			LongestStreak:  domain.LongestStreak(dates),
			CompletedToday: completedOn(dates, now),
			CreatedAt:      sk.CreatedAt,
		})
	}
	return responses, nil
}

func (s *skillServiceImpl) CompleteToday(ctx context.Context, userID, skillID string) (*dto.SkillCompletionResponse, error) {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill == nil || skill.UserID != userID {
		return nil, domain.NewSkillNotFoundError(skillID)
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	log := &models.SkillLog{
		ID:          util.NewULID(),
		SkillID:     skillID,
		CompletedOn: today,
	}
	if err := s.skillRepo.LogCompletion(ctx, log); err != nil {
		if errors.Is(err, repository.ErrDuplicateLog) {
			return nil, domain.NewAlreadyCompletedError(skillID)
		}
		return nil, err
	}

	dates, err := s.skillRepo.GetCompletionDates(ctx, skillID)
	if err != nil {
		return nil, err
	}
	streak := domain.CurrentStreak(dates, now)
	points := domain.CompletionPoints(streak)

	if err := s.awardPoints(ctx, userID, points); err != nil {
		logger.Get().Error("Failed to award skill points",
			zap.String("userID", userID), zap.String("skillID", skillID), zap.Error(err))
	}

	logger.Get().Info("Skill completed",
		zap.String("skillID", skillID),
		zap.Int("streak", streak),
		zap.Int("points", points))

	return &dto.SkillCompletionResponse{
		SkillID:       skillID,
		CurrentStreak: streak,
		PointsAwarded: points,
	}, nil
}

func (s *skillServiceImpl) awardPoints(ctx context.Context, userID string, points int) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("user")
	}
	newPoints := user.Points + points
	return s.userRepo.UpdatePointsAndRank(ctx, userID, newPoints, string(domain.RankForPoints(newPoints)))
}

func completedOn(dates []time.Time, now time.Time) bool {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, d := range dates {
		if time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).Equal(day) {
			return true
		}
	}
	return false
}
