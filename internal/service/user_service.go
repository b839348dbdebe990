package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"forceskill/internal/cache"
	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/logger"
	"forceskill/internal/quizgen"
	"forceskill/internal/repository"
)

// assessmentCacheTTL bounds how long a served question set stays scoreable.
const assessmentCacheTTL = 24 * time.Hour

// UserService serves profiles and the initial rank assessment.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
	// GetAssessment returns the habit questionnaire used to place new users
	// on the rank ladder.
	GetAssessment(ctx context.Context) *dto.AssessmentResponse
	// SubmitAssessment scores the questionnaire and, for authenticated
	// users, seeds their points and rank.
	SubmitAssessment(ctx context.Context, userID string, submission *dto.AssessmentSubmission) (*dto.AssessmentResult, error)
}

type userServiceImpl struct {
	userRepo  repository.UserRepository
	generator QuizGenerator
	cache     domain.Cache
}

func NewUserService(userRepo repository.UserRepository, generator QuizGenerator, c domain.Cache) UserService {
	return &userServiceImpl{userRepo: userRepo, generator: generator, cache: c}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NewNotFoundError("user")
	}

	resp := &dto.UserProfileResponse{
		ID:     user.ID,
		Email:  user.Email,
		Points: user.Points,
		Rank:   user.Rank,
	}
	if user.Name.Valid {
		resp.Name = user.Name.String
	}
	if user.ProfilePictureURL.Valid {
		resp.ProfilePictureURL = user.ProfilePictureURL.String
	}
	if next, minPoints, ok := domain.NextRank(domain.Rank(user.Rank)); ok {
		resp.NextRank = string(next)
		resp.PointsToNextRank = minPoints - user.Points
	}
	return resp, nil
}

func (s *userServiceImpl) GetAssessment(ctx context.Context) *dto.AssessmentResponse {
	questions := s.servedAssessment(ctx)
	if questions == nil {
		questions = s.generator.GenerateRankAssessment(ctx)
		s.storeAssessment(ctx, questions)
	}
	resp := &dto.AssessmentResponse{
		Questions: make([]dto.QuizQuestionResponse, len(questions)),
	}
	for i, q := range questions {
		resp.Questions[i] = dto.QuizQuestionResponse{
			Question: q.Question,
			Options:  q.Options,
		}
	}
	return resp
}

// assessmentCacheKey names the pinned question set shared by serve and
// submit. Scoring must run against the set the client was shown, never a
// fresh generation.
func assessmentCacheKey() string {
	return cache.GenerateCacheKey("user", "assessment", "current")
}

// servedAssessment returns the pinned question set, or nil when none is
// cached.
func (s *userServiceImpl) servedAssessment(ctx context.Context) []domain.QuizQuestion {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx, assessmentCacheKey())
	if err != nil {
		return nil
	}
	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(cached), &questions); err != nil || len(questions) == 0 {
		return nil
	}
	return questions
}

func (s *userServiceImpl) storeAssessment(ctx context.Context, questions []domain.QuizQuestion) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(questions)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, assessmentCacheKey(), string(payload), assessmentCacheTTL); err != nil {
		logger.Get().Warn("Failed to cache assessment", zap.Error(err))
	}
}

func (s *userServiceImpl) SubmitAssessment(ctx context.Context, userID string, submission *dto.AssessmentSubmission) (*dto.AssessmentResult, error) {
	questions := s.servedAssessment(ctx)
	if questions == nil {
		// No pinned set survives; grade against the fixed question set
		// rather than a fresh sample the user may never have seen.
		questions = quizgen.FallbackRankAssessment()
	}
	if len(submission.Answers) != len(questions) {
		return nil, domain.NewInvalidInputError("answer count does not match question count")
	}

	score := 0
	for i, q := range questions {
		if submission.Answers[i] == q.CorrectAnswer {
			score++
		}
	}
	points := score * domain.PointsPerCorrectAnswer
	rank := domain.RankForPoints(points)

	if userID != "" {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.NewNotFoundError("user")
		}
		newPoints := user.Points + points
		rank = domain.RankForPoints(newPoints)
		if err := s.userRepo.UpdatePointsAndRank(ctx, userID, newPoints, string(rank)); err != nil {
			return nil, err
		}
	}

	return &dto.AssessmentResult{
		Score:  score,
		Total:  len(questions),
		Points: points,
		Rank:   string(rank),
	}, nil
}
