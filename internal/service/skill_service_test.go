package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/repository"
	"forceskill/internal/repository/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// consecutiveDays returns n completion dates ending on last, most recent first.
func consecutiveDays(last time.Time, n int) []time.Time {
	dates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		dates[i] = last.AddDate(0, 0, -i)
	}
	return dates
}

func TestCreateSkill_Success(t *testing.T) {
	skillRepo := new(MockSkillRepository)
	skillRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Skill) bool {
		return s.Name == "Lightsaber drills" && s.UserID == "user-1" && s.ID != ""
	})).Return(nil)

	svc := NewSkillService(skillRepo, new(MockUserRepository), nil)
	resp, err := svc.CreateSkill(context.Background(), "user-1", &dto.CreateSkillRequest{Name: "Lightsaber drills", Icon: "saber"})

	assert.NoError(t, err)
	assert.Equal(t, "Lightsaber drills", resp.Name)
	assert.Equal(t, "saber", resp.Icon)
	skillRepo.AssertExpectations(t)
}

func TestCreateSkill_EmptyName(t *testing.T) {
	svc := NewSkillService(new(MockSkillRepository), new(MockUserRepository), nil)
	resp, err := svc.CreateSkill(context.Background(), "user-1", &dto.CreateSkillRequest{Name: ""})

	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestListSkills_Streaks(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	skillRepo := new(MockSkillRepository)
	skillRepo.On("ListByUser", mock.Anything, "user-1").Return([]models.Skill{
		{ID: "skill-1", UserID: "user-1", Name: "Meditation"},
	}, nil)
	// Completed today and the two days before.
	skillRepo.On("GetCompletionDates", mock.Anything, "skill-1").
		Return(consecutiveDays(day(2024, 3, 10), 3), nil)

	svc := NewSkillService(skillRepo, new(MockUserRepository), func() time.Time { return now })
	skills, err := svc.ListSkills(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, skills, 1)
	assert.Equal(t, 3, skills[0].CurrentStreak)
	assert.Equal(t, 3, skills[0].LongestStreak)
	assert.True(t, skills[0].CompletedToday)
}

func TestCompleteToday_BasePoints(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	skillRepo := new(MockSkillRepository)
	userRepo := new(MockUserRepository)

	skillRepo.On("GetByID", mock.Anything, "skill-1").
		Return(&models.Skill{ID: "skill-1", UserID: "user-1", Name: "Meditation"}, nil)
	skillRepo.On("LogCompletion", mock.Anything, mock.MatchedBy(func(l *models.SkillLog) bool {
		return l.SkillID == "skill-1" && l.CompletedOn.Equal(day(2024, 3, 10))
	})).Return(nil)
	skillRepo.On("GetCompletionDates", mock.Anything, "skill-1").
		Return(consecutiveDays(day(2024, 3, 10), 2), nil)
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&models.User{ID: "user-1", Points: 40, Rank: string(domain.RankYoungling)}, nil)
	userRepo.On("UpdatePointsAndRank", mock.Anything, "user-1", 45, string(domain.RankYoungling)).Return(nil)

	svc := NewSkillService(skillRepo, userRepo, func() time.Time { return now })
	resp, err := svc.CompleteToday(context.Background(), "user-1", "skill-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.CurrentStreak)
	assert.Equal(t, domain.SkillCompletionPoints, resp.PointsAwarded)
	userRepo.AssertExpectations(t)
}

func TestCompleteToday_WeekStreakBonus(t *testing.T) {
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	skillRepo := new(MockSkillRepository)
	userRepo := new(MockUserRepository)

	skillRepo.On("GetByID", mock.Anything, "skill-1").
		Return(&models.Skill{ID: "skill-1", UserID: "user-1", Name: "Meditation"}, nil)
	skillRepo.On("LogCompletion", mock.Anything, mock.Anything).Return(nil)
	// Today's completion is the seventh consecutive day.
	skillRepo.On("GetCompletionDates", mock.Anything, "skill-1").
		Return(consecutiveDays(day(2024, 3, 10), 7), nil)
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&models.User{ID: "user-1", Points: 80, Rank: string(domain.RankYoungling)}, nil)
	userRepo.On("UpdatePointsAndRank", mock.Anything, "user-1", 105, string(domain.RankPadawan)).Return(nil)

	svc := NewSkillService(skillRepo, userRepo, func() time.Time { return now })
	resp, err := svc.CompleteToday(context.Background(), "user-1", "skill-1")

	assert.NoError(t, err)
	assert.Equal(t, 7, resp.CurrentStreak)
	assert.Equal(t, domain.SkillCompletionPoints+domain.StreakBonusWeek, resp.PointsAwarded)
	userRepo.AssertExpectations(t)
}

func TestCompleteToday_AlreadyCompleted(t *testing.T) {
	now := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	skillRepo := new(MockSkillRepository)

	skillRepo.On("GetByID", mock.Anything, "skill-1").
		Return(&models.Skill{ID: "skill-1", UserID: "user-1", Name: "Meditation"}, nil)
	skillRepo.On("LogCompletion", mock.Anything, mock.Anything).Return(repository.ErrDuplicateLog)

	svc := NewSkillService(skillRepo, new(MockUserRepository), func() time.Time { return now })
	resp, err := svc.CompleteToday(context.Background(), "user-1", "skill-1")

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeAlreadyCompleted, domainErr.Code)
}

func TestCompleteToday_OtherUsersSkill(t *testing.T) {
	skillRepo := new(MockSkillRepository)
	skillRepo.On("GetByID", mock.Anything, "skill-1").
		Return(&models.Skill{ID: "skill-1", UserID: "someone-else", Name: "Meditation"}, nil)

	svc := NewSkillService(skillRepo, new(MockUserRepository), nil)
	resp, err := svc.CompleteToday(context.Background(), "user-1", "skill-1")

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSkillNotFound, domainErr.Code)
	skillRepo.AssertNotCalled(t, "LogCompletion", mock.Anything, mock.Anything)
}
