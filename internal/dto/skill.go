package dto

import "time"

// CreateSkillRequest is the request body for tracking a new daily habit.
type CreateSkillRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// SkillResponse is a tracked habit with its streak state.
type SkillResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon,omitempty"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	CompletedToday bool      `json:"completed_today"`
	CreatedAt      time.Time `json:"created_at"`
}

// SkillCompletionResponse reports the outcome of marking a skill done for
// the day.
type SkillCompletionResponse struct {
	SkillID       string `json:"skill_id"`
	CurrentStreak int    `json:"current_streak"`
	PointsAwarded int    `json:"points_awarded"`
}
