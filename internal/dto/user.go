package dto

// UserProfileResponse describes the authenticated user and their
// progression state.
type UserProfileResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	Points            int    `json:"points"`
	Rank              string `json:"rank"`
	NextRank          string `json:"next_rank,omitempty"`
	PointsToNextRank  int    `json:"points_to_next_rank,omitempty"`
}

// AssessmentResponse carries the habit assessment questionnaire.
type AssessmentResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
}

// AssessmentSubmission is the answered questionnaire, one selected option
// index per question.
type AssessmentSubmission struct {
	Answers []int `json:"answers"`
}

// AssessmentResult reports the rank assigned from the questionnaire.
type AssessmentResult struct {
	Score  int    `json:"score"`
	Total  int    `json:"total"`
	Points int    `json:"points"`
	Rank   string `json:"rank"`
}
