package dto

import "time"

// CreateCourseRequest is the request body for turning a document into a
// course with a generated quiz.
type CreateCourseRequest struct {
	DocumentURL string `json:"document_url"`
	MimeType    string `json:"mime_type"`
	Title       string `json:"title,omitempty"` // optional override for the extracted title
}

// CourseResponse summarizes a course in list and detail responses.
type CourseResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DocumentURL   string    `json:"document_url"`
	MimeType      string    `json:"mime_type"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuizQuestionResponse is one quiz item as served to the client. The
// correct answer index is withheld until the attempt is scored.
type QuizQuestionResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizResponse bundles the questions of a course quiz.
type QuizResponse struct {
	CourseID  string                 `json:"course_id"`
	Title     string                 `json:"title"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// AttemptRequest is the submitted answer sheet, one selected option index
// per question in quiz order.
type AttemptRequest struct {
	Answers []int `json:"answers"`
}

// AnswerResult reports the outcome of one answered question.
type AnswerResult struct {
	QuestionID    string `json:"question_id"`
	Selected      int    `json:"selected"`
	CorrectAnswer int    `json:"correct_answer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// AttemptResult is the scored outcome of a quiz attempt.
type AttemptResult struct {
	AttemptID     string         `json:"attempt_id"`
	CourseID      string         `json:"course_id"`
	Score         int            `json:"score"`
	Total         int            `json:"total"`
	PointsAwarded int            `json:"points_awarded"`
	Answers       []AnswerResult `json:"answers"`
}
