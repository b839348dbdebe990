package domain

// MaxQuizQuestions bounds every generated quiz, LLM-backed or fallback.
const MaxQuizQuestions = 5

// PointsPerCorrectAnswer is awarded for each correctly answered question.
const PointsPerCorrectAnswer = 10

// QuizQuestion is one multiple-choice item. Instances are immutable once
// produced, whether they came from the LLM or the fallback generator.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the QuizQuestion contract: non-empty question and
// explanation, at least two non-empty options, and a correct index in range.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError("question", "question text is required")
	}
	if len(q.Options) < 2 {
		return NewValidationError("options", "at least two options are required")
	}
	for _, opt := range q.Options {
		if opt == "" {
			return NewValidationError("options", "options must be non-empty")
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return NewValidationError("correct_answer", "correct answer index out of range")
	}
	if q.Explanation == "" {
		return NewValidationError("explanation", "explanation is required")
	}
	return nil
}

// NewValidationError builds a single-field ValidationError as an error value.
func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}
