package quizgen

import "forceskill/internal/domain"

// Distractors used by the template questions.
var titleDistractors = []string{"General overview", "Basic introduction", "Advanced concepts"}

// FallbackQuiz deterministically synthesizes a quiz from parsed content.
// It never fails: even fully empty content yields the closing question, so
// the result always has 1-5 entries.
func FallbackQuiz(content *domain.ParsedContent) []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, 0, domain.MaxQuizQuestions)

	if content.Title != "" {
		questions = append(questions, domain.QuizQuestion{
			Question:      "What is the main subject of this material?",
			Options:       append([]string{content.Title}, titleDistractors...),
			CorrectAnswer: 0,
			Explanation:   "The material is titled \"" + content.Title + "\".",
		})
	}

	for i, point := range content.KeyPoints {
		if i == 3 {
			break
		}
		questions = append(questions, domain.QuizQuestion{
			Question: "Which of the following is a key concept from the material?",
			Options: []string{
				point,
				"An unrelated general statement",
				"A detail not covered in the material",
				"An opposing viewpoint not discussed",
			},
			CorrectAnswer: 0,
			Explanation:   "This point appears directly in the study material.",
		})
	}

	if len(content.Headings) > 0 {
		questions = append(questions, domain.QuizQuestion{
			Question: "Which topic does this material cover?",
			Options: []string{
				content.Headings[0],
				"Historical timelines",
				"Financial forecasting",
				"Unrelated trivia",
			},
			CorrectAnswer: 0,
			Explanation:   "\"" + content.Headings[0] + "\" is one of the material's main topics.",
		})
	}

	questions = append(questions, domain.QuizQuestion{
		Question: "What is the primary purpose of this material?",
		Options: []string{
			"To teach the concepts it presents",
			"To entertain the reader",
			"To advertise a product",
			"To collect personal data",
		},
		CorrectAnswer: 0,
		Explanation:   "Study material exists to teach the concepts it presents.",
	})

	if len(questions) > domain.MaxQuizQuestions {
		questions = questions[:domain.MaxQuizQuestions]
	}
	return questions
}

// FallbackRankAssessment is the fixed onboarding question set used when the
// gateway cannot produce one. Exactly 5 questions; the strongest habit is
// always the correct option.
func FallbackRankAssessment() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Question: "How often do you practice a skill you want to master?",
			Options: []string{
				"Every day, even if only briefly",
				"A few times a week",
				"When I feel motivated",
				"Rarely",
			},
			CorrectAnswer: 0,
			Explanation:   "Daily practice, however small, compounds faster than bursts of motivation.",
		},
		{
			Question: "What do you do after failing at something difficult?",
			Options: []string{
				"Review what went wrong and try again",
				"Take a long break before returning",
				"Switch to something easier",
				"Give up on that goal",
			},
			CorrectAnswer: 0,
			Explanation:   "Reflecting on failure turns it into training.",
		},
		{
			Question: "How do you approach material that seems too hard?",
			Options: []string{
				"Break it into smaller pieces and start",
				"Look for a summary instead",
				"Wait until I have more time",
				"Avoid it",
			},
			CorrectAnswer: 0,
			Explanation:   "Decomposing hard problems is how hard problems get solved.",
		},
		{
			Question: "When do you review what you have already learned?",
			Options: []string{
				"On a regular schedule",
				"Right before I need it",
				"Only when I notice I forgot",
				"Never",
			},
			CorrectAnswer: 0,
			Explanation:   "Spaced review keeps knowledge from fading.",
		},
		{
			Question: "What matters most for long-term progress?",
			Options: []string{
				"Consistency over intensity",
				"Natural talent",
				"Studying only when inspired",
				"Competing with others",
			},
			CorrectAnswer: 0,
			Explanation:   "Showing up consistently beats occasional heroic effort.",
		},
	}
}
