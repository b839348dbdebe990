// Package quizgen turns analyzed document content into validated
// multiple-choice quizzes via an OpenAI-compatible chat-completion gateway,
// with a deterministic fallback when the gateway misbehaves.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"forceskill/internal/config"
	"forceskill/internal/domain"
	"forceskill/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const quizSystemPrompt = `You are a quiz master for a learning application.
Create exactly 5 multiple-choice questions from the provided study material.

Respond with ONLY a JSON array of 5 objects, no markdown, no prose:
[
  {
    "question": "the question text",
    "options": ["option A", "option B", "option C", "option D"],
    "correct_answer": 0,
    "explanation": "why this answer is correct"
  }
]

Rules:
1. Exactly 5 questions, each with exactly 4 options
2. correct_answer is the zero-based index of the right option
3. Questions must be answerable from the material alone
4. Explanations must be one or two sentences`

const assessmentSystemPrompt = `You are a wise mentor welcoming a new learner.
Create exactly 5 multiple-choice questions about study habits, discipline,
patience, and dealing with setbacks. The answers reveal how experienced a
learner is; there are no wrong lifestyles, but each question has one option
reflecting the strongest habit, which is the correct answer.

Respond with ONLY a JSON array of 5 objects, no markdown, no prose:
[
  {
    "question": "the question text",
    "options": ["option A", "option B", "option C", "option D"],
    "correct_answer": 0,
    "explanation": "what this habit says about the learner"
  }
]`

// Generator produces quizzes through an injected llms.Model so tests can
// substitute a double for the gateway client.
type Generator struct {
	model       llms.Model
	temperature float64
	maxTokens   int
}

// NewGenerator creates a quiz Generator around a chat-completion model.
func NewGenerator(model llms.Model, cfg config.LLMConfig) *Generator {
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}
	return &Generator{model: model, temperature: temperature, maxTokens: maxTokens}
}

// NewOpenRouterModel builds a langchaingo OpenAI client against the
// configured OpenAI-compatible base URL.
func NewOpenRouterModel(cfg config.LLMConfig) (llms.Model, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm API key cannot be empty")
	}
	httpClient := &http.Client{Timeout: 60 * time.Second}
	return openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithHTTPClient(httpClient),
	)
}

// GenerateQuiz asks the model for a quiz over the parsed content. It never
// returns an error: any transport failure, malformed reply, or empty result
// falls back to the deterministic generator, so callers always receive 1-5
// valid questions.
func (g *Generator) GenerateQuiz(ctx context.Context, content *domain.ParsedContent) []domain.QuizQuestion {
	l := logger.Get()

	questions, err := g.request(ctx, quizSystemPrompt, BuildQuizPrompt(content))
	if err != nil {
		l.Warn("Quiz generation fell back to template questions",
			zap.Error(domain.NewLLMServiceError(err)),
			zap.String("title", content.Title))
		return FallbackQuiz(content)
	}
	if len(questions) == 0 {
		l.Warn("LLM returned no valid questions, using fallback",
			zap.String("title", content.Title))
		return FallbackQuiz(content)
	}

	l.Info("Generated quiz from LLM",
		zap.Int("questions", len(questions)),
		zap.String("title", content.Title))
	return questions
}

// GenerateRankAssessment produces the onboarding rank-assessment quiz under
// the same always-succeed contract, with its own fixed fallback set.
func (g *Generator) GenerateRankAssessment(ctx context.Context) []domain.QuizQuestion {
	l := logger.Get()

	questions, err := g.request(ctx, assessmentSystemPrompt,
		"Generate the rank assessment questions now.")
	if err != nil {
		l.Warn("Rank assessment fell back to fixed questions",
			zap.Error(domain.NewLLMServiceError(err)))
		return FallbackRankAssessment()
	}
	if len(questions) == 0 {
		l.Warn("LLM returned no valid assessment questions, using fallback")
		return FallbackRankAssessment()
	}
	return questions
}

// request performs one chat completion and converts the reply into
// validated questions. No retry: a single attempt, then the caller falls
// back.
func (g *Generator) request(ctx context.Context, systemPrompt, userPrompt string) ([]domain.QuizQuestion, error) {
	resp, err := g.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
		},
		llms.WithTemperature(g.temperature),
		llms.WithMaxTokens(g.maxTokens),
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}
	return parseQuestions(resp.Choices[0].Content)
}

// parseQuestions cleans the raw reply, parses it as a JSON array, and keeps
// only elements that satisfy the QuizQuestion contract, capped at 5.
func parseQuestions(raw string) ([]domain.QuizQuestion, error) {
	cleaned := cleanResponse(raw)

	var candidates []*domain.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response as question array: %w", err)
	}

	l := logger.Get()
	questions := make([]domain.QuizQuestion, 0, domain.MaxQuizQuestions)
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if err := c.Validate(); err != nil {
			l.Debug("Dropping invalid LLM question", zap.Error(err), zap.String("question", c.Question))
			continue
		}
		questions = append(questions, *c)
		if len(questions) == domain.MaxQuizQuestions {
			break
		}
	}
	return questions, nil
}

// cleanResponse strips markdown code fencing and any prose around the JSON
// array, keeping the substring between the first '[' and the last ']'.
func cleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start != -1 && end != -1 && end > start {
		s = s[start : end+1]
	}
	return s
}
