package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"forceskill/internal/cache"
	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/extractor"
	"forceskill/internal/logger"
	"forceskill/internal/repository"
	"forceskill/internal/repository/models"
	"forceskill/internal/util"
)

const quizCacheTTL = 24 * time.Hour

// TextExtractor turns a document into text and structure.
type TextExtractor interface {
	Extract(ctx context.Context, url, mimeType string) (*extractor.Document, error)
	ExtractData(data []byte, mimeType string) (*extractor.Document, error)
}

// QuizGenerator produces quiz questions from analyzed content. It never
// fails; degraded inputs yield fallback questions.
type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, content *domain.ParsedContent) []domain.QuizQuestion
	GenerateRankAssessment(ctx context.Context) []domain.QuizQuestion
}

// Uploader stores a document and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, userID, courseID, filename string, content io.Reader) (string, error)
}

// ContentAnalyzer distills raw text into structured content.
type ContentAnalyzer func(text string, headings, sections []string) *domain.ParsedContent

// CourseService runs the document-to-quiz pipeline and serves quizzes.
type CourseService interface {
	// CreateCourseFromUpload stores the file, extracts and analyzes its
	// text, generates a quiz, and persists the course with its questions.
	CreateCourseFromUpload(ctx context.Context, userID, filename, mimeType string, data []byte) (*dto.CourseResponse, error)
	// CreateCourseFromURL runs the same pipeline against a document that is
	// already hosted somewhere, fetching it instead of storing a copy.
	CreateCourseFromURL(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, userID string) ([]dto.CourseResponse, error)
	GetQuiz(ctx context.Context, courseID string) (*dto.QuizResponse, error)
	SubmitAttempt(ctx context.Context, userID, courseID string, req *dto.AttemptRequest) (*dto.AttemptResult, error)
}

type courseServiceImpl struct {
	courseRepo  repository.CourseRepository
	userRepo    repository.UserRepository
	attemptRepo repository.AttemptRepository
	extractor   TextExtractor
	analyze     ContentAnalyzer
	generator   QuizGenerator
	uploader    Uploader
	cache       domain.Cache
	group       singleflight.Group
}

// NewCourseService wires the pipeline stages into a course service.
func NewCourseService(
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
	ext TextExtractor,
	analyze ContentAnalyzer,
	generator QuizGenerator,
	uploader Uploader,
	c domain.Cache,
) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		extractor:   ext,
		analyze:     analyze,
		generator:   generator,
		uploader:    uploader,
		cache:       c,
	}
}

func (s *courseServiceImpl) CreateCourseFromUpload(ctx context.Context, userID, filename, mimeType string, data []byte) (*dto.CourseResponse, error) {
	doc, err := s.extractor.ExtractData(data, mimeType)
	if err != nil {
		return nil, err
	}

	courseID := util.NewULID()
	documentURL := ""
	if s.uploader != nil {
		documentURL, err = s.uploader.Upload(ctx, userID, courseID, filename, bytes.NewReader(data))
		if err != nil {
			// Extraction already succeeded; keep the course without a
			// stored copy rather than failing the whole pipeline.
			logger.Get().Warn("Document upload failed", zap.String("courseID", courseID), zap.Error(err))
			documentURL = ""
		}
	}

	return s.assembleCourse(ctx, userID, courseID, "", documentURL, mimeType, doc)
}

func (s *courseServiceImpl) CreateCourseFromURL(ctx context.Context, userID string, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if req.DocumentURL == "" {
		return nil, domain.NewInvalidInputError("document_url is required")
	}

	doc, err := s.extractor.Extract(ctx, req.DocumentURL, req.MimeType)
	if err != nil {
		return nil, err
	}

	return s.assembleCourse(ctx, userID, util.NewULID(), req.Title, req.DocumentURL, req.MimeType, doc)
}

// assembleCourse runs the shared tail of both creation paths: it analyzes
// the extracted document, generates the quiz, and persists the course.
func (s *courseServiceImpl) assembleCourse(ctx context.Context, userID, courseID, titleOverride, documentURL, mimeType string, doc *extractor.Document) (*dto.CourseResponse, error) {
	content := s.analyze(doc.Text, doc.Headings, doc.Sections)
	if content.IsEmpty() {
		return nil, domain.NewEmptyContentError()
	}
	title := content.Title
	if titleOverride != "" {
		title = titleOverride
	}

	questions := s.generateQuizCached(ctx, content)

	domainCourse := &domain.Course{ID: courseID, UserID: userID, Title: title, MimeType: mimeType}
	if err := domainCourse.Validate(); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:          courseID,
		UserID:      userID,
		Title:       title,
		DocumentURL: documentURL,
		MimeType:    mimeType,
	}
	questionModels := make([]models.Question, len(questions))
	for i, q := range questions {
		questionModels[i] = models.Question{
			ID:            util.NewULID(),
			CourseID:      courseID,
			Question:      q.Question,
			Options:       models.StringSlice(q.Options),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Position:      i,
		}
	}
	if err := s.courseRepo.CreateWithQuestions(ctx, course, questionModels); err != nil {
		return nil, err
	}

	logger.Get().Info("Course created from document",
		zap.String("courseID", courseID),
		zap.String("userID", userID),
		zap.String("title", title),
		zap.Int("questions", len(questionModels)))

	return &dto.CourseResponse{
		ID:            course.ID,
		Title:         course.Title,
		DocumentURL:   course.DocumentURL,
		MimeType:      course.MimeType,
		QuestionCount: len(questionModels),
		CreatedAt:     course.CreatedAt,
	}, nil
}

// generateQuizCached generates a quiz for the content, reusing a cached
// quiz for identical text and collapsing concurrent identical requests.
func (s *courseServiceImpl) generateQuizCached(ctx context.Context, content *domain.ParsedContent) []domain.QuizQuestion {
	appLogger := logger.Get()
	contentHash := util.HashString(content.RawText)
	key := cache.GenerateCacheKey("course", "quiz", contentHash)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			var questions []domain.QuizQuestion
			if err := json.Unmarshal([]byte(cached), &questions); err == nil && len(questions) > 0 {
				appLogger.Debug("Quiz cache hit", zap.String("key", key))
				return questions
			}
		}
	}

	result, _, _ := s.group.Do(key, func() (interface{}, error) {
		questions := s.generator.GenerateQuiz(ctx, content)
		if s.cache != nil {
			if payload, err := json.Marshal(questions); err == nil {
				if err := s.cache.Set(ctx, key, string(payload), quizCacheTTL); err != nil {
					appLogger.Warn("Failed to cache quiz", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return questions, nil
	})
	return result.([]domain.QuizQuestion)
}

func (s *courseServiceImpl) ListCourses(ctx context.Context, userID string) ([]dto.CourseResponse, error) {
	courses, err := s.courseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		questions, err := s.courseRepo.GetQuestions(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.CourseResponse{
			ID:            c.ID,
			Title:         c.Title,
			DocumentURL:   c.DocumentURL,
			MimeType:      c.MimeType,
			QuestionCount: len(questions),
			CreatedAt:     c.CreatedAt,
		})
	}
	return responses, nil
}

func (s *courseServiceImpl) GetQuiz(ctx context.Context, courseID string) (*dto.QuizResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}

	questions, err := s.courseRepo.GetQuestions(ctx, courseID)
	if err != nil {
		return nil, err
	}

	resp := &dto.QuizResponse{
		CourseID:  course.ID,
		Title:     course.Title,
		Questions: make([]dto.QuizQuestionResponse, len(questions)),
	}
	for i, q := range questions {
		resp.Questions[i] = dto.QuizQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		}
	}
	return resp, nil
}

func (s *courseServiceImpl) SubmitAttempt(ctx context.Context, userID, courseID string, req *dto.AttemptRequest) (*dto.AttemptResult, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(courseID)
	}

	questions, err := s.courseRepo.GetQuestions(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(req.Answers) != len(questions) {
		return nil, domain.NewInvalidInputError("answer count does not match question count")
	}

	result := &dto.AttemptResult{
		CourseID: courseID,
		Total:    len(questions),
		Answers:  make([]dto.AnswerResult, len(questions)),
	}
	for i, q := range questions {
		selected := req.Answers[i]
		correct := selected == q.CorrectAnswer
		if correct {
			result.Score++
		}
		result.Answers[i] = dto.AnswerResult{
			QuestionID:    q.ID,
			Selected:      selected,
			CorrectAnswer: q.CorrectAnswer,
			Correct:       correct,
			Explanation:   q.Explanation,
		}
	}
	result.PointsAwarded = result.Score * domain.PointsPerCorrectAnswer

	attempt := &models.Attempt{
		ID:            util.NewULID(),
		UserID:        util.StringToNullString(userID),
		CourseID:      courseID,
		Score:         result.Score,
		Total:         result.Total,
		PointsAwarded: result.PointsAwarded,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, err
	}
	result.AttemptID = attempt.ID

	// Guests get their score but no persistent progression.
	if userID != "" && result.PointsAwarded > 0 {
		if err := s.awardPoints(ctx, userID, result.PointsAwarded); err != nil {
			logger.Get().Error("Failed to award attempt points",
				zap.String("userID", userID), zap.Error(err))
		}
	}

	return result, nil
}

func (s *courseServiceImpl) awardPoints(ctx context.Context, userID string, points int) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.NewNotFoundError("user")
	}
	newPoints := user.Points + points
	newRank := string(domain.RankForPoints(newPoints))
	return s.userRepo.UpdatePointsAndRank(ctx, userID, newPoints, newRank)
}
