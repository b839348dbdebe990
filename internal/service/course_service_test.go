package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forceskill/internal/config"
	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/extractor"
	"forceskill/internal/logger"
	"forceskill/internal/repository/models"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug"}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	exitVal := m.Run()
	_ = logger.Sync()
	os.Exit(exitVal)
}

func sampleQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Question:      "What is photosynthesis?",
			Options:       []string{"Energy conversion in plants", "Cell division", "Water transport", "Root growth"},
			CorrectAnswer: 0,
			Explanation:   "Photosynthesis converts light into chemical energy.",
		},
		{
			Question:      "Where does photosynthesis occur?",
			Options:       []string{"Mitochondria", "Chloroplasts", "Nucleus", "Ribosomes"},
			CorrectAnswer: 1,
			Explanation:   "Chloroplasts contain the chlorophyll that captures light.",
		},
	}
}

func newCourseServiceForTest(
	courseRepo *MockCourseRepository,
	userRepo *MockUserRepository,
	attemptRepo *MockAttemptRepository,
	ext *MockTextExtractor,
	gen *MockQuizGenerator,
	uploader Uploader,
	c domain.Cache,
) CourseService {
	analyze := func(text string, headings, sections []string) *domain.ParsedContent {
		return &domain.ParsedContent{RawText: text, Title: "Photosynthesis", Headings: headings}
	}
	return NewCourseService(courseRepo, userRepo, attemptRepo, ext, analyze, gen, uploader, c)
}

func TestCreateCourseFromUpload_Pipeline(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	ext := new(MockTextExtractor)
	gen := new(MockQuizGenerator)
	uploader := new(MockUploader)
	c := new(MockCache)

	data := []byte("%PDF-1.4 fake")
	doc := &extractor.Document{
		Text:     "Photosynthesis is the process plants use to convert light.",
		Headings: []string{"Photosynthesis"},
	}
	ext.On("ExtractData", data, extractor.MimePDF).Return(doc, nil)
	c.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	gen.On("GenerateQuiz", mock.Anything, mock.Anything).Return(sampleQuestions())
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, quizCacheTTL).Return(nil)
	uploader.On("Upload", mock.Anything, "user-1", mock.Anything, "bio.pdf", mock.Anything).
		Return("https://cdn.example.com/documents/user-1/c1/bio.pdf", nil)
	courseRepo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo, ext, gen, uploader, c)
	resp, err := svc.CreateCourseFromUpload(context.Background(), "user-1", "bio.pdf", extractor.MimePDF, data)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "Photosynthesis", resp.Title)
	assert.Equal(t, 2, resp.QuestionCount)
	assert.Equal(t, "https://cdn.example.com/documents/user-1/c1/bio.pdf", resp.DocumentURL)

	courseRepo.AssertCalled(t, "CreateWithQuestions", mock.Anything, mock.MatchedBy(func(course *models.Course) bool {
		return course.Title == "Photosynthesis" && course.UserID == "user-1"
	}), mock.MatchedBy(func(questions []models.Question) bool {
		return len(questions) == 2 && questions[0].Position == 0 && questions[1].Position == 1
	}))
	gen.AssertNumberOfCalls(t, "GenerateQuiz", 1)
}

func TestCreateCourseFromUpload_QuizCacheHit(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	ext := new(MockTextExtractor)
	gen := new(MockQuizGenerator)
	c := new(MockCache)

	data := []byte("%PDF-1.4 fake")
	doc := &extractor.Document{Text: "Photosynthesis is the process plants use."}
	ext.On("ExtractData", data, extractor.MimePDF).Return(doc, nil)
	c.On("Get", mock.Anything, mock.Anything).
		Return(`[{"question":"Cached?","options":["Yes","No"],"correct_answer":0,"explanation":"It was cached."}]`, nil)
	courseRepo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo, ext, gen, nil, c)
	resp, err := svc.CreateCourseFromUpload(context.Background(), "user-1", "bio.pdf", extractor.MimePDF, data)

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.QuestionCount)
	gen.AssertNotCalled(t, "GenerateQuiz", mock.Anything, mock.Anything)
}

func TestCreateCourseFromUpload_UploadFailureIsNonFatal(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	ext := new(MockTextExtractor)
	gen := new(MockQuizGenerator)
	uploader := new(MockUploader)
	c := new(MockCache)

	data := []byte("%PDF-1.4 fake")
	doc := &extractor.Document{Text: "Photosynthesis is the process plants use."}
	ext.On("ExtractData", data, extractor.MimePDF).Return(doc, nil)
	c.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	gen.On("GenerateQuiz", mock.Anything, mock.Anything).Return(sampleQuestions())
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", domain.NewInternalError("bucket unavailable", nil))
	courseRepo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo, ext, gen, uploader, c)
	resp, err := svc.CreateCourseFromUpload(context.Background(), "user-1", "bio.pdf", extractor.MimePDF, data)

	assert.NoError(t, err)
	assert.Empty(t, resp.DocumentURL)
}

func TestCreateCourseFromUpload_ExtractionError(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	ext := new(MockTextExtractor)
	gen := new(MockQuizGenerator)

	data := []byte("not a document")
	ext.On("ExtractData", data, "text/plain").Return(nil, domain.NewUnsupportedFormatError("text/plain"))

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo, ext, gen, nil, nil)
	resp, err := svc.CreateCourseFromUpload(context.Background(), "user-1", "notes.txt", "text/plain", data)

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUnsupportedFormat, domainErr.Code)
	courseRepo.AssertNotCalled(t, "CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCourseFromURL_Pipeline(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)
	ext := new(MockTextExtractor)
	gen := new(MockQuizGenerator)
	c := new(MockCache)

	doc := &extractor.Document{
		Text:     "Photosynthesis is the process plants use to convert light.",
		Headings: []string{"Photosynthesis"},
	}
	ext.On("Extract", mock.Anything, "https://docs.example.com/bio.pdf", extractor.MimePDF).Return(doc, nil)
	c.On("Get", mock.Anything, mock.Anything).Return("", domain.ErrCacheMiss)
	gen.On("GenerateQuiz", mock.Anything, mock.Anything).Return(sampleQuestions())
	c.On("Set", mock.Anything, mock.Anything, mock.Anything, quizCacheTTL).Return(nil)
	courseRepo.On("CreateWithQuestions", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo, ext, gen, nil, c)
	resp, err := svc.CreateCourseFromURL(context.Background(), "user-1", &dto.CreateCourseRequest{
		DocumentURL: "https://docs.example.com/bio.pdf",
		MimeType:    extractor.MimePDF,
		Title:       "Plant Biology",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Plant Biology", resp.Title)
	assert.Equal(t, "https://docs.example.com/bio.pdf", resp.DocumentURL)
	assert.Equal(t, 2, resp.QuestionCount)

	courseRepo.AssertCalled(t, "CreateWithQuestions", mock.Anything, mock.MatchedBy(func(course *models.Course) bool {
		return course.Title == "Plant Biology" && course.DocumentURL == "https://docs.example.com/bio.pdf"
	}), mock.Anything)
}

func TestCreateCourseFromURL_RequiresURL(t *testing.T) {
	ext := new(MockTextExtractor)

	svc := newCourseServiceForTest(new(MockCourseRepository), new(MockUserRepository), new(MockAttemptRepository),
		ext, new(MockQuizGenerator), nil, nil)
	resp, err := svc.CreateCourseFromURL(context.Background(), "user-1", &dto.CreateCourseRequest{MimeType: extractor.MimePDF})

	assert.Nil(t, resp)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	ext.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetQuiz_WithholdsAnswers(t *testing.T) {
	courseRepo := new(MockCourseRepository)

	courseRepo.On("GetByID", mock.Anything, "course-1").
		Return(&models.Course{ID: "course-1", Title: "Photosynthesis"}, nil)
	courseRepo.On("GetQuestions", mock.Anything, "course-1").Return([]models.Question{
		{ID: "q1", Question: "What is photosynthesis?", Options: models.StringSlice{"A", "B"}, CorrectAnswer: 1},
	}, nil)

	svc := newCourseServiceForTest(courseRepo, new(MockUserRepository), new(MockAttemptRepository),
		new(MockTextExtractor), new(MockQuizGenerator), nil, nil)
	quiz, err := svc.GetQuiz(context.Background(), "course-1")

	assert.NoError(t, err)
	assert.Len(t, quiz.Questions, 1)
	assert.Equal(t, "What is photosynthesis?", quiz.Questions[0].Question)
	assert.Equal(t, []string{"A", "B"}, quiz.Questions[0].Options)
}

func TestGetQuiz_CourseNotFound(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	courseRepo.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	svc := newCourseServiceForTest(courseRepo, new(MockUserRepository), new(MockAttemptRepository),
		new(MockTextExtractor), new(MockQuizGenerator), nil, nil)
	quiz, err := svc.GetQuiz(context.Background(), "missing")

	assert.Nil(t, quiz)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeCourseNotFound, domainErr.Code)
}

func TestSubmitAttempt_ScoresAndAwardsPoints(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)

	courseRepo.On("GetByID", mock.Anything, "course-1").
		Return(&models.Course{ID: "course-1"}, nil)
	courseRepo.On("GetQuestions", mock.Anything, "course-1").Return([]models.Question{
		{ID: "q1", CorrectAnswer: 0, Explanation: "first"},
		{ID: "q2", CorrectAnswer: 2, Explanation: "second"},
		{ID: "q3", CorrectAnswer: 1, Explanation: "third"},
	}, nil)
	attemptRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("GetByID", mock.Anything, "user-1").
		Return(&models.User{ID: "user-1", Points: 90, Rank: string(domain.RankYoungling)}, nil)
	// 2 correct answers at 10 points each push the user over the Padawan line.
	userRepo.On("UpdatePointsAndRank", mock.Anything, "user-1", 110, string(domain.RankPadawan)).Return(nil)

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo,
		new(MockTextExtractor), new(MockQuizGenerator), nil, nil)
	result, err := svc.SubmitAttempt(context.Background(), "user-1", "course-1", &dto.AttemptRequest{Answers: []int{0, 2, 0}})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 20, result.PointsAwarded)
	assert.True(t, result.Answers[0].Correct)
	assert.True(t, result.Answers[1].Correct)
	assert.False(t, result.Answers[2].Correct)
	assert.Equal(t, 1, result.Answers[2].CorrectAnswer)
	userRepo.AssertExpectations(t)
}

func TestSubmitAttempt_GuestSkipsPoints(t *testing.T) {
	courseRepo := new(MockCourseRepository)
	userRepo := new(MockUserRepository)
	attemptRepo := new(MockAttemptRepository)

	courseRepo.On("GetByID", mock.Anything, "course-1").
		Return(&models.Course{ID: "course-1"}, nil)
	courseRepo.On("GetQuestions", mock.Anything, "course-1").Return([]models.Question{
		{ID: "q1", CorrectAnswer: 0},
	}, nil)
	attemptRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newCourseServiceForTest(courseRepo, userRepo, attemptRepo,
		new(MockTextExtractor), new(MockQuizGenerator), nil, nil)
	result, err := svc.SubmitAttempt(context.Background(), "", "course-1", &dto.AttemptRequest{Answers: []int{0}})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 10, result.PointsAwarded)
	userRepo.AssertNotCalled(t, "UpdatePointsAndRank", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitAttempt_AnswerCountMismatch(t *testing.T) {
	courseRepo := new(MockCourseRepository)

	courseRepo.On("GetByID", mock.Anything, "course-1").
		Return(&models.Course{ID: "course-1"}, nil)
	courseRepo.On("GetQuestions", mock.Anything, "course-1").Return([]models.Question{
		{ID: "q1", CorrectAnswer: 0},
		{ID: "q2", CorrectAnswer: 1},
	}, nil)

	svc := newCourseServiceForTest(courseRepo, new(MockUserRepository), new(MockAttemptRepository),
		new(MockTextExtractor), new(MockQuizGenerator), nil, nil)
	result, err := svc.SubmitAttempt(context.Background(), "user-1", "course-1", &dto.AttemptRequest{Answers: []int{0}})

	assert.Nil(t, result)
	var domainErr *domain.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}
