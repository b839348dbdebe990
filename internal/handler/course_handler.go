package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/logger"
	"forceskill/internal/middleware"
	"forceskill/internal/service"
)

// maxUploadSize bounds course document uploads.
const maxUploadSize = 50 << 20

type CourseHandler struct {
	courseService service.CourseService
}

func NewCourseHandler(courseService service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// CreateCourse runs the document-to-quiz pipeline for either a multipart
// file upload or a JSON body pointing at an already hosted document.
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return h.createCourseFromURL(c, userID)
	}
	if fileHeader.Size > maxUploadSize {
		return domain.NewInvalidInputError("document exceeds the maximum upload size")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("failed to open uploaded file", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		return domain.NewInternalError("failed to read uploaded file", err)
	}

	logger.Get().Info("Course upload received",
		zap.String("userID", userID),
		zap.String("filename", fileHeader.Filename),
		zap.String("mime_type", mimeType),
		zap.Int("size", len(data)))

	resp, err := h.courseService.CreateCourseFromUpload(c.Context(), userID, fileHeader.Filename, mimeType, data)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *CourseHandler) createCourseFromURL(c *fiber.Ctx, userID string) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("document file or document_url is required")
	}
	if req.DocumentURL == "" {
		return domain.NewInvalidInputError("document file or document_url is required")
	}

	logger.Get().Info("Course import requested",
		zap.String("userID", userID),
		zap.String("document_url", req.DocumentURL),
		zap.String("mime_type", req.MimeType))

	resp, err := h.courseService.CreateCourseFromURL(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCourses returns the authenticated user's courses.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	courses, err := h.courseService.ListCourses(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// GetQuiz returns a course's quiz with the correct answers withheld.
func (h *CourseHandler) GetQuiz(c *fiber.Ctx) error {
	courseID := c.Params("id")
	quiz, err := h.courseService.GetQuiz(c.Context(), courseID)
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// SubmitAttempt scores a submitted answer sheet. Guests get a score;
// authenticated users also earn points.
func (h *CourseHandler) SubmitAttempt(c *fiber.Ctx) error {
	courseID := c.Params("id")
	userID := middleware.UserIDFromContext(c)

	var req dto.AttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if len(req.Answers) == 0 {
		return domain.NewInvalidInputError("answers are required")
	}

	result, err := h.courseService.SubmitAttempt(c.Context(), userID, courseID, &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
