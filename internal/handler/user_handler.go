package handler

import (
	"github.com/gofiber/fiber/v2"

	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/middleware"
	"forceskill/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile returns the authenticated user's profile and rank progress.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	profile, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetAssessment returns the habit questionnaire for initial rank placement.
func (h *UserHandler) GetAssessment(c *fiber.Ctx) error {
	return c.JSON(h.userService.GetAssessment(c.Context()))
}

// SubmitAssessment scores the questionnaire; authenticated users have
// their rank seeded from the result.
func (h *UserHandler) SubmitAssessment(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)

	var submission dto.AssessmentSubmission
	if err := c.BodyParser(&submission); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if len(submission.Answers) == 0 {
		return domain.NewInvalidInputError("answers are required")
	}

	result, err := h.userService.SubmitAssessment(c.Context(), userID, &submission)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
