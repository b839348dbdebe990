package handler

import (
	"github.com/gofiber/fiber/v2"

	"forceskill/internal/domain"
	"forceskill/internal/dto"
	"forceskill/internal/middleware"
	"forceskill/internal/service"
)

type SkillHandler struct {
	skillService service.SkillService
}

func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// CreateSkill starts tracking a new daily habit.
func (h *SkillHandler) CreateSkill(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)

	var req dto.CreateSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.skillService.CreateSkill(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListSkills returns the user's skills with their streak state.
func (h *SkillHandler) ListSkills(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	skills, err := h.skillService.ListSkills(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

// CompleteSkill marks a skill done for the current day.
func (h *SkillHandler) CompleteSkill(c *fiber.Ctx) error {
	userID := middleware.UserIDFromContext(c)
	skillID := c.Params("id")

	resp, err := h.skillService.CompleteToday(c.Context(), userID, skillID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
