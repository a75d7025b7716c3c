package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"prepvault/resume-analyzer/internal/catalog"
	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
}

func NewInterviewHandler(interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewService: interviewService}
}

// HandleNextQuestion samples one interview question for the requested role.
func (h *InterviewHandler) HandleNextQuestion(c *fiber.Ctx) error {
	role := c.Query("role")
	if role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role is required",
			"roles": catalog.InterviewRoles(),
		})
	}

	question, err := h.interviewService.NextQuestion(role)
	if err != nil {
		if errors.Is(err, services.ErrUnknownInterviewRole) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown interview role",
				"roles": catalog.InterviewRoles(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to pick a question",
		})
	}

	return c.JSON(fiber.Map{
		"role":     role,
		"question": question,
	})
}

func (h *InterviewHandler) HandleSubmitAnswer(c *fiber.Ctx) error {
	var req models.InterviewAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if req.Role == "" || req.Question == "" || req.Response == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "role, question, and response are required",
		})
	}

	result, err := h.interviewService.SubmitAnswer(currentUsername(c), req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownInterviewRole) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown interview role",
				"roles": catalog.InterviewRoles(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record answer",
		})
	}

	return c.JSON(result)
}
