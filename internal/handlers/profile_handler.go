package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/repositories"
	"prepvault/resume-analyzer/internal/services"
)

type ProfileHandler struct {
	profileRepo      repositories.ProfileRepository
	studyPlanService services.StudyPlanService
	dashboardService services.DashboardService
}

func NewProfileHandler(
	profileRepo repositories.ProfileRepository,
	studyPlanService services.StudyPlanService,
	dashboardService services.DashboardService,
) *ProfileHandler {
	return &ProfileHandler{
		profileRepo:      profileRepo,
		studyPlanService: studyPlanService,
		dashboardService: dashboardService,
	}
}

// HandleGetProfile returns the saved profile, or an empty one if the user has
// never filled it in.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	username := currentUsername(c)

	profile, err := h.profileRepo.FindByUsername(username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load profile",
		})
	}
	if profile == nil {
		profile = &models.UserProfile{Username: username}
	}

	return c.JSON(profile)
}

func (h *ProfileHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req models.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	profile := &models.UserProfile{
		Username: currentUsername(c),
		Email:    req.Email,
		Location: req.Location,
		Bio:      req.Bio,
	}
	if err := h.profileRepo.Upsert(profile); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to save profile",
		})
	}

	return c.JSON(fiber.Map{
		"message": "profile updated",
		"profile": profile,
	})
}

// HandleStudyPlan derives study suggestions from the most recent analysis.
func (h *ProfileHandler) HandleStudyPlan(c *fiber.Ctx) error {
	plan, err := h.studyPlanService.BuildPlan(currentUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to build study plan",
		})
	}
	return c.JSON(plan)
}

func (h *ProfileHandler) HandleDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboardService.Summary(currentUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load dashboard",
		})
	}
	return c.JSON(summary)
}
