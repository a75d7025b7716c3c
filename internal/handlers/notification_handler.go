package handlers

import (
	"github.com/gofiber/fiber/v2"

	"prepvault/resume-analyzer/internal/repositories"
)

type NotificationHandler struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// HandleListNotifications returns the caller's nudges, newest first.
func (h *NotificationHandler) HandleListNotifications(c *fiber.Ctx) error {
	username := currentUsername(c)

	notifications, err := h.notificationRepo.FindByUsername(username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load notifications",
		})
	}

	return c.JSON(fiber.Map{
		"username":      username,
		"notifications": notifications,
	})
}
