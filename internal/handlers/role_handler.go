package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"prepvault/resume-analyzer/internal/catalog"
	"prepvault/resume-analyzer/internal/models"
	"prepvault/resume-analyzer/internal/services"
)

// roleMatchLimit caps how many catalogue roles a description match returns.
const roleMatchLimit = 3

type RoleHandler struct {
	roleIndex services.RoleIndexService
	embedder  services.Embedder
}

func NewRoleHandler(roleIndex services.RoleIndexService, embedder services.Embedder) *RoleHandler {
	return &RoleHandler{
		roleIndex: roleIndex,
		embedder:  embedder,
	}
}

// HandleListRoles returns the role catalogue.
func (h *RoleHandler) HandleListRoles(c *fiber.Ctx) error {
	type roleEntry struct {
		Name             string   `json:"name"`
		Description      string   `json:"description"`
		RequiredKeywords []string `json:"required_keywords"`
	}

	roles := make([]roleEntry, 0, len(catalog.Roles()))
	for _, profile := range catalog.Roles() {
		roles = append(roles, roleEntry{
			Name:             profile.Name,
			Description:      profile.Description,
			RequiredKeywords: profile.RequiredKeywords,
		})
	}

	return c.JSON(fiber.Map{"roles": roles})
}

// HandleMatchRole matches a pasted free-text job description to the closest
// catalogue roles via the vector index.
func (h *RoleHandler) HandleMatchRole(c *fiber.Ctx) error {
	var req models.RoleMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request payload",
		})
	}

	if strings.TrimSpace(req.Description) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description is required",
		})
	}

	matches, err := h.roleIndex.MatchDescription(c.Context(), h.embedder, req.Description, roleMatchLimit)
	if err != nil {
		if errors.Is(err, services.ErrEmbeddingFailed) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "could not score the description",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "role matching failed",
		})
	}

	// The index is asked for at most roleMatchLimit hits; the slice here
	// keeps the response bound independent of index behavior.
	return c.JSON(fiber.Map{"matches": services.TopN(matches, roleMatchLimit)})
}
