package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"prepvault/resume-analyzer/internal/logger"
	"prepvault/resume-analyzer/internal/services"
)

type ResumeHandler struct {
	analyzerService services.AnalyzerService
	storageService  services.StorageService
	maxFileSize     int64
}

func NewResumeHandler(
	analyzerService services.AnalyzerService,
	storageService services.StorageService,
	maxFileSize int64,
) *ResumeHandler {
	return &ResumeHandler{
		analyzerService: analyzerService,
		storageService:  storageService,
		maxFileSize:     maxFileSize,
	}
}

// HandleAnalyze accepts a multipart resume upload plus a target role, runs
// the analysis pipeline synchronously, and returns the full evaluation.
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	username := currentUsername(c)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	targetRole := c.FormValue("target_role")
	if targetRole == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "target_role is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	_, filePath, err := h.storageService.SaveFile(file, username)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "only PDF and DOCX resumes are supported",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume: %v", err),
		})
	}

	result, err := h.analyzerService.Analyze(c.Context(), services.AnalyzeInput{
		Username:         username,
		TargetRole:       targetRole,
		FilePath:         filePath,
		OriginalFilename: file.Filename,
	})
	if err != nil {
		return h.mapAnalyzeError(c, err)
	}

	return c.JSON(result)
}

// HandleHistory returns the caller's attempt history in storage order, or by
// score descending when ?sort=score is given.
func (h *ResumeHandler) HandleHistory(c *fiber.Ctx) error {
	username := currentUsername(c)
	sortByScore := c.Query("sort") == "score"

	history, err := h.analyzerService.History(username, sortByScore)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load history",
		})
	}

	return c.JSON(fiber.Map{
		"username": username,
		"attempts": history,
	})
}

func (h *ResumeHandler) mapAnalyzeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown target role",
		})
	case errors.Is(err, services.ErrNoReadableText):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "no readable text found. Try uploading a text-based PDF or an OCR-compatible scan",
		})
	case errors.Is(err, services.ErrEmbeddingFailed):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "could not score the extracted text",
		})
	default:
		logger.Error().Err(err).Msg("analysis failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "analysis failed",
		})
	}
}
