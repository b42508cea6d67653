package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
)

type ResumeHandler struct {
	candRepo repositories.CandidateRepository
}

func NewResumeHandler(candRepo repositories.CandidateRepository) *ResumeHandler {
	return &ResumeHandler{candRepo: candRepo}
}

// HandleGetResume reports a candidate's ingestion status, including the
// extraction error when ingestion failed.
func (h *ResumeHandler) HandleGetResume(c *fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	candidate, err := h.candRepo.FindByID(candidateID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Candidate not found",
		})
	}

	response := models.ResumeStatusResponse{
		ID:       candidate.ID.String(),
		CVNumber: candidate.CVNumber,
		Status:   string(candidate.Status),
	}

	if candidate.Status == models.StatusReady {
		response.Name = candidate.Name
	}
	if candidate.Status == models.StatusFailed && candidate.ErrorMessage != "" {
		response.ErrorMessage = candidate.ErrorMessage
	}

	return c.JSON(response)
}
