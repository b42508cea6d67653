package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/services"
)

var validate = validator.New()

type InterviewHandler struct {
	mailer *services.InterviewMailer
	slots  *matching.SlotGenerator
}

func NewInterviewHandler(mailer *services.InterviewMailer, slots *matching.SlotGenerator) *InterviewHandler {
	return &InterviewHandler{
		mailer: mailer,
		slots:  slots,
	}
}

// HandleSendInvite sends one interview invitation with caller-provided
// dates and times.
func (h *InterviewHandler) HandleSendInvite(c *fiber.Ctx) error {
	var req models.InterviewEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.mailer.SendInvite(req); err != nil {
		return c.JSON(fiber.Map{"success": false})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleSendBulk generates interview options per candidate and sends the
// whole batch, reporting per-recipient outcomes.
func (h *InterviewHandler) HandleSendBulk(c *fiber.Ctx) error {
	var req models.BulkEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	summary := h.mailer.SendBulk(req.JobTitle, req.Candidates, h.slots)

	return c.JSON(fiber.Map{
		"success":      true,
		"results":      summary.Results,
		"total_sent":   summary.TotalSent,
		"total_failed": summary.TotalFailed,
	})
}
