package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/config"
	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/repositories"
	"talentsift/resume-screener/internal/services"
)

type CandidatesHandler struct {
	screener services.ScreenerService
	defaults config.MatchingConfig
}

func NewCandidatesHandler(screener services.ScreenerService, defaults config.MatchingConfig) *CandidatesHandler {
	return &CandidatesHandler{
		screener: screener,
		defaults: defaults,
	}
}

// HandleShortlist returns the ranked shortlist for one job. Threshold and
// boost default from configuration and can be overridden per request.
func (h *CandidatesHandler) HandleShortlist(c *fiber.Ctx) error {
	title, err := url.PathUnescape(c.Params("title"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job title",
		})
	}

	threshold := c.QueryInt("threshold", h.defaults.Threshold)
	boost := c.QueryFloat("boost", h.defaults.BoostFactor)
	if threshold < 0 || threshold > 100 || boost < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "threshold must be in [0,100] and boost must be non-negative",
		})
	}

	response, err := h.screener.ShortlistForJob(title, threshold, boost)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrJobNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		case errors.Is(err, matching.ErrDegenerateJobKeywords):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "job description yields no usable keywords",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to compute shortlist",
			})
		}
	}

	return c.JSON(response)
}
