package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
	"talentsift/resume-screener/internal/services"
)

type JobsHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobsHandler(jobRepo repositories.JobRepository) *JobsHandler {
	return &JobsHandler{jobRepo: jobRepo}
}

func (h *JobsHandler) HandleListJobs(c *fiber.Ctx) error {
	titles, err := h.jobRepo.ListTitles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list jobs",
		})
	}
	return c.JSON(titles)
}

func (h *JobsHandler) HandleGetJob(c *fiber.Ctx) error {
	title, err := url.PathUnescape(c.Params("title"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid job title",
		})
	}

	job, err := h.jobRepo.FindByTitle(title)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load job",
		})
	}

	return c.JSON(models.JobDetailResponse{
		Title:       job.Title,
		Description: job.Description,
		Keywords:    services.RoleSkills(job.Title),
	})
}
