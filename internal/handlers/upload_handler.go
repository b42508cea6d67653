package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
	"talentsift/resume-screener/internal/services"
)

type UploadHandler struct {
	candRepo       repositories.CandidateRepository
	storageService services.StorageService
	worker         services.Worker
	maxFileSize    int64
}

func NewUploadHandler(
	candRepo repositories.CandidateRepository,
	storageService services.StorageService,
	worker services.Worker,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		candRepo:       candRepo,
		storageService: storageService,
		worker:         worker,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload accepts one resume PDF as multipart field "file", stores
// it and queues asynchronous ingestion. The response carries the candidate
// ID for status polling.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided. Upload a resume as multipart field 'file'.",
		})
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF files are allowed",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveResume(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	// The CV number is the source filename without its extension.
	cvNumber := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))

	candidate := models.Candidate{
		ID:               uuid.New(),
		CVNumber:         cvNumber,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.candRepo.Create(&candidate); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save candidate record: %v", err),
		})
	}

	h.worker.EnqueueResume(candidate.ID)

	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		ID:           candidate.ID.String(),
		CVNumber:     candidate.CVNumber,
		OriginalName: candidate.OriginalFileName,
		Status:       string(candidate.Status),
	})
}
