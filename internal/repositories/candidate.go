package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentsift/resume-screener/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	ListReady() ([]models.Candidate, error)
	FindPending(limit int) ([]models.Candidate, error)
	UpdateStatus(id uuid.UUID, status models.IngestStatus) error
	UpdateIngestion(id uuid.UUID, data *IngestionUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
}

// IngestionUpdateData carries everything the ingestion worker derives from
// a successfully extracted resume.
type IngestionUpdateData struct {
	Name       string
	Email      string
	Phone      string
	RawContent string
	Keywords   string
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate not found")
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// ListReady returns every candidate whose ingestion completed. Queued and
// failed candidates are excluded from matching by construction.
func (r *candidateRepository) ListReady() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.
		Where("status = ?", models.StatusReady).
		Order("created_at ASC").
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) FindPending(limit int) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) UpdateStatus(id uuid.UUID, status models.IngestStatus) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}

func (r *candidateRepository) UpdateIngestion(id uuid.UUID, data *IngestionUpdateData) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      models.StatusReady,
			"name":        data.Name,
			"email":       data.Email,
			"phone":       data.Phone,
			"raw_content": data.RawContent,
			"keywords":    data.Keywords,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ingestion result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}

func (r *candidateRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate not found")
	}
	return nil
}
