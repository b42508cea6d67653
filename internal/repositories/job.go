package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"talentsift/resume-screener/internal/models"
)

// ErrJobNotFound is returned when a job title is absent from the catalog.
var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.JobPosting) error
	FindByTitle(title string) (*models.JobPosting, error)
	ListTitles() ([]string, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.JobPosting) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

// FindByTitle implements JobRepository.
func (r *jobRepository) FindByTitle(title string) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := r.db.Where("title = ?", title).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, title)
		}
		return nil, fmt.Errorf("failed to find job posting: %w", err)
	}
	return &job, nil
}

// ListTitles implements JobRepository.
func (r *jobRepository) ListTitles() ([]string, error) {
	var titles []string
	if err := r.db.Model(&models.JobPosting{}).
		Order("title ASC").
		Pluck("title", &titles).Error; err != nil {
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}
	return titles, nil
}
