package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
)

type fakeCandidateRepo struct {
	candidate *models.Candidate
	status    models.IngestStatus
	ingestion *repositories.IngestionUpdateData
	errorMsg  string
}

func (f *fakeCandidateRepo) Create(c *models.Candidate) error { return nil }

func (f *fakeCandidateRepo) FindByID(id uuid.UUID) (*models.Candidate, error) {
	if f.candidate == nil {
		return nil, errors.New("candidate not found")
	}
	return f.candidate, nil
}

func (f *fakeCandidateRepo) ListReady() ([]models.Candidate, error) { return nil, nil }

func (f *fakeCandidateRepo) FindPending(limit int) ([]models.Candidate, error) { return nil, nil }

func (f *fakeCandidateRepo) UpdateStatus(id uuid.UUID, status models.IngestStatus) error {
	f.status = status
	return nil
}

func (f *fakeCandidateRepo) UpdateIngestion(id uuid.UUID, data *repositories.IngestionUpdateData) error {
	f.ingestion = data
	f.status = models.StatusReady
	return nil
}

func (f *fakeCandidateRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	f.errorMsg = errorMsg
	f.status = models.StatusFailed
	return nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(filePath string) (string, error) {
	return f.text, f.err
}

func TestIngestResume_Success(t *testing.T) {
	candidateID := uuid.New()
	repo := &fakeCandidateRepo{
		candidate: &models.Candidate{
			ID:       candidateID,
			CVNumber: "cv_042",
			FilePath: "/uploads/resume.pdf",
			Status:   models.StatusQueued,
		},
	}
	parser := &fakePDFParser{
		text: "Name: Jordan Lee\njordan.lee@example.com\n+1 555 123 4567\nPython and SQL developer with Docker background",
	}

	svc := NewIngestService(repo, parser, zap.NewNop())
	require.NoError(t, svc.IngestResume(context.Background(), candidateID))

	assert.Equal(t, models.StatusReady, repo.status)
	require.NotNil(t, repo.ingestion)
	assert.Equal(t, "Jordan Lee", repo.ingestion.Name)
	assert.Equal(t, "jordan.lee@example.com", repo.ingestion.Email)
	assert.Equal(t, "+1 555 123 4567", repo.ingestion.Phone)
	assert.Contains(t, repo.ingestion.Keywords, "python")
	assert.Contains(t, repo.ingestion.Keywords, "docker")
	assert.NotEmpty(t, repo.ingestion.RawContent)
}

func TestIngestResume_ExtractionFailure(t *testing.T) {
	candidateID := uuid.New()
	repo := &fakeCandidateRepo{
		candidate: &models.Candidate{
			ID:       candidateID,
			CVNumber: "cv_042",
			FilePath: "/uploads/broken.pdf",
			Status:   models.StatusQueued,
		},
	}
	parser := &fakePDFParser{err: ErrNoText}

	svc := NewIngestService(repo, parser, zap.NewNop())
	err := svc.IngestResume(context.Background(), candidateID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)

	// The failure is recorded on the candidate, not embedded as content.
	assert.Equal(t, models.StatusFailed, repo.status)
	assert.Contains(t, repo.errorMsg, "no text content")
	assert.Nil(t, repo.ingestion)
}
