package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
)

// IngestService turns an uploaded resume into a matchable candidate:
// extract the PDF text, derive the keyword set and contact info, and
// persist everything. A failed extraction marks the candidate failed with
// the reason in its own column — the error never becomes resume content.
type IngestService interface {
	IngestResume(ctx context.Context, candidateID uuid.UUID) error
}

type ingestService struct {
	candRepo  repositories.CandidateRepository
	pdfParser PDFParserService
	log       *zap.Logger
}

func NewIngestService(
	candRepo repositories.CandidateRepository,
	pdfParser PDFParserService,
	log *zap.Logger,
) IngestService {
	return &ingestService{
		candRepo:  candRepo,
		pdfParser: pdfParser,
		log:       log,
	}
}

// IngestResume implements IngestService.
func (s *ingestService) IngestResume(ctx context.Context, candidateID uuid.UUID) error {
	if err := s.candRepo.UpdateStatus(candidateID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	candidate, err := s.candRepo.FindByID(candidateID)
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	s.log.Info("ingesting resume",
		zap.String("candidate_id", candidateID.String()),
		zap.String("cv_number", candidate.CVNumber))

	text, err := s.pdfParser.ExtractText(candidate.FilePath)
	if err != nil {
		s.log.Warn("text extraction failed",
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err))
		if updateErr := s.candRepo.UpdateError(candidateID, err.Error()); updateErr != nil {
			return fmt.Errorf("failed to record extraction error: %w", updateErr)
		}
		return fmt.Errorf("failed to extract text: %w", err)
	}

	text = CleanText(text)
	keywords := matching.ExtractKeywords(text)
	contact := matching.ExtractContactInfo(text)

	update := &repositories.IngestionUpdateData{
		Name:       contact.Name,
		Email:      contact.Email,
		Phone:      contact.Phone,
		RawContent: text,
		Keywords:   keywords.Join(),
	}
	if err := s.candRepo.UpdateIngestion(candidateID, update); err != nil {
		return fmt.Errorf("failed to save ingestion result: %w", err)
	}

	s.log.Info("resume ingested",
		zap.String("candidate_id", candidateID.String()),
		zap.String("name", contact.Name),
		zap.Int("keywords", len(keywords)))
	return nil
}
