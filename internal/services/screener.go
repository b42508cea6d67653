package services

import (
	"fmt"

	"go.uber.org/zap"

	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
)

// ScreenerService answers the query-time question: for this job, which
// candidates should we talk to? It loads an immutable snapshot of the job
// and ready candidates, runs the matching engine, applies the shortlist
// policy and attaches interview proposals to every returned candidate.
type ScreenerService interface {
	ShortlistForJob(jobTitle string, threshold int, boost float64) (*models.ShortlistResponse, error)
}

type screenerService struct {
	jobRepo  repositories.JobRepository
	candRepo repositories.CandidateRepository
	engine   *matching.Engine
	slots    *matching.SlotGenerator
	log      *zap.Logger
}

func NewScreenerService(
	jobRepo repositories.JobRepository,
	candRepo repositories.CandidateRepository,
	engine *matching.Engine,
	slots *matching.SlotGenerator,
	log *zap.Logger,
) ScreenerService {
	return &screenerService{
		jobRepo:  jobRepo,
		candRepo: candRepo,
		engine:   engine,
		slots:    slots,
		log:      log,
	}
}

// ShortlistForJob implements ScreenerService.
func (s *screenerService) ShortlistForJob(jobTitle string, threshold int, boost float64) (*models.ShortlistResponse, error) {
	job, err := s.jobRepo.FindByTitle(jobTitle)
	if err != nil {
		return nil, err
	}

	candidates, err := s.candRepo.ListReady()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	byID := make(map[string]models.Candidate, len(candidates))
	snapshots := make([]matching.CandidateKeywords, 0, len(candidates))
	for _, cand := range candidates {
		id := cand.ID.String()
		byID[id] = cand
		snapshots = append(snapshots, matching.CandidateKeywords{
			ID:       id,
			Keywords: matching.ParseSet(cand.Keywords),
		})
	}

	results, err := s.engine.Match(job.Title, matching.ParseSet(job.Keywords), snapshots, boost)
	if err != nil {
		return nil, err
	}

	shortlist := s.engine.Shortlist(results, threshold)

	s.log.Info("shortlist computed",
		zap.String("job_title", job.Title),
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(results)),
		zap.Int("shortlisted", len(shortlist.Candidates)),
		zap.Int("threshold", threshold))

	response := &models.ShortlistResponse{
		Candidates: make([]models.CandidateMatch, 0, len(shortlist.Candidates)),
		Message:    shortlist.Message,
	}
	for _, result := range shortlist.Candidates {
		cand := byID[result.CandidateID]
		response.Candidates = append(response.Candidates, models.CandidateMatch{
			CVNumber:         cand.CVNumber,
			Name:             cand.Name,
			Email:            cand.Email,
			Phone:            cand.Phone,
			Score:            result.Score,
			MatchedKeywords:  result.MatchedKeywords,
			InterviewOptions: s.slots.Generate(cand.Name, job.Title),
		})
	}

	return response, nil
}
