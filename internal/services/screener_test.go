package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
)

type fakeJobRepo struct {
	jobs map[string]*models.JobPosting
}

func (f *fakeJobRepo) Create(job *models.JobPosting) error { return nil }

func (f *fakeJobRepo) FindByTitle(title string) (*models.JobPosting, error) {
	if job, ok := f.jobs[title]; ok {
		return job, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (f *fakeJobRepo) ListTitles() ([]string, error) {
	var titles []string
	for title := range f.jobs {
		titles = append(titles, title)
	}
	return titles, nil
}

type listingCandidateRepo struct {
	fakeCandidateRepo
	ready []models.Candidate
}

func (f *listingCandidateRepo) ListReady() ([]models.Candidate, error) {
	return f.ready, nil
}

func newTestScreener(jobs map[string]*models.JobPosting, ready []models.Candidate) ScreenerService {
	engine := matching.NewEngine()
	return NewScreenerService(
		&fakeJobRepo{jobs: jobs},
		&listingCandidateRepo{ready: ready},
		engine,
		testSlotGenerator(),
		zap.NewNop(),
	)
}

func TestShortlistForJob(t *testing.T) {
	jobs := map[string]*models.JobPosting{
		"Software Engineer": {
			Title:    "Software Engineer",
			Keywords: matching.NewSet("python", "sql", "testing").Join(),
		},
	}
	ready := []models.Candidate{
		{
			ID:       uuid.New(),
			CVNumber: "cv_001",
			Name:     "Jordan Lee",
			Email:    "jordan.lee@example.com",
			Phone:    "+1 555 123 4567",
			Keywords: matching.NewSet("python", "sql", "docker").Join(),
			Status:   models.StatusReady,
		},
		{
			ID:       uuid.New(),
			CVNumber: "cv_002",
			Name:     "Sam Roe",
			Email:    "sam.roe@example.com",
			Phone:    matching.NotFound,
			Keywords: matching.NewSet("haskell", "prolog").Join(),
			Status:   models.StatusReady,
		},
	}

	response, err := newTestScreener(jobs, ready).ShortlistForJob("Software Engineer", 70, 2.5)
	require.NoError(t, err)

	// Only the overlapping candidate survives; boosted score clamps to 100.
	require.Len(t, response.Candidates, 1)
	top := response.Candidates[0]
	assert.Equal(t, "cv_001", top.CVNumber)
	assert.Equal(t, "Jordan Lee", top.Name)
	assert.Equal(t, 100, top.Score)
	assert.Equal(t, []string{"python", "sql"}, top.MatchedKeywords)
	assert.Contains(t, response.Message, "meet or exceed the 70%")

	// Interview options ride along with every shortlisted candidate.
	assert.Len(t, top.InterviewOptions.Dates, 2)
	assert.Len(t, top.InterviewOptions.Times, 2)
	assert.Equal(t, "Jordan Lee", top.InterviewOptions.CandidateName)
	assert.Equal(t, "Software Engineer", top.InterviewOptions.JobTitle)
}

func TestShortlistForJob_FallbackMessage(t *testing.T) {
	jobs := map[string]*models.JobPosting{
		"Software Engineer": {
			Title:    "Software Engineer",
			Keywords: matching.NewSet("python", "sql", "testing", "docker", "linux").Join(),
		},
	}
	ready := []models.Candidate{
		{
			ID:       uuid.New(),
			CVNumber: "cv_001",
			Name:     "Jordan Lee",
			Keywords: matching.NewSet("python").Join(),
			Status:   models.StatusReady,
		},
	}

	response, err := newTestScreener(jobs, ready).ShortlistForJob("Software Engineer", 70, 1.0)
	require.NoError(t, err)

	// 1/5 * 100 = 20, below threshold: top-N fallback kicks in.
	require.Len(t, response.Candidates, 1)
	assert.Equal(t, 20, response.Candidates[0].Score)
	assert.Contains(t, response.Message, "No candidates passed the 70% threshold")
}

func TestShortlistForJob_JobNotFound(t *testing.T) {
	_, err := newTestScreener(map[string]*models.JobPosting{}, nil).
		ShortlistForJob("Unknown Role", 70, 1.0)
	assert.ErrorIs(t, err, repositories.ErrJobNotFound)
}

func TestShortlistForJob_DegenerateJobKeywords(t *testing.T) {
	jobs := map[string]*models.JobPosting{
		"Vague Role": {
			Title:    "Vague Role",
			Keywords: matching.NewSet("the", "and", "we").Join(),
		},
	}

	_, err := newTestScreener(jobs, nil).ShortlistForJob("Vague Role", 70, 1.0)
	assert.ErrorIs(t, err, matching.ErrDegenerateJobKeywords)
}
