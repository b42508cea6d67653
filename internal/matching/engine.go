package matching

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrDegenerateJobKeywords is returned when a job's keyword set is empty
// after stopword filtering, which would make the overlap ratio undefined.
var ErrDegenerateJobKeywords = errors.New("job keyword set is empty after filtering")

// CandidateKeywords pairs a candidate identifier with its precomputed
// keyword set. Keyword extraction happens once at ingestion time; matching
// only reads these snapshots.
type CandidateKeywords struct {
	ID       string
	Keywords Set
}

// MatchResult is one candidate's overlap with one job. Derived per request,
// never persisted.
type MatchResult struct {
	CandidateID     string   `json:"candidate_id"`
	JobTitle        string   `json:"job_title"`
	MatchedKeywords []string `json:"matched_keywords"`
	Score           int      `json:"score"`
}

// ShortlistResponse is an ordered result set plus a human-readable summary
// of how it was produced. Candidates are sorted by score descending.
type ShortlistResponse struct {
	Candidates []MatchResult `json:"candidates"`
	Message    string        `json:"message"`
}

// Engine scores candidates against jobs by lexical keyword overlap. It is
// stateless apart from its configuration and safe for concurrent use.
type Engine struct {
	// Stopwords are applied to both job and candidate keyword sets
	// before the overlap is computed.
	Stopwords Set
	// FallbackSize is the number of top candidates returned when nobody
	// clears the shortlist threshold.
	FallbackSize int
}

// NewEngine returns an Engine with the canonical configuration: the
// curated default stopword list and a top-5 fallback.
func NewEngine() *Engine {
	return &Engine{
		Stopwords:    DefaultStopwords,
		FallbackSize: 5,
	}
}

// Match computes one MatchResult per candidate whose filtered keyword set
// overlaps the job's filtered keyword set. Candidates with zero overlap are
// excluded. The score is floor(min(100, overlap/jobKeywords * 100 * boost)).
//
// Results carry no ordering guarantee; ranking belongs to Shortlist.
func (e *Engine) Match(jobTitle string, jobKeywords Set, candidates []CandidateKeywords, boost float64) ([]MatchResult, error) {
	jobFiltered := filterSet(jobKeywords, e.Stopwords)
	if len(jobFiltered) == 0 {
		return nil, fmt.Errorf("job %q: %w", jobTitle, ErrDegenerateJobKeywords)
	}

	var results []MatchResult
	for _, cand := range candidates {
		candFiltered := filterSet(cand.Keywords, e.Stopwords)
		common := jobFiltered.Intersect(candFiltered)
		if len(common) == 0 {
			continue
		}

		ratio := float64(len(common)) / float64(len(jobFiltered))
		score := int(math.Floor(math.Min(100, ratio*100*boost)))

		results = append(results, MatchResult{
			CandidateID:     cand.ID,
			JobTitle:        jobTitle,
			MatchedKeywords: common.Slice(),
			Score:           score,
		})
	}

	return results, nil
}

// Shortlist ranks results by score descending (stable, so ties keep their
// input order) and applies the threshold. When at least one candidate
// passes, the full passing set is returned. Otherwise the top FallbackSize
// candidates are returned so the caller always gets actionable output.
func (e *Engine) Shortlist(results []MatchResult, threshold int) ShortlistResponse {
	sorted := make([]MatchResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	passing := make([]MatchResult, 0, len(sorted))
	for _, r := range sorted {
		if r.Score >= threshold {
			passing = append(passing, r)
		}
	}

	if len(passing) > 0 {
		return ShortlistResponse{
			Candidates: passing,
			Message: fmt.Sprintf("Found %d candidates that meet or exceed the %d%% threshold.",
				len(passing), threshold),
		}
	}

	n := e.FallbackSize
	if n > len(sorted) {
		n = len(sorted)
	}
	return ShortlistResponse{
		Candidates: sorted[:n],
		Message: fmt.Sprintf("No candidates passed the %d%% threshold. Returning the top %d candidates.",
			threshold, n),
	}
}
