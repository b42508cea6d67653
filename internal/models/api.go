package models

import "talentsift/resume-screener/internal/matching"

type UploadResponse struct {
	ID           string `json:"id"`
	CVNumber     string `json:"cv_number"`
	OriginalName string `json:"original_name"`
	Status       string `json:"status"`
}

type ResumeStatusResponse struct {
	ID           string `json:"id"`
	CVNumber     string `json:"cv_number"`
	Status       string `json:"status"`
	Name         string `json:"name,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type JobDetailResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// CandidateMatch is one ranked shortlist entry: the match result enriched
// with contact details and interview proposals.
type CandidateMatch struct {
	CVNumber         string                    `json:"cv_number"`
	Name             string                    `json:"name"`
	Email            string                    `json:"email"`
	Phone            string                    `json:"phone"`
	Score            int                       `json:"score"`
	MatchedKeywords  []string                  `json:"matched_keywords"`
	InterviewOptions matching.InterviewOptions `json:"interview_options"`
}

type ShortlistResponse struct {
	Candidates []CandidateMatch `json:"candidates"`
	Message    string           `json:"message"`
}

type InterviewEmailRequest struct {
	CandidateName string   `json:"candidate_name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	JobTitle      string   `json:"job_title" validate:"required"`
	Dates         []string `json:"dates" validate:"required,min=1"`
	Times         []string `json:"times" validate:"required,min=1"`
}

type BulkEmailCandidate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type BulkEmailRequest struct {
	JobTitle   string               `json:"job_title" validate:"required"`
	Candidates []BulkEmailCandidate `json:"candidates" validate:"required,min=1,dive"`
}

// BulkEmailResult reports one recipient's outcome. A failed send never
// aborts the rest of the batch.
type BulkEmailResult struct {
	CandidateName string `json:"candidate_name"`
	Email         string `json:"email"`
	Success       bool   `json:"success"`
	Error         string `json:"error,omitempty"`
}

type BulkEmailSummary struct {
	Results     []BulkEmailResult `json:"results"`
	TotalSent   int               `json:"total_sent"`
	TotalFailed int               `json:"total_failed"`
}
