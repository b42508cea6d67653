package models

import (
	"time"

	"github.com/google/uuid"
)

type IngestStatus string

const (
	StatusQueued     IngestStatus = "queued"
	StatusProcessing IngestStatus = "processing"
	StatusReady      IngestStatus = "ready"
	StatusFailed     IngestStatus = "failed"
)

// Candidate is one ingested resume. Text extraction runs asynchronously:
// the row is created as queued and the ingestion worker fills in content,
// keywords and contact fields. An extraction failure is recorded in
// ErrorMessage with status failed; failed candidates never enter matching,
// so error text cannot leak into a keyword set.
type Candidate struct {
	ID               uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	CVNumber         string       `gorm:"type:text;not null" json:"cv_number"`
	OriginalFileName string       `gorm:"type:text" json:"original_filename"`
	FilePath         string       `gorm:"type:text" json:"-"`
	Name             string       `gorm:"type:text" json:"name"`
	Email            string       `gorm:"type:text" json:"email"`
	Phone            string       `gorm:"type:text" json:"phone"`
	RawContent       string       `gorm:"type:text" json:"-"`
	Keywords         string       `gorm:"type:text" json:"-"`
	Status           IngestStatus `gorm:"not null;default:'queued'" json:"status"`
	ErrorMessage     string       `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time    `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}
