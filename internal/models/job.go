package models

import "time"

// JobPosting is one opening candidates are screened against. The keyword
// set is computed from the description once at creation time and cached in
// the keywords column; the row is read-only afterwards.
type JobPosting struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	Title       string    `gorm:"type:text;uniqueIndex;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Keywords    string    `gorm:"type:text" json:"-"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
