package models

import (
	"strconv"
	"time"
)

// Application statuses. Any transition between them is allowed.
const (
	StatusWishlist     = "wishlist"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffer        = "offer"
	StatusRejected     = "rejected"
)

// ApplicationStatuses lists every valid application status.
var ApplicationStatuses = []string{
	StatusWishlist,
	StatusApplied,
	StatusInterviewing,
	StatusOffer,
	StatusRejected,
}

// JobApplication represents a job application row with its joined tags.
type JobApplication struct {
	ID                int64               `json:"id" db:"id"`
	UserID            *int64              `json:"user_id,omitempty" db:"user_id"`
	JobTitle          string              `json:"job_title" db:"job_title"`
	CompanyName       string              `json:"company_name" db:"company_name"`
	Location          *string             `json:"location" db:"location"`
	ApplicationStatus string              `json:"application_status" db:"application_status"`
	JobPostingURL     *string             `json:"job_posting_url" db:"job_posting_url"`
	AppliedDate       *time.Time          `json:"applied_date" db:"applied_date"`
	Notes             *string             `json:"notes" db:"notes"`
	IsDemo            bool                `json:"is_demo" db:"is_demo"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         *time.Time          `json:"updated_at" db:"updated_at"`
	Tags              []JobApplicationTag `json:"tags" db:"-"`
}

// JobApplicationTag is a tag as embedded into a job application.
type JobApplicationTag struct {
	JobApplicationID int64  `json:"-" db:"job_application_id"`
	ID               int64  `json:"id" db:"id"`
	Name             string `json:"name" db:"name"`
	ColorClass       string `json:"color_class" db:"color_class"`
}

// JobApplicationInput carries every writable field of a job application.
// Create and update both replace all of them, tags included.
type JobApplicationInput struct {
	UserID            *int64
	JobTitle          string
	CompanyName       string
	Location          *string
	ApplicationStatus string
	JobPostingURL     *string
	AppliedDate       *time.Time
	Notes             *string
	IsDemo            bool
	Tags              []string
}

// JobApplicationFilter narrows the job application list.
type JobApplicationFilter struct {
	UserID      *int64 // owner scope, nil means unscoped
	Query       string // case-insensitive match on title, company, location and notes
	Status      string
	Tag         string
	IncludeDemo bool
}

// TagNames returns the names of the embedded tags.
func (a *JobApplication) TagNames() []string {
	names := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		names = append(names, t.Name)
	}
	return names
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
