package models

import "time"

// ApplicationStage is one entry of a job application's pipeline history,
// e.g. "phone screen" or "onsite".
type ApplicationStage struct {
	ID               int64      `json:"id" db:"id"`
	JobApplicationID int64      `json:"job_application_id" db:"job_application_id"`
	StageType        string     `json:"stage_type" db:"stage_type"`
	StageDate        *time.Time `json:"stage_date" db:"stage_date"`
	Notes            *string    `json:"notes" db:"notes"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// ApplicationStageInput carries every writable field of a stage.
type ApplicationStageInput struct {
	JobApplicationID int64
	StageType        string
	StageDate        *time.Time
	Notes            *string
}

// ApplicationStagePatch changes a subset of a stage. Nil fields are left untouched.
type ApplicationStagePatch struct {
	JobApplicationID *int64
	StageType        *string
	StageDate        *time.Time
	Notes            *string
}

// Empty reports whether the patch changes nothing.
func (p ApplicationStagePatch) Empty() bool {
	return p.JobApplicationID == nil && p.StageType == nil && p.StageDate == nil && p.Notes == nil
}
