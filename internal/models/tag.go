package models

import "time"

// DefaultTagColor is assigned to tags created without an explicit color.
const DefaultTagColor = "bg-blue-100 text-blue-800"

// Tag is a user-defined label with a display color.
// Names are unique per owner; a nil owner is the shared namespace.
type Tag struct {
	ID         int64     `json:"id" db:"id"`
	UserID     *int64    `json:"user_id,omitempty" db:"user_id"`
	Name       string    `json:"name" db:"name"`
	ColorClass string    `json:"color_class" db:"color_class"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// TagPatch renames and/or recolors a tag. Nil fields are left untouched.
type TagPatch struct {
	Name       *string
	ColorClass *string
}

// ApplicationTag is an association row linking a job application to a tag.
type ApplicationTag struct {
	ID               int64     `json:"id" db:"id"`
	JobApplicationID int64     `json:"job_application_id" db:"job_application_id"`
	TagID            int64     `json:"tag_id" db:"tag_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// ApplicationTagDetail is an association row joined with its tag.
type ApplicationTagDetail struct {
	ID               int64  `json:"id" db:"id"`
	JobApplicationID int64  `json:"job_application_id" db:"job_application_id"`
	TagID            int64  `json:"tag_id" db:"tag_id"`
	Name             string `json:"name" db:"name"`
	ColorClass       string `json:"color_class" db:"color_class"`
}
