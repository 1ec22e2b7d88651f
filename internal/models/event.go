package models

// Job application event operations.
const (
	OperationCreated = "created"
	OperationUpdated = "updated"
	OperationDeleted = "deleted"
)

// JobApplicationEvent describes a committed change of a job application.
type JobApplicationEvent struct {
	EventID           string   `json:"event_id"`           // EventID is a unique identifier of the event.
	Timestamp         int64    `json:"timestamp"`          // Timestamp is the Unix time (seconds) of the change.
	Operation         string   `json:"operation"`          // Operation is created, updated or deleted.
	JobApplicationID  int64    `json:"job_application_id"` // JobApplicationID identifies the changed application.
	UserID            *int64   `json:"user_id,omitempty"`  // UserID is the owner, if any.
	ApplicationStatus string   `json:"application_status"` // ApplicationStatus after the change.
	Tags              []string `json:"tags"`               // Tags after the change.
}
