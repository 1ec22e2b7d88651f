package services

import "errors"

// Not found errors.
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrJobApplicationNotFound = errors.New("job application not found")
	ErrTagNotFound            = errors.New("tag not found")
	ErrApplicationTagNotFound = errors.New("application tag not found")
	ErrStageNotFound          = errors.New("application stage not found")
)

// Conflict errors.
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrTagAlreadyExists   = errors.New("tag with this name already exists")
	ErrTagAlreadyLinked   = errors.New("tag is already linked to this job application")
	ErrStageAlreadyExists = errors.New("stage of this type already exists for this job application")
)

// Input errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrPasswordRequired   = errors.New("password is required for local users")
	ErrProviderIDRequired = errors.New("provider_id is required for oauth users")
	ErrInvalidProvider    = errors.New("invalid provider")
)
