package services

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
)

// UserService manages user accounts. A non-nil callerID restricts every
// lookup to the caller's own account; other ids behave as missing.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  TagCacheInvalidator
}

// NewUserService creates a new UserService. cache is optional; deleting an
// account drops the cached tag lists that contained its tags.
func NewUserService(reader UserReader, writer UserWriter, cache TagCacheInvalidator) *UserService {
	return &UserService{reader: reader, writer: writer, cache: cache}
}

// Create stores a new account. Local accounts need a password, OAuth
// accounts a provider id.
func (s *UserService) Create(ctx context.Context, email string, username, password *string, provider string, providerID *string) (*models.User, error) {
	if provider == "" {
		provider = models.ProviderLocal
	}

	user := models.User{
		Email:      email,
		Username:   username,
		Provider:   provider,
		ProviderID: providerID,
	}

	switch provider {
	case models.ProviderLocal:
		if password == nil {
			return nil, ErrPasswordRequired
		}
	case models.ProviderGoogle, models.ProviderGitHub:
		if providerID == nil {
			return nil, ErrProviderIDRequired
		}
	default:
		return nil, ErrInvalidProvider
	}

	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}

	created, err := s.writer.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to create user", "email", email, "error", err)
		return nil, err
	}
	return created, nil
}

// Get returns the account with the given id.
func (s *UserService) Get(ctx context.Context, callerID *int64, id int64) (*models.User, error) {
	if !canAccessUser(callerID, id) {
		return nil, ErrUserNotFound
	}

	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// Update changes the given fields of an account. A new password is hashed.
func (s *UserService) Update(ctx context.Context, callerID *int64, id int64, email, username, password *string) (*models.User, error) {
	if email == nil && username == nil && password == nil {
		return nil, ErrNothingToUpdate
	}
	if !canAccessUser(callerID, id) {
		return nil, ErrUserNotFound
	}

	patch := models.UserPatch{Email: email, Username: username}
	if password != nil {
		hash, err := hashPassword(*password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	user, err := s.writer.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}
	return user, nil
}

// Delete removes an account together with everything it owns.
func (s *UserService) Delete(ctx context.Context, callerID *int64, id int64) error {
	if !canAccessUser(callerID, id) {
		return ErrUserNotFound
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	invalidateTags(ctx, s.cache, &id)
	return nil
}

func canAccessUser(callerID *int64, id int64) bool {
	return callerID == nil || *callerID == id
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}
