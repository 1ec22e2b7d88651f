package services_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-job-tracker/internal/models"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name      string
		email     string
		writerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful registration",
			email:     "alice@example.com",
			wantToken: "token123",
		},
		{
			name:      "email already registered",
			email:     "bob@example.com",
			writerErr: repositories.ErrDuplicate,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "writer error",
			email:     "carol@example.com",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
		{
			name:    "jwt error",
			email:   "dave@example.com",
			jwtErr:  errors.New("sign error"),
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := mockWriter.EXPECT().
				Create(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, user models.User) (*models.User, error) {
					assert.Equal(t, tt.email, user.Email)
					assert.Equal(t, models.ProviderLocal, user.Provider)
					require.NotNil(t, user.PasswordHash)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("pass123")))
					if tt.writerErr != nil {
						return nil, tt.writerErr
					}
					user.ID = 1
					return &user, nil
				})

			if tt.writerErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), models.UserPayload{ID: "1", Email: tt.email, Provider: models.ProviderLocal}).
					Return(tt.wantToken, tt.jwtErr).
					After(call)
			}

			token, err := svc.Register(context.Background(), tt.email, nil, "pass123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	localUser := &models.User{ID: 7, Email: "alice@example.com", PasswordHash: strPtr(string(hashed)), Provider: models.ProviderLocal}
	oauthUser := &models.User{ID: 8, Email: "gh@example.com", Provider: models.ProviderGitHub, ProviderID: strPtr("gh-1")}

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.User
		readerErr error
		expectJWT bool
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      localUser,
			expectJWT: true,
			wantToken: "token123",
		},
		{
			name:      "unknown email",
			email:     "nobody@example.com",
			loginPass: password,
			readerErr: sql.ErrNoRows,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "alice@example.com",
			loginPass: "wrong",
			user:      localUser,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "oauth account",
			email:     "gh@example.com",
			loginPass: password,
			user:      oauthUser,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "jwt error",
			email:     "alice@example.com",
			loginPass: password,
			user:      localUser,
			expectJWT: true,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.expectJWT {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.Payload()).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, sql.ErrNoRows)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "alice@example.com").
		Return(&models.User{ID: 1, Email: "alice@example.com", PasswordHash: strPtr(string(hashed)), Provider: models.ProviderLocal}, nil)

	_, unknownErr := svc.Login(context.Background(), "missing@example.com", "secret")
	_, wrongErr := svc.Login(context.Background(), "alice@example.com", "nope")

	assert.Equal(t, unknownErr, wrongErr)
	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
}

func TestAuthService_LoginFailuresCostOneBcryptComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl))

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	start := time.Now()
	_ = bcrypt.CompareHashAndPassword(hashed, []byte("nope"))
	compareCost := time.Since(start)

	mockReader.EXPECT().GetByEmail(gomock.Any(), "missing@example.com").Return(nil, sql.ErrNoRows)
	mockReader.EXPECT().GetByEmail(gomock.Any(), "gh@example.com").
		Return(&models.User{ID: 2, Email: "gh@example.com", Provider: models.ProviderGitHub, ProviderID: strPtr("gh-2")}, nil)

	for _, email := range []string{"missing@example.com", "gh@example.com"} {
		start := time.Now()
		_, err := svc.Login(context.Background(), email, "nope")
		elapsed := time.Since(start)

		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.GreaterOrEqual(t, elapsed, compareCost/4, "login for %s returned without hashing", email)
	}
}
