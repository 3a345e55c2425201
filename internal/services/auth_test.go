package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/models"
	"github.com/okulab/microscope-backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockHasher := services.NewMockPasswordHasher(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockJWT)

	tests := []struct {
		name          string
		email         string
		username      string
		password      string
		emailOwner    *models.UserDB
		usernameOwner *models.UserDB
		readerErr     error
		writerErr     error
		wantErr       error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			username: "alice",
			password: "pass123",
		},
		{
			name:       "email already exists",
			email:      "bob@example.com",
			username:   "bob",
			password:   "pass123",
			emailOwner: &models.UserDB{UserID: uuid.New()},
			wantErr:    services.ErrEmailAlreadyExists,
		},
		{
			name:          "username already exists",
			email:         "carol@example.com",
			username:      "carol",
			password:      "pass123",
			usernameOwner: &models.UserDB{UserID: uuid.New()},
			wantErr:       services.ErrUsernameAlreadyExists,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			email:     "dave@example.com",
			username:  "dave",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.emailOwner, tt.readerErr)

			if tt.emailOwner == nil && tt.readerErr == nil {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.usernameOwner, nil)
			}

			if tt.emailOwner == nil && tt.usernameOwner == nil && tt.readerErr == nil {
				mockHasher.EXPECT().
					Hash(tt.password).
					Return("$2a$10$hashedhashedhashedhashed", nil)
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
				if tt.writerErr == nil {
					mockJWT.EXPECT().
						Generate(gomock.Any(), gomock.Any(), tt.email, models.RoleUser).
						Return("token123", nil)
				}
			}

			result, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", result.AccessToken)
				assert.Equal(t, tt.email, result.User.Email)
				assert.Equal(t, tt.username, result.User.Username)
				assert.Equal(t, models.RoleUser, result.User.Role)
			}
		})
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockPasswordHasher(ctrl),
		services.NewMockTokenGenerator(ctrl),
	)

	tests := []struct {
		name      string
		email     string
		username  string
		password  string
		wantField string
	}{
		{name: "bad email", email: "not-an-email", username: "alice", password: "pass123", wantField: "email"},
		{name: "username too short", email: "a@example.com", username: "ab", password: "pass123", wantField: "username"},
		{name: "username too long", email: "a@example.com", username: string(make([]byte, 51)), password: "pass123", wantField: "username"},
		{name: "password too short", email: "a@example.com", username: "alice", password: "12345", wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)
			assert.Nil(t, result)

			var validationErr *services.ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.wantField)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockHasher := services.NewMockPasswordHasher(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockHasher, mockJWT)

	userID := uuid.New()
	user := &models.UserDB{
		UserID:       userID,
		Email:        "alice@example.com",
		Username:     "alice",
		PasswordHash: "$2a$10$storedhash",
		Role:         models.RoleUser,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		user       *models.UserDB
		readerErr  error
		verifyOK   bool
		wantErr    error
		wantToken  string
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			password:  "secret",
			user:      user,
			verifyOK:  true,
			wantToken: "token123",
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "secret",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong",
			user:     user,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "alice@example.com",
			password:  "secret",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.readerErr == nil {
				mockHasher.EXPECT().
					Verify(tt.password, tt.user.PasswordHash).
					Return(tt.verifyOK)
				if tt.verifyOK {
					mockJWT.EXPECT().
						Generate(gomock.Any(), tt.user.UserID, tt.user.Email, tt.user.Role).
						Return("token123", nil)
				}
			}

			result, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, result.AccessToken)
				assert.Equal(t, userID, result.User.ID)
			}
		})
	}
}
