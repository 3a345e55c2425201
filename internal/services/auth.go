package services

import (
	"context"
	"errors"
	"net/mail"

	"github.com/google/uuid"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
)

// ValidationError carries per-field validation messages for a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (string, error)
}

// AuthResult is the response shape shared by registration and login.
type AuthResult struct {
	AccessToken string
	User        models.SanitizedUser
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		hasher: hasher,
		jwt:    jwt,
	}
}

// Register registers a new user and issues an access token.
//
// The conflict check is two sequential unique lookups, not an atomic
// constraint catch: a concurrent registration racing on the same email
// surfaces as a duplicate-key failure from Save instead of a conflict.
func (svc *AuthService) Register(ctx context.Context, email, username, password string) (*AuthResult, error) {
	if err := validateRegistration(email, username, password); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already exists", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already exists", "username", username)
		return nil, ErrUsernameAlreadyExists
	}

	hashedPassword, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &models.UserDB{
		UserID:       uuid.New(),
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
		Preferences:  models.JSONMap{},
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, err
	}

	return &AuthResult{AccessToken: token, User: user.Sanitize()}, nil
}

// Login authenticates a user and issues an access token. Unknown email
// and wrong password both return ErrInvalidCredentials so a caller
// cannot tell which check failed.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return nil, ErrInvalidCredentials
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, err
	}

	return &AuthResult{AccessToken: token, User: user.Sanitize()}, nil
}

func validateRegistration(email, username, password string) error {
	fields := map[string]string{}

	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(username) < 3 || len(username) > 50 {
		fields["username"] = "must be between 3 and 50 characters"
	}
	if len(password) < 6 {
		fields["password"] = "must be at least 6 characters"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
