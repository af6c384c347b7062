package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/sbilibin2017/volunteer-hours/internal/storage"
	"gopkg.in/yaml.v3"
)

// Error variables
var (
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidRole        = errors.New("invalid role")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmailAndPassword(ctx context.Context, email, passwordHash string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name, email, passwordHash string, role models.Role) (int64, error)
}

// AuthService handles registration and credential checks.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// HashPassword returns the lowercase hex SHA-256 digest stored in place of a password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a user and returns its ID. An empty role means Volunteer.
// Email uniqueness is enforced by the store; a clash yields ErrDuplicateEmail.
func (svc *AuthService) Register(ctx context.Context, name, email, password string, role models.Role) (int64, error) {
	if role == "" {
		role = models.RoleVolunteer
	}
	switch {
	case name == "":
		return 0, ErrNameRequired
	case email == "":
		return 0, ErrEmailRequired
	case !role.Valid():
		logger.Log.Errorw("invalid role", "role", role)
		return 0, ErrInvalidRole
	}

	userID, err := svc.writer.Save(ctx, name, email, HashPassword(password), role)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			logger.Log.Errorw("email already exists", "email", email)
			return 0, ErrDuplicateEmail
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, fmt.Errorf("save user: %w", err)
	}

	return userID, nil
}

// Authenticate checks email and password and returns the user's ID and role.
// Unknown email and wrong password are reported identically.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (int64, models.Role, error) {
	user, err := svc.reader.GetByEmailAndPassword(ctx, email, HashPassword(password))
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return 0, "", fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return 0, "", ErrInvalidCredentials
	}

	return user.UserID, user.Role, nil
}

type adminsFile struct {
	Admins []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admins"`
}

// SeedAdmins registers the Admin accounts listed in the YAML file at path and
// returns how many were created. A missing file is not an error; accounts whose
// email is already taken are left untouched.
func (svc *AuthService) SeedAdmins(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Log.Infow("admins file not found, skipping seed", "path", path)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read admins file: %w", err)
	}

	var af adminsFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return 0, fmt.Errorf("parse admins file: %w", err)
	}

	created := 0
	for _, a := range af.Admins {
		if a.Email == "" || a.Password == "" {
			continue
		}
		name := a.Name
		if name == "" {
			name = a.Email
		}
		_, err := svc.Register(ctx, name, a.Email, a.Password, models.RoleAdmin)
		if errors.Is(err, ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}

	logger.Log.Infow("admins seeded", "path", path, "created", created)
	return created, nil
}
