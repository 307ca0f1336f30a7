package service

import (
	"context"
	"fmt"

	"recipeshare/internal/models"
	"recipeshare/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles user auth logic
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

// SignUp validates the input, hashes the raw password and creates the user.
// The raw password is not retained anywhere past this call; an empty password
// is allowed and hashed like any other. Duplicate usernames surface as
// repository.ErrDuplicateUsername (pre-checked) or repository.ErrConflict
// (lost race against a concurrent signup).
func (s *AuthService) SignUp(ctx context.Context, in SignUpParams) (*models.User, error) {
	if len(in.Username) == 0 {
		return nil, newValidationError("username", "Username must be a nonempty string.")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		// bcrypt refuses inputs over 72 bytes; not a field the caller
		// can itemize, so it surfaces as a plain creation failure.
		return nil, err
	}

	u := &models.User{
		Username:     in.Username,
		PasswordHash: hash,
		ImageURL:     in.ImageURL,
		Bio:          in.Bio,
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	u.Recipes = []models.Recipe{}
	return u, nil
}

// Authenticate looks the user up and verifies the password against the
// stored bcrypt hash. Unknown username and wrong password both collapse to
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Burn a comparison anyway so the timing of the two failure
		// modes stays indistinguishable.
		_ = verifyPassword(emptyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID resolves a stored user id, typically one recovered from a session.
// Returns (nil, nil) when the id no longer maps to a user.
func (s *AuthService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// emptyHash is a valid bcrypt hash of an empty input, used to equalize
// comparison cost when the username does not exist.
const emptyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
