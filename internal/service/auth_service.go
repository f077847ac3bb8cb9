package service

import (
	"errors"

	"github.com/dermascan-backend/internal/models"
	"github.com/dermascan-backend/internal/repository"
	"github.com/dermascan-backend/pkg/crypto"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateUser      = errors.New("username or email already exists")
)

// AuthService handles signup and signin
type AuthService struct {
	userRepo *repository.UserRepository
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SigninRequest represents the signin request
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Profile is the public view of a user; it never carries the password hash
type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Signup hashes the password and creates the user. A username or email
// uniqueness breach surfaces as ErrDuplicateUser.
func (s *AuthService) Signup(req *SignupRequest) (uint, error) {
	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return 0, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return 0, ErrDuplicateUser
		}
		return 0, err
	}

	return user.ID, nil
}

// Signin verifies the email and password and returns the public profile.
// Unknown email and wrong password both fold into ErrInvalidCredentials so
// the caller cannot tell which one failed.
func (s *AuthService) Signin(req *SigninRequest) (*Profile, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &Profile{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
