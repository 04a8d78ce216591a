// Package user is the authentication collaborator: it owns user records
// and issues the tokens the booking flow uses to resolve the current user.
package user

import (
	"fmt"
	"time"

	userRepo "barberly/database/repository/user"
	"barberly/models"
	"barberly/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an issued auth token stays valid.
const TokenTTL = 72 * time.Hour

// AuthResponse carries the user record and its fresh auth token.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines the account operations exposed by the backend.
type UserService interface {
	Register(user *models.User) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.User, error)
}

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account and signs the user in.
func (s *DefaultUserService) Register(u *models.User) (*AuthResponse, error) {
	if u.Email == "" || u.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	existing, err := s.Repo.GetByEmail(u.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	u.Password = ""

	if err := s.Repo.Create(u); err != nil {
		utils.GetLogger().Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(u)
}

// Authenticate verifies credentials and issues a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// GetByID fetches a user record; (nil, nil) when unknown.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// issueToken signs a JWT for the user and persists its hash so the auth
// middleware can reject revoked tokens.
func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(u.ID, utils.HashToken(token)); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	u.TokenHash = utils.HashToken(token)
	return &AuthResponse{User: u, Token: token}, nil
}
