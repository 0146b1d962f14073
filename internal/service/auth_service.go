package service

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/voodley/voodley-backend/internal/models"
	"github.com/voodley/voodley-backend/internal/repository"
	"github.com/voodley/voodley-backend/pkg/bcrypt"
	jwtPkg "github.com/voodley/voodley-backend/pkg/jwt"
)

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *jwtPkg.Manager
}

func NewAuthService(userRepo *repository.UserRepository, tokens *jwtPkg.Manager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	email := NormalizeEmail(req.Email)

	exists, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	passwordHash, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:            email,
		PasswordHash:     passwordHash,
		Name:             req.Name,
		Role:             models.RoleUser,
		SubscriptionTier: models.TierFree,
		TokensLimit:      models.DefaultTokensLimit,
		IsActive:         true,
		EmailVerified:    false,
		LastLoginAt:      &now,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
