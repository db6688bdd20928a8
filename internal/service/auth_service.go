package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/svernekar/examportal/config"
	"github.com/svernekar/examportal/internal/auth"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/model"
	"github.com/svernekar/examportal/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Signup(req dto.SignupRequest) error
	Login(req dto.LoginRequest) (*dto.UserResponse, string, error)
	Profile(userID string) (*dto.ProfileResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

// Signup hashes the password and inserts the user. Uniqueness rides on the
// primary-key constraint, so two concurrent signups with the same id cannot
// both succeed; the loser sees ErrUserExists.
func (s *authService) Signup(req dto.SignupRequest) error {
	if !model.Role(req.Role).Valid() {
		return fmt.Errorf("unknown role %q", req.Role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		ID:         req.ID,
		Password:   string(hashed),
		Name:       req.Name,
		Role:       model.Role(req.Role),
		Department: req.Department,
	}

	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		log.Error().Err(err).Str("userID", req.ID).Msg("Failed to insert user")
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a signed session token. The
// returned user is sanitized; the stored hash never leaves this layer.
func (s *authService) Login(req dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := s.userRepo.FindByID(req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		log.Error().Err(err).Str("userID", req.ID).Msg("Failed to look up user")
		return nil, "", fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := auth.Generate(user, s.cfg.JWT.Secret, s.cfg.JWT.Expiry)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Failed to sign token")
		return nil, "", fmt.Errorf("signing token: %w", err)
	}

	resp := dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Role:       string(user.Role),
		Department: user.Department,
	}
	return &resp, token, nil
}

func (s *authService) Profile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	return &dto.ProfileResponse{
		ID:       user.ID,
		Name:     user.Name,
		Role:     string(user.Role),
		DeptName: user.Department,
	}, nil
}
