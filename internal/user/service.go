package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/OfficialSahil548k/MindMania/internal/auth"
	"github.com/OfficialSahil548k/MindMania/internal/config"
)

var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidInput       = errors.New("invalid input")
)

const tokenTTL = time.Hour

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	dto.Email = strings.TrimSpace(strings.ToLower(dto.Email))
	if dto.Name == "" || dto.Email == "" || dto.Password == "" {
		return nil, ErrInvalidInput
	}
	if dto.Role == "" {
		dto.Role = UserRoleStudent
	}
	if !dto.Role.IsValid() {
		return nil, ErrInvalidInput
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), 12)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:       uuid.New(),
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hashed),
		Role:     dto.Role,
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), tokenTTL)
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("User registered")
	return &AuthResponse{Result: &u, Token: token}, nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	dto.Email = strings.TrimSpace(strings.ToLower(dto.Email))

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), tokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Result: u, Token: token}, nil
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
