package institute

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/OfficialSahil548k/MindMania/internal/config"
)

var (
	ErrInstituteNotFound = errors.New("institute not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNameRequired      = errors.New("institute name is required")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateInstituteDTO) (*Institute, error)
	ListAll(ctx context.Context) ([]Institute, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]Institute, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateInstituteDTO) (*Institute, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateInstituteDTO) (*Institute, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" {
		return nil, ErrNameRequired
	}

	i := Institute{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		CreatedBy:   userID,
	}
	if err := s.repo.Create(&i); err != nil {
		log.WithError(err).Error("Failed to create institute")
		return nil, err
	}

	log.WithField("institute_id", i.ID.String()).Info("Institute created")
	return &i, nil
}

func (s *service) ListAll(ctx context.Context) ([]Institute, error) {
	return s.repo.FindAll()
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]Institute, error) {
	return s.repo.FindAllByCreator(userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateInstituteDTO) (*Institute, error) {
	i, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if i == nil {
		return nil, ErrInstituteNotFound
	}
	if i.CreatedBy != userID {
		return nil, ErrUnauthorized
	}

	if dto.Name != nil {
		if *dto.Name == "" {
			return nil, ErrNameRequired
		}
		i.Name = *dto.Name
	}
	if dto.Description != nil {
		i.Description = *dto.Description
	}

	if err := s.repo.Update(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	i, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if i == nil {
		return ErrInstituteNotFound
	}
	if i.CreatedBy != userID {
		return ErrUnauthorized
	}
	return s.repo.Delete(id)
}
