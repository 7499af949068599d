package institute

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(i *Institute) error
	FindAll() ([]Institute, error)
	FindAllByCreator(userID uuid.UUID) ([]Institute, error)
	FindByID(id uuid.UUID) (*Institute, error)
	Update(i *Institute) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(i *Institute) error {
	return r.db.Create(i).Error
}

func (r *repository) FindAll() ([]Institute, error) {
	var institutes []Institute
	if err := r.db.Order("created_at DESC").Find(&institutes).Error; err != nil {
		return nil, err
	}
	return institutes, nil
}

func (r *repository) FindAllByCreator(userID uuid.UUID) ([]Institute, error) {
	var institutes []Institute
	if err := r.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&institutes).Error; err != nil {
		return nil, err
	}
	return institutes, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Institute, error) {
	var i Institute
	if err := r.db.First(&i, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *repository) Update(i *Institute) error {
	return r.db.Save(i).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Institute{}, "id = ?", id).Error
}
