package repository

import (
	"eduportal-backend/internal/apps/redirect/models"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// RedirectionRepository defines data operations for redirections
type RedirectionRepository interface {
	Create(r *models.Redirection) error
	FindByID(id uint) (*models.Redirection, error)
	FindBySourcePath(path string) (*models.Redirection, error)
	ListAll() ([]models.Redirection, error)
	UpdateFields(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) error
}

// redirectionRepository implements RedirectionRepository
type redirectionRepository struct {
	db *gorm.DB
}

// NewRedirectionRepository creates a new instance of RedirectionRepository
func NewRedirectionRepository(db *gorm.DB) RedirectionRepository {
	return &redirectionRepository{db: db}
}

func (r *redirectionRepository) Create(rd *models.Redirection) error {
	return r.db.Create(rd).Error
}

func (r *redirectionRepository) FindByID(id uint) (*models.Redirection, error) {
	var rd models.Redirection
	if err := r.db.First(&rd, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *redirectionRepository) FindBySourcePath(path string) (*models.Redirection, error) {
	var rd models.Redirection
	if err := r.db.First(&rd, "source_path = ?", path).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *redirectionRepository) ListAll() ([]models.Redirection, error) {
	var out []models.Redirection
	if err := r.db.Order("source_path ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *redirectionRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.Redirection{}, id, fields)
}

func (r *redirectionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Redirection{}, "id = ?", id).Error
}
