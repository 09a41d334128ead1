package repository

import (
	"eduportal-backend/internal/apps/mentor/models"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// MentorRepository defines data operations for mentors
type MentorRepository interface {
	Create(m *models.Mentor) error
	FindByID(id uint) (*models.Mentor, error)
	ListActive() ([]models.Mentor, error)
	ListAll() ([]models.Mentor, error)
	UpdateFields(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) error
}

// mentorRepository implements MentorRepository
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new instance of MentorRepository
func NewMentorRepository(db *gorm.DB) MentorRepository {
	return &mentorRepository{db: db}
}

func (r *mentorRepository) Create(m *models.Mentor) error {
	return r.db.Create(m).Error
}

func (r *mentorRepository) FindByID(id uint) (*models.Mentor, error) {
	var m models.Mentor
	if err := r.db.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *mentorRepository) ListActive() ([]models.Mentor, error) {
	var out []models.Mentor
	if err := r.db.Where("is_active = true").Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mentorRepository) ListAll() ([]models.Mentor, error) {
	var out []models.Mentor
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mentorRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.Mentor{}, id, fields)
}

func (r *mentorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Mentor{}, "id = ?", id).Error
}
