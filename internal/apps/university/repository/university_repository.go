package repository

import (
	"eduportal-backend/internal/apps/university/models"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// UniversityRepository defines data operations for universities and their types
type UniversityRepository interface {
	Create(u *models.University) error
	FindByID(id uint) (*models.University, error)
	FindBySlug(slug string) (*models.University, error)
	FindAllPaginated(typeID uint, page, pageSize int) ([]models.University, int64, error)
	UpdateFields(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) error

	CreateType(t *models.UniversityType) error
	FindTypeByID(id uint) (*models.UniversityType, error)
	ListTypes() ([]models.UniversityType, error)
	UpdateTypeFields(id uint, fields map[string]interface{}) (int64, error)
	DeleteType(id uint) error
}

// universityRepository implements UniversityRepository
type universityRepository struct {
	db *gorm.DB
}

// NewUniversityRepository creates a new instance of UniversityRepository
func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (r *universityRepository) Create(u *models.University) error {
	return r.db.Create(u).Error
}

func (r *universityRepository) FindByID(id uint) (*models.University, error) {
	var u models.University
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) FindBySlug(slug string) (*models.University, error) {
	var u models.University
	if err := r.db.First(&u, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *universityRepository) FindAllPaginated(typeID uint, page, pageSize int) ([]models.University, int64, error) {
	var out []models.University
	var total int64

	query := r.db.Model(&models.University{})
	if typeID != 0 {
		query = query.Where("type_id = ?", typeID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("name ASC").Offset(offset).Limit(pageSize).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *universityRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.University{}, id, fields)
}

func (r *universityRepository) Delete(id uint) error {
	return r.db.Delete(&models.University{}, "id = ?", id).Error
}

func (r *universityRepository) CreateType(t *models.UniversityType) error {
	return r.db.Create(t).Error
}

func (r *universityRepository) FindTypeByID(id uint) (*models.UniversityType, error) {
	var t models.UniversityType
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *universityRepository) ListTypes() ([]models.UniversityType, error) {
	var out []models.UniversityType
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *universityRepository) UpdateTypeFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.UniversityType{}, id, fields)
}

func (r *universityRepository) DeleteType(id uint) error {
	return r.db.Delete(&models.UniversityType{}, "id = ?", id).Error
}
