package repository

import (
	"eduportal-backend/internal/apps/course/models"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// CatalogRepository defines data operations for domains, courses and specializations
type CatalogRepository interface {
	CreateDomain(d *models.Domain) error
	FindDomainByID(id uint) (*models.Domain, error)
	ListDomains() ([]models.Domain, error)
	UpdateDomainFields(id uint, fields map[string]interface{}) (int64, error)
	DeleteDomain(id uint) error

	CreateCourse(c *models.Course) error
	FindCourseByID(id uint) (*models.Course, error)
	FindCourseBySlug(slug string) (*models.Course, error)
	ListCourses(domainID uint) ([]models.Course, error)
	UpdateCourseFields(id uint, fields map[string]interface{}) (int64, error)
	DeleteCourse(id uint) error

	CreateSpecialization(sp *models.Specialization) error
	FindSpecializationByID(id uint) (*models.Specialization, error)
	ListSpecializations(courseID uint) ([]models.Specialization, error)
	UpdateSpecializationFields(id uint, fields map[string]interface{}) (int64, error)
	DeleteSpecialization(id uint) error
}

// catalogRepository implements CatalogRepository
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateDomain(d *models.Domain) error {
	return r.db.Create(d).Error
}

func (r *catalogRepository) FindDomainByID(id uint) (*models.Domain, error) {
	var d models.Domain
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *catalogRepository) ListDomains() ([]models.Domain, error) {
	var out []models.Domain
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepository) UpdateDomainFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.Domain{}, id, fields)
}

func (r *catalogRepository) DeleteDomain(id uint) error {
	return r.db.Delete(&models.Domain{}, "id = ?", id).Error
}

func (r *catalogRepository) CreateCourse(c *models.Course) error {
	return r.db.Create(c).Error
}

func (r *catalogRepository) FindCourseByID(id uint) (*models.Course, error) {
	var c models.Course
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepository) FindCourseBySlug(slug string) (*models.Course, error) {
	var c models.Course
	if err := r.db.First(&c, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepository) ListCourses(domainID uint) ([]models.Course, error) {
	var out []models.Course
	query := r.db.Model(&models.Course{}).
		Select("courses.*, domains.name AS domain_name").
		Joins("LEFT JOIN domains ON domains.id = courses.domain_id").
		Order("courses.name ASC")
	if domainID != 0 {
		query = query.Where("courses.domain_id = ?", domainID)
	}
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepository) UpdateCourseFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.Course{}, id, fields)
}

func (r *catalogRepository) DeleteCourse(id uint) error {
	return r.db.Delete(&models.Course{}, "id = ?", id).Error
}

func (r *catalogRepository) CreateSpecialization(sp *models.Specialization) error {
	return r.db.Create(sp).Error
}

func (r *catalogRepository) FindSpecializationByID(id uint) (*models.Specialization, error) {
	var sp models.Specialization
	if err := r.db.First(&sp, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *catalogRepository) ListSpecializations(courseID uint) ([]models.Specialization, error) {
	var out []models.Specialization
	query := r.db.Model(&models.Specialization{}).
		Select("specializations.*, courses.name AS course_name").
		Joins("LEFT JOIN courses ON courses.id = specializations.course_id").
		Order("specializations.name ASC")
	if courseID != 0 {
		query = query.Where("specializations.course_id = ?", courseID)
	}
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *catalogRepository) UpdateSpecializationFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.Specialization{}, id, fields)
}

func (r *catalogRepository) DeleteSpecialization(id uint) error {
	return r.db.Delete(&models.Specialization{}, "id = ?", id).Error
}
