package repository

import (
	"eduportal-backend/internal/apps/blog/models"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// BlogRepository defines data operations for blogs
type BlogRepository interface {
	Create(b *models.Blog) error
	FindByID(id uint) (*models.Blog, error)
	FindBySlug(slug string) (*models.Blog, error)
	FindAllPaginated(publishedOnly bool, page, pageSize int) ([]models.Blog, int64, error)
	UpdateFields(id uint, fields map[string]interface{}) (int64, error)
	Delete(id uint) error
}

// blogRepository implements BlogRepository
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new instance of BlogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(b *models.Blog) error {
	return r.db.Create(b).Error
}

func (r *blogRepository) FindByID(id uint) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) FindBySlug(slug string) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.First(&b, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *blogRepository) FindAllPaginated(publishedOnly bool, page, pageSize int) ([]models.Blog, int64, error) {
	var out []models.Blog
	var total int64

	query := r.db.Model(&models.Blog{})
	if publishedOnly {
		query = query.Where("published = true")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *blogRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.Blog{}, id, fields)
}

func (r *blogRepository) Delete(id uint) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
