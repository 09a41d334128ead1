package repository

import (
	"eduportal-backend/internal/apps/banner/models"

	"gorm.io/gorm"
)

// BannerRepository defines data operations for course banners
type BannerRepository interface {
	ListByCourse(courseID uint) ([]models.CourseBanner, error)
	ReplaceForCourse(courseID uint, banners []models.CourseBanner) error
}

// bannerRepository implements BannerRepository
type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository creates a new instance of BannerRepository
func NewBannerRepository(db *gorm.DB) BannerRepository {
	return &bannerRepository{db: db}
}

func (r *bannerRepository) ListByCourse(courseID uint) ([]models.CourseBanner, error) {
	var out []models.CourseBanner
	if err := r.db.Where("course_id = ?", courseID).Order("priority ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceForCourse swaps the course's banner set in one transaction. A failed
// insert rolls back the delete, leaving the prior banners intact.
func (r *bannerRepository) ReplaceForCourse(courseID uint, banners []models.CourseBanner) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&models.CourseBanner{}).Error; err != nil {
			return err
		}
		if len(banners) == 0 {
			return nil
		}
		return tx.Create(&banners).Error
	})
}
