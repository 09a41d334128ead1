package repository

import (
	"eduportal-backend/internal/apps/lead/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository defines data operations for website leads
type LeadRepository interface {
	Create(lead *models.WebsiteLead) error
	FindByID(id uuid.UUID) (*models.WebsiteLead, error)
	FindByContact(phone, email string) (*models.WebsiteLead, error)
	ExistsWithOTP(id uuid.UUID, code string) (bool, error)
	Update(lead *models.WebsiteLead) error
	FindAllPaginated(page, pageSize int) ([]models.WebsiteLead, int64, error)
}

// leadRepository implements LeadRepository
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new instance of LeadRepository
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Create stores a new lead
func (r *leadRepository) Create(lead *models.WebsiteLead) error {
	return r.db.Create(lead).Error
}

// FindByID retrieves a lead by its ID
func (r *leadRepository) FindByID(id uuid.UUID) (*models.WebsiteLead, error) {
	var lead models.WebsiteLead
	if err := r.db.First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByContact retrieves the most recent lead matching phone or email.
// Identity is resolved by contact details, not primary key, because the
// website never learns the id it was assigned.
func (r *leadRepository) FindByContact(phone, email string) (*models.WebsiteLead, error) {
	var lead models.WebsiteLead
	query := r.db.Order("created_at DESC")
	switch {
	case phone != "" && email != "":
		query = query.Where("phone = ? OR email = ?", phone, email)
	case phone != "":
		query = query.Where("phone = ?", phone)
	default:
		query = query.Where("email = ?", email)
	}
	if err := query.First(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// ExistsWithOTP reports whether a lead with this id carries exactly this
// stored code
func (r *leadRepository) ExistsWithOTP(id uuid.UUID, code string) (bool, error) {
	var count int64
	err := r.db.Model(&models.WebsiteLead{}).
		Where("id = ? AND otp = ?", id, code).
		Count(&count).Error
	return count > 0, err
}

// Update updates an existing lead
func (r *leadRepository) Update(lead *models.WebsiteLead) error {
	return r.db.Save(lead).Error
}

// FindAllPaginated retrieves leads with pagination, newest first
func (r *leadRepository) FindAllPaginated(page, pageSize int) ([]models.WebsiteLead, int64, error) {
	var leads []models.WebsiteLead
	var total int64

	query := r.db.Model(&models.WebsiteLead{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&leads).Error; err != nil {
		return nil, 0, err
	}

	return leads, total, nil
}
