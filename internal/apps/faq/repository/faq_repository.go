package repository

import (
	"eduportal-backend/internal/apps/faq/models"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// QuestionJoinRow is the join-denormalized shape the aggregation query produces
type QuestionJoinRow struct {
	ID               uint
	Title            string
	Description      string
	CategoryID       *uint
	CategoryHeading  *string
	CategoryPriority *int
}

// FaqRepository defines data operations for FAQ categories and questions
type FaqRepository interface {
	CreateCategory(cat *models.FaqCategory) error
	FindCategoryByID(id uint) (*models.FaqCategory, error)
	ListCategories(scope models.Scope) ([]models.FaqCategory, error)
	UpdateCategoryFields(id uint, fields map[string]interface{}) (int64, error)
	DeleteCategory(id uint) error

	CreateQuestion(q *models.FaqQuestion) error
	FindQuestionByID(id uint) (*models.FaqQuestion, error)
	UpdateQuestionFields(id uint, fields map[string]interface{}) (int64, error)
	DeleteQuestion(id uint) error

	FindQuestionRows(scope models.Scope, scopeID uint) ([]QuestionJoinRow, error)
}

// faqRepository implements FaqRepository
type faqRepository struct {
	db *gorm.DB
}

// NewFaqRepository creates a new instance of FaqRepository
func NewFaqRepository(db *gorm.DB) FaqRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) CreateCategory(cat *models.FaqCategory) error {
	return r.db.Create(cat).Error
}

func (r *faqRepository) FindCategoryByID(id uint) (*models.FaqCategory, error) {
	var cat models.FaqCategory
	if err := r.db.First(&cat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *faqRepository) ListCategories(scope models.Scope) ([]models.FaqCategory, error) {
	var cats []models.FaqCategory
	if err := r.db.Where("scope = ?", scope).Order("priority ASC, id ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *faqRepository) UpdateCategoryFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.FaqCategory{}, id, fields)
}

// DeleteCategory removes the category only. Its questions keep a dangling
// reference on purpose and surface under Uncategorized.
func (r *faqRepository) DeleteCategory(id uint) error {
	return r.db.Delete(&models.FaqCategory{}, "id = ?", id).Error
}

func (r *faqRepository) CreateQuestion(q *models.FaqQuestion) error {
	return r.db.Create(q).Error
}

func (r *faqRepository) FindQuestionByID(id uint) (*models.FaqQuestion, error) {
	var q models.FaqQuestion
	if err := r.db.First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *faqRepository) UpdateQuestionFields(id uint, fields map[string]interface{}) (int64, error) {
	return persistence.UpdateFields(r.db, &models.FaqQuestion{}, id, fields)
}

func (r *faqRepository) DeleteQuestion(id uint) error {
	return r.db.Delete(&models.FaqQuestion{}, "id = ?", id).Error
}

// FindQuestionRows loads the flat rows feeding the aggregator. The left join
// leaves category columns null for uncategorized or orphaned questions.
func (r *faqRepository) FindQuestionRows(scope models.Scope, scopeID uint) ([]QuestionJoinRow, error) {
	var rows []QuestionJoinRow
	err := r.db.Model(&models.FaqQuestion{}).
		Select(`faq_questions.id,
			faq_questions.title,
			faq_questions.description,
			faq_categories.id AS category_id,
			faq_categories.heading AS category_heading,
			faq_categories.priority AS category_priority`).
		Joins("LEFT JOIN faq_categories ON faq_categories.id = faq_questions.category_id").
		Where("faq_questions.scope = ? AND faq_questions.scope_id = ?", scope, scopeID).
		Order("faq_questions.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
