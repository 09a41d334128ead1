package service

import (
	"errors"
	"strings"
	"time"

	"eduportal-backend/internal/apps/faq/models"
	"eduportal-backend/internal/apps/faq/repository"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// ErrFaqNotFound is returned when no category or question matches the id.
var ErrFaqNotFound = errors.New("faq record not found")

// FaqService defines business logic for FAQ management and aggregation
type FaqService interface {
	CreateCategory(req models.CreateCategoryRequest) (*models.FaqCategory, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.FaqCategory, error)
	ListCategories(scope models.Scope) ([]models.FaqCategory, error)
	DeleteCategory(id uint) error

	CreateQuestion(req models.CreateQuestionRequest) (*models.FaqQuestion, error)
	UpdateQuestion(id uint, req models.UpdateQuestionRequest) (*models.FaqQuestion, error)
	DeleteQuestion(id uint) error

	ListQuestions(scope models.Scope, scopeID uint) ([]CategoryBucket, error)
}

// faqService implements FaqService
type faqService struct {
	repo repository.FaqRepository
	now  func() time.Time
}

// NewFaqService creates a new instance of FaqService
func NewFaqService(repo repository.FaqRepository) FaqService {
	return &faqService{repo: repo, now: time.Now}
}

// CreateCategory creates a category; an omitted priority sorts last
func (s *faqService) CreateCategory(req models.CreateCategoryRequest) (*models.FaqCategory, error) {
	if !models.ValidScope(req.Scope) {
		return nil, errors.New("unknown faq scope")
	}

	priority := models.DefaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}
	cat := &models.FaqCategory{
		Scope:    req.Scope,
		Heading:  strings.TrimSpace(req.Heading),
		Priority: priority,
	}
	if err := s.repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// UpdateCategory applies a partial update under the audit-timestamp policy
func (s *faqService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.FaqCategory, error) {
	cat, err := s.repo.FindCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFaqNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Heading != nil {
		heading := strings.TrimSpace(*req.Heading)
		if heading == "" {
			return nil, errors.New("heading cannot be empty")
		}
		fields["heading"] = heading
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, cat.UpdatedAt, s.now)

	if _, err := s.repo.UpdateCategoryFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindCategoryByID(id)
}

// ListCategories lists categories for a scope in priority order
func (s *faqService) ListCategories(scope models.Scope) ([]models.FaqCategory, error) {
	if !models.ValidScope(scope) {
		return nil, errors.New("unknown faq scope")
	}
	return s.repo.ListCategories(scope)
}

// DeleteCategory removes a category without cascading to its questions
func (s *faqService) DeleteCategory(id uint) error {
	return s.repo.DeleteCategory(id)
}

// CreateQuestion creates a question attached to a scope instance
func (s *faqService) CreateQuestion(req models.CreateQuestionRequest) (*models.FaqQuestion, error) {
	if !models.ValidScope(req.Scope) {
		return nil, errors.New("unknown faq scope")
	}
	if req.Scope != models.ScopeSite && req.ScopeID == 0 {
		return nil, errors.New("scope_id is required for this scope")
	}

	q := &models.FaqQuestion{
		Scope:       req.Scope,
		ScopeID:     req.ScopeID,
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
	}
	if err := s.repo.CreateQuestion(q); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuestion applies a partial update under the audit-timestamp policy
func (s *faqService) UpdateQuestion(id uint, req models.UpdateQuestionRequest) (*models.FaqQuestion, error) {
	q, err := s.repo.FindQuestionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFaqNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, q.UpdatedAt, s.now)

	if _, err := s.repo.UpdateQuestionFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindQuestionByID(id)
}

// DeleteQuestion removes a question
func (s *faqService) DeleteQuestion(id uint) error {
	return s.repo.DeleteQuestion(id)
}

// ListQuestions loads all questions for a scope instance and folds them into
// category buckets. Computed on every call; nothing is cached.
func (s *faqService) ListQuestions(scope models.Scope, scopeID uint) ([]CategoryBucket, error) {
	if !models.ValidScope(scope) {
		return nil, errors.New("unknown faq scope")
	}

	joined, err := s.repo.FindQuestionRows(scope, scopeID)
	if err != nil {
		return nil, err
	}

	rows := make([]QuestionRow, 0, len(joined))
	for _, j := range joined {
		row := QuestionRow{
			ID:               j.ID,
			Title:            j.Title,
			Description:      j.Description,
			CategoryID:       j.CategoryID,
			CategoryPriority: j.CategoryPriority,
		}
		if j.CategoryHeading != nil {
			row.CategoryHeading = *j.CategoryHeading
		}
		rows = append(rows, row)
	}

	return Aggregate(rows, true), nil
}
