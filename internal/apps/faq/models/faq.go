package models

import "time"

// Scope identifies the owning entity type a FAQ set is attached to. One table
// pair with a scope discriminator serves every granularity the site exposes.
type Scope string

const (
	ScopeSite                 Scope = "site"
	ScopeBlog                 Scope = "blog"
	ScopeCourse               Scope = "course"
	ScopeSpecialization       Scope = "specialization"
	ScopeUniversity           Scope = "university"
	ScopeUniversityCourse     Scope = "university_course"
	ScopeUniversityCourseSpec Scope = "university_course_specialization"
)

// ValidScope reports whether s names a known FAQ scope
func ValidScope(s Scope) bool {
	switch s {
	case ScopeSite, ScopeBlog, ScopeCourse, ScopeSpecialization,
		ScopeUniversity, ScopeUniversityCourse, ScopeUniversityCourseSpec:
		return true
	}
	return false
}

// DefaultPriority sorts a category last when no explicit priority is set.
const DefaultPriority = 999

// FaqCategory groups questions under a display heading within a scope
type FaqCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Scope     Scope     `gorm:"size:50;not null;index" json:"scope"`
	Heading   string    `gorm:"size:255;not null" json:"heading"`
	Priority  int       `gorm:"not null;default:999" json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name to 'faq_categories'
func (FaqCategory) TableName() string { return "faq_categories" }

// FaqQuestion is one question/answer row attached to a scope instance.
// CategoryID is nullable; questions without a category (including ones
// orphaned by a category delete) surface under "Uncategorized".
type FaqQuestion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Scope       Scope     `gorm:"size:50;not null;index:idx_faq_questions_scope" json:"scope"`
	ScopeID     uint      `gorm:"not null;index:idx_faq_questions_scope" json:"scope_id"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name to 'faq_questions'
func (FaqQuestion) TableName() string { return "faq_questions" }

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Scope    Scope  `json:"scope" binding:"required"`
	Heading  string `json:"heading" binding:"required,min=1,max=255"`
	Priority *int   `json:"priority,omitempty"`
}

// UpdateCategoryRequest partial update plus the save_with_date control flag
type UpdateCategoryRequest struct {
	Heading      *string     `json:"heading,omitempty"`
	Priority     *int        `json:"priority,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}

// CreateQuestionRequest represents the request body for creating a question
type CreateQuestionRequest struct {
	Scope       Scope  `json:"scope" binding:"required"`
	ScopeID     uint   `json:"scope_id"`
	CategoryID  *uint  `json:"category_id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateQuestionRequest partial update plus the save_with_date control flag
type UpdateQuestionRequest struct {
	CategoryID   *uint       `json:"category_id,omitempty"`
	Title        *string     `json:"title,omitempty"`
	Description  *string     `json:"description,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}
