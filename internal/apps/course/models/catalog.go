package models

import "time"

// Domain is a top-level study area (e.g. Management, Engineering)
type Domain struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name to 'domains'
func (Domain) TableName() string { return "domains" }

// Course is a program offered within a domain
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DomainID    uint      `gorm:"not null;index" json:"domain_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	DurationMo  int       `gorm:"column:duration_months" json:"duration_months"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// filled by list queries, not a column
	DomainName string `gorm:"-:migration;->" json:"domain_name,omitempty"`
}

// TableName sets the table name to 'courses'
func (Course) TableName() string { return "courses" }

// Specialization is a track within a course
type Specialization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CourseID    uint      `gorm:"not null;index" json:"course_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// filled by list queries, not a column
	CourseName string `gorm:"-:migration;->" json:"course_name,omitempty"`
}

// TableName sets the table name to 'specializations'
func (Specialization) TableName() string { return "specializations" }

// CreateDomainRequest represents the request body for creating a domain
type CreateDomainRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
	Slug string `json:"slug" binding:"required,min=1,max=255"`
}

// UpdateDomainRequest partial update plus the save_with_date control flag
type UpdateDomainRequest struct {
	Name         *string     `json:"name,omitempty"`
	Slug         *string     `json:"slug,omitempty"`
	IsActive     *bool       `json:"is_active,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	DomainID    uint   `json:"domain_id" binding:"required"`
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Description string `json:"description"`
	DurationMo  int    `json:"duration_months"`
}

// UpdateCourseRequest partial update plus the save_with_date control flag
type UpdateCourseRequest struct {
	DomainID     *uint       `json:"domain_id,omitempty"`
	Name         *string     `json:"name,omitempty"`
	Slug         *string     `json:"slug,omitempty"`
	Description  *string     `json:"description,omitempty"`
	DurationMo   *int        `json:"duration_months,omitempty"`
	IsActive     *bool       `json:"is_active,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}

// CreateSpecializationRequest represents the request body for creating a specialization
type CreateSpecializationRequest struct {
	CourseID    uint   `json:"course_id" binding:"required"`
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Slug        string `json:"slug" binding:"required,min=1,max=255"`
	Description string `json:"description"`
}

// UpdateSpecializationRequest partial update plus the save_with_date control flag
type UpdateSpecializationRequest struct {
	CourseID     *uint       `json:"course_id,omitempty"`
	Name         *string     `json:"name,omitempty"`
	Slug         *string     `json:"slug,omitempty"`
	Description  *string     `json:"description,omitempty"`
	IsActive     *bool       `json:"is_active,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}
