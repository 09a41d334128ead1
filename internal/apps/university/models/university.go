package models

import "time"

// UniversityType classifies institutions (state, private, deemed, central)
type UniversityType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name to 'university_types'
func (UniversityType) TableName() string { return "university_types" }

// University represents an educational institution listed on the site
type University struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TypeID    *uint     `gorm:"index" json:"type_id,omitempty"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Location  string    `gorm:"size:255" json:"location"`
	Website   string    `gorm:"size:255" json:"website"`
	LogoURL   string    `gorm:"size:512" json:"logo_url"`
	About     string    `gorm:"type:text" json:"about"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name to 'universities'
func (University) TableName() string { return "universities" }

// CreateUniversityRequest represents the request body for creating a university
type CreateUniversityRequest struct {
	TypeID   *uint  `json:"type_id,omitempty"`
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Slug     string `json:"slug" binding:"required,min=1,max=255"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LogoURL  string `json:"logo_url"`
	About    string `json:"about"`
}

// UpdateUniversityRequest partial update plus the save_with_date control flag
type UpdateUniversityRequest struct {
	TypeID       *uint       `json:"type_id,omitempty"`
	Name         *string     `json:"name,omitempty"`
	Slug         *string     `json:"slug,omitempty"`
	Location     *string     `json:"location,omitempty"`
	Website      *string     `json:"website,omitempty"`
	LogoURL      *string     `json:"logo_url,omitempty"`
	About        *string     `json:"about,omitempty"`
	IsActive     *bool       `json:"is_active,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}

// CreateUniversityTypeRequest represents the request body for creating a type
type CreateUniversityTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateUniversityTypeRequest partial update plus the save_with_date control flag
type UpdateUniversityTypeRequest struct {
	Name         *string     `json:"name,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}
