package models

import "time"

// Mentor is a counselor profile displayed on course and university pages
type Mentor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Designation string    `gorm:"size:255" json:"designation"`
	Bio         string    `gorm:"type:text" json:"bio"`
	PhotoURL    string    `gorm:"size:512" json:"photo_url"`
	LinkedinURL string    `gorm:"size:512" json:"linkedin_url"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the table name to 'mentors'
func (Mentor) TableName() string { return "mentors" }

// CreateMentorRequest represents the request body for creating a mentor
type CreateMentorRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Designation string `json:"designation"`
	Bio         string `json:"bio"`
	PhotoURL    string `json:"photo_url"`
	LinkedinURL string `json:"linkedin_url"`
}

// UpdateMentorRequest partial update plus the save_with_date control flag
type UpdateMentorRequest struct {
	Name         *string     `json:"name,omitempty"`
	Designation  *string     `json:"designation,omitempty"`
	Bio          *string     `json:"bio,omitempty"`
	PhotoURL     *string     `json:"photo_url,omitempty"`
	LinkedinURL  *string     `json:"linkedin_url,omitempty"`
	IsActive     *bool       `json:"is_active,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}
