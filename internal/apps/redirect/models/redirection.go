package models

import "time"

// Redirection maps a retired site path to its replacement
type Redirection struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SourcePath string    `gorm:"size:512;not null;uniqueIndex" json:"source_path"`
	TargetPath string    `gorm:"size:512;not null" json:"target_path"`
	StatusCode int       `gorm:"not null;default:301" json:"status_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the table name to 'redirections'
func (Redirection) TableName() string { return "redirections" }

// CreateRedirectionRequest represents the request body for creating a redirection
type CreateRedirectionRequest struct {
	SourcePath string `json:"source_path" binding:"required,min=1,max=512"`
	TargetPath string `json:"target_path" binding:"required,min=1,max=512"`
	StatusCode int    `json:"status_code"`
}

// UpdateRedirectionRequest partial update plus the save_with_date control flag
type UpdateRedirectionRequest struct {
	SourcePath   *string     `json:"source_path,omitempty"`
	TargetPath   *string     `json:"target_path,omitempty"`
	StatusCode   *int        `json:"status_code,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}
