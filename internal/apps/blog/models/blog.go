package models

import "time"

// Blog is an article published on the site
type Blog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Author      string     `gorm:"size:255" json:"author"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	CoverURL    string     `gorm:"size:512" json:"cover_url"`
	Published   bool       `gorm:"not null;default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName sets the table name to 'blogs'
func (Blog) TableName() string { return "blogs" }

// CreateBlogRequest represents the request body for creating a blog
type CreateBlogRequest struct {
	Title    string `json:"title" binding:"required,min=1,max=255"`
	Slug     string `json:"slug" binding:"required,min=1,max=255"`
	Author   string `json:"author"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	CoverURL string `json:"cover_url"`
}

// UpdateBlogRequest partial update plus the save_with_date control flag
type UpdateBlogRequest struct {
	Title        *string     `json:"title,omitempty"`
	Slug         *string     `json:"slug,omitempty"`
	Author       *string     `json:"author,omitempty"`
	Excerpt      *string     `json:"excerpt,omitempty"`
	Content      *string     `json:"content,omitempty"`
	CoverURL     *string     `json:"cover_url,omitempty"`
	Published    *bool       `json:"published,omitempty"`
	SaveWithDate interface{} `json:"save_with_date,omitempty"`
}
