package models

import "time"

// CourseBanner is one banner slide on a course page. Banners are replaced
// wholesale per course rather than edited row by row.
type CourseBanner struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Title     string    `gorm:"size:255" json:"title"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	LinkURL   string    `gorm:"size:512" json:"link_url"`
	Priority  int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the table name to 'course_banners'
func (CourseBanner) TableName() string { return "course_banners" }

// BannerInput is one banner in a replace-all request
type BannerInput struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url" binding:"required"`
	LinkURL  string `json:"link_url"`
	Priority int    `json:"priority"`
}

// ReplaceBannersRequest replaces the full banner set for a course
type ReplaceBannersRequest struct {
	Banners []BannerInput `json:"banners" binding:"required,dive"`
}
