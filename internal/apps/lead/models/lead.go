package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLeadOTP is stored when the caller supplies no otp value or an
// invalid one. This simplified flow has no expiry and no consumed flag;
// verification is a plain equality check by lead id.
const DefaultLeadOTP = "123456"

// WebsiteLead represents an enquiry submitted through the public website
type WebsiteLead struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Email          *string   `gorm:"size:255;index" json:"email,omitempty"`
	Phone          *string   `gorm:"size:20;index" json:"phone,omitempty"`
	Course         *string   `gorm:"size:255" json:"course,omitempty"`
	Specialization *string   `gorm:"size:255" json:"specialization,omitempty"`
	Location       *string   `gorm:"size:255" json:"location,omitempty"`
	Source         *string   `gorm:"size:100" json:"source,omitempty"`
	SubSource      *string   `gorm:"size:100" json:"sub_source,omitempty"`
	UTMSource      *string   `gorm:"size:255" json:"utm_source,omitempty"`
	UTMMedium      *string   `gorm:"size:255" json:"utm_medium,omitempty"`
	UTMCampaign    *string   `gorm:"size:255" json:"utm_campaign,omitempty"`
	OTP            string    `gorm:"size:6;not null;default:'123456'" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the table name to 'website_leads'
func (WebsiteLead) TableName() string { return "website_leads" }

// CreateLeadRequest represents the request body for capturing a lead
type CreateLeadRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"`
	Course         *string `json:"course,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Location       *string `json:"location,omitempty"`
	Source         *string `json:"source,omitempty"`
	SubSource      *string `json:"sub_source,omitempty"`
	UTMSource      *string `json:"utm_source,omitempty"`
	UTMMedium      *string `json:"utm_medium,omitempty"`
	UTMCampaign    *string `json:"utm_campaign,omitempty"`
	OTP            *string `json:"otp,omitempty"`
}

// UpdateLeadByContactRequest updates a lead located by phone or email when the
// caller does not know the id
type UpdateLeadByContactRequest struct {
	Email          *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"`
	Name           *string `json:"name,omitempty"`
	Course         *string `json:"course,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Location       *string `json:"location,omitempty"`
}

// VerifyLeadOTPRequest payload for the static lead OTP check
type VerifyLeadOTPRequest struct {
	LeadID uuid.UUID `json:"lead_id" binding:"required"`
	Code   string    `json:"code" binding:"required"`
}
