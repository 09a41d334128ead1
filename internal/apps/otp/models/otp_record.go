package models

import (
	"time"

	"github.com/google/uuid"
)

// OtpRecord represents a short-lived one-time passcode scoped to a subject
// (an email address in the primary flow). At most one valid record exists per
// subject: issuing a new code deletes the previous rows outright.
type OtpRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Subject   string    `gorm:"size:255;not null;index" json:"subject"`
	Code      string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name to 'otp_records'
func (OtpRecord) TableName() string { return "otp_records" }

// OtpVerifier is the capability shared by the two verification mechanisms:
// the expiring single-use flow and the static lead-stored code. Subject is an
// email address for the former and a lead id string for the latter.
type OtpVerifier interface {
	VerifyCode(subject, code string) (bool, error)
}

// IssueOTPRequest payload to request a passcode for an email address
type IssueOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest payload to verify a previously issued passcode
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// VerifyOTPResponse indicates verification result
type VerifyOTPResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}
