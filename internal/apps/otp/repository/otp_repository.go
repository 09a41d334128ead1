package repository

import (
	"time"

	"eduportal-backend/internal/apps/otp/models"

	"gorm.io/gorm"
)

// OTPRepository defines data operations for OTP records
type OTPRepository interface {
	Replace(record *models.OtpRecord) error
	Consume(subject, code string, now time.Time) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}

// otpRepository implements OTPRepository
type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates an instance of OTPRepository
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

// Replace atomically invalidates all prior records for the subject and inserts
// the new one. Running both statements in one transaction keeps the "at most
// one valid code per subject" invariant under concurrent issuance.
func (r *otpRepository) Replace(record *models.OtpRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject = ?", record.Subject).Delete(&models.OtpRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
}

// Consume marks the matching valid record as used and reports whether a match
// existed. The single conditional UPDATE makes verify-then-consume atomic:
// two concurrent calls with the same code cannot both see an affected row.
func (r *otpRepository) Consume(subject, code string, now time.Time) (bool, error) {
	res := r.db.Model(&models.OtpRecord{}).
		Where("subject = ? AND code = ? AND used = false AND expires_at > ?", subject, code, now).
		UpdateColumn("used", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteExpired removes records that are past expiry or already consumed
func (r *otpRepository) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ? OR used = true", now).Delete(&models.OtpRecord{})
	return res.RowsAffected, res.Error
}
