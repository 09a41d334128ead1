package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"eduportal-backend/internal/apps/otp/models"
	"eduportal-backend/internal/apps/otp/repository"
	"eduportal-backend/pkg/mail"
)

// OTPTTL is how long an issued passcode stays verifiable.
const OTPTTL = 5 * time.Minute

// ErrDeliveryFailed wraps a mailer failure during issuance. The record is
// already persisted and verifiable when this is returned; callers decide
// whether to prompt the user to retry issuance.
var ErrDeliveryFailed = errors.New("otp email delivery failed")

// OTPService defines business logic for the expiring single-use OTP flow
type OTPService interface {
	Issue(subject string) (string, error)
	Verify(subject, code string) (bool, error)
	SweepExpired() (int64, error)
}

// otpService implements OTPService
type otpService struct {
	repo   repository.OTPRepository
	mailer mail.Sender
	now    func() time.Time
}

// NewOTPService creates a new instance of OTPService. The clock is injected
// so expiry behavior is testable.
func NewOTPService(repo repository.OTPRepository, mailer mail.Sender, now func() time.Time) OTPService {
	if now == nil {
		now = time.Now
	}
	return &otpService{repo: repo, mailer: mailer, now: now}
}

// generateCode returns a uniformly random 6-digit decimal string in
// [100000, 999999], so the leading digit is never zero.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// Issue persists a fresh passcode for the subject, invalidating any previous
// ones, then attempts email delivery. The returned code is for internal
// visibility only; the email channel is the production distribution path.
func (s *otpService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	record := &models.OtpRecord{
		Subject:   subject,
		Code:      code,
		ExpiresAt: s.now().Add(OTPTTL),
		Used:      false,
	}
	if err := s.repo.Replace(record); err != nil {
		return "", err
	}

	htmlBody := fmt.Sprintf("<p>Your verification code is <b>%s</b>. It expires in 5 minutes.</p>", code)
	textBody := fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code)
	if err := s.mailer.Send(subject, "Your verification code", htmlBody, textBody); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return code, nil
}

// Verify consumes the matching valid passcode. A second call with the same
// pair returns false; "no match" is a normal negative result, never an error.
func (s *otpService) Verify(subject, code string) (bool, error) {
	if subject == "" || code == "" {
		return false, nil
	}
	return s.repo.Consume(subject, code, s.now())
}

// VerifyCode implements models.OtpVerifier
func (s *otpService) VerifyCode(subject, code string) (bool, error) {
	return s.Verify(subject, code)
}

// SweepExpired removes expired and consumed records, returning the count
func (s *otpService) SweepExpired() (int64, error) {
	return s.repo.DeleteExpired(s.now())
}
