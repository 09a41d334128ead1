package service

import (
	"errors"
	"strings"

	"eduportal-backend/internal/apps/lead/models"
	"eduportal-backend/internal/apps/lead/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrLeadNotFound is returned when no lead matches the given id or contact details.
var ErrLeadNotFound = errors.New("lead not found")

// LeadService defines business logic for website leads
type LeadService interface {
	CreateLead(req models.CreateLeadRequest) (*models.WebsiteLead, error)
	GetLeadByID(id uuid.UUID) (*models.WebsiteLead, error)
	UpdateByContact(req models.UpdateLeadByContactRequest) (*models.WebsiteLead, error)
	VerifyLeadOTP(id uuid.UUID, code string) (bool, error)
	ListLeads(page, pageSize int) ([]models.WebsiteLead, int64, error)
}

// leadService implements LeadService
type leadService struct {
	repo repository.LeadRepository
}

// NewLeadService creates a new instance of LeadService
func NewLeadService(repo repository.LeadRepository) LeadService {
	return &leadService{repo: repo}
}

// isSixDigits reports whether s is exactly six ASCII digits
func isSixDigits(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validateContactRule ensures at least one of email or phone is present
func validateContactRule(email, phone *string) error {
	emailPresent := email != nil && strings.TrimSpace(*email) != ""
	phonePresent := phone != nil && strings.TrimSpace(*phone) != ""
	if !emailPresent && !phonePresent {
		return errors.New("either email or phone is required")
	}
	return nil
}

// CreateLead captures a new website lead. A caller-supplied otp is kept only
// when it is exactly six digits; anything else falls back to the default.
func (s *leadService) CreateLead(req models.CreateLeadRequest) (*models.WebsiteLead, error) {
	if err := validateContactRule(req.Email, req.Phone); err != nil {
		return nil, err
	}

	otp := models.DefaultLeadOTP
	if req.OTP != nil && isSixDigits(*req.OTP) {
		otp = *req.OTP
	}

	lead := &models.WebsiteLead{
		Name:           strings.TrimSpace(req.Name),
		Email:          req.Email,
		Phone:          req.Phone,
		Course:         req.Course,
		Specialization: req.Specialization,
		Location:       req.Location,
		Source:         req.Source,
		SubSource:      req.SubSource,
		UTMSource:      req.UTMSource,
		UTMMedium:      req.UTMMedium,
		UTMCampaign:    req.UTMCampaign,
		OTP:            otp,
	}
	if err := s.repo.Create(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// GetLeadByID retrieves a lead by ID
func (s *leadService) GetLeadByID(id uuid.UUID) (*models.WebsiteLead, error) {
	lead, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

// UpdateByContact locates the lead by phone-or-email and applies the partial update
func (s *leadService) UpdateByContact(req models.UpdateLeadByContactRequest) (*models.WebsiteLead, error) {
	var phone, email string
	if req.Phone != nil {
		phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		email = strings.TrimSpace(*req.Email)
	}
	if phone == "" && email == "" {
		return nil, errors.New("phone or email is required to locate the lead")
	}

	lead, err := s.repo.FindByContact(phone, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		lead.Name = strings.TrimSpace(*req.Name)
	}
	if req.Course != nil {
		lead.Course = req.Course
	}
	if req.Specialization != nil {
		lead.Specialization = req.Specialization
	}
	if req.Location != nil {
		lead.Location = req.Location
	}

	if err := s.repo.Update(lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// VerifyLeadOTP is the simplified static check: true iff a lead with this id
// stores exactly this code. No expiry, no consumption.
func (s *leadService) VerifyLeadOTP(id uuid.UUID, code string) (bool, error) {
	if code == "" {
		return false, nil
	}
	return s.repo.ExistsWithOTP(id, code)
}

// VerifyCode implements the shared verifier capability; subject is a lead id string.
func (s *leadService) VerifyCode(subject, code string) (bool, error) {
	id, err := uuid.Parse(subject)
	if err != nil {
		return false, nil
	}
	return s.VerifyLeadOTP(id, code)
}

// ListLeads retrieves leads with pagination
func (s *leadService) ListLeads(page, pageSize int) ([]models.WebsiteLead, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.FindAllPaginated(page, pageSize)
}
