package service

import (
	"errors"
	"strings"
	"time"

	"eduportal-backend/internal/apps/mentor/models"
	"eduportal-backend/internal/apps/mentor/repository"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// ErrMentorNotFound is returned when no mentor matches the id.
var ErrMentorNotFound = errors.New("mentor not found")

// MentorService defines business logic for mentors
type MentorService interface {
	Create(req models.CreateMentorRequest) (*models.Mentor, error)
	Update(id uint, req models.UpdateMentorRequest) (*models.Mentor, error)
	ListActive() ([]models.Mentor, error)
	ListAll() ([]models.Mentor, error)
	Delete(id uint) error
}

// mentorService implements MentorService
type mentorService struct {
	repo repository.MentorRepository
	now  func() time.Time
}

// NewMentorService creates a new instance of MentorService
func NewMentorService(repo repository.MentorRepository) MentorService {
	return &mentorService{repo: repo, now: time.Now}
}

func (s *mentorService) Create(req models.CreateMentorRequest) (*models.Mentor, error) {
	m := &models.Mentor{
		Name:        strings.TrimSpace(req.Name),
		Designation: req.Designation,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
		LinkedinURL: req.LinkedinURL,
		IsActive:    true,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *mentorService) Update(id uint, req models.UpdateMentorRequest) (*models.Mentor, error) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}
	if req.LinkedinURL != nil {
		fields["linkedin_url"] = *req.LinkedinURL
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, m.UpdatedAt, s.now)

	if _, err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *mentorService) ListActive() ([]models.Mentor, error) {
	return s.repo.ListActive()
}

func (s *mentorService) ListAll() ([]models.Mentor, error) {
	return s.repo.ListAll()
}

func (s *mentorService) Delete(id uint) error {
	return s.repo.Delete(id)
}
