package service

import (
	"errors"
	"strings"
	"time"

	"eduportal-backend/internal/apps/course/models"
	"eduportal-backend/internal/apps/course/repository"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// ErrCatalogNotFound is returned when no domain, course or specialization matches the id.
var ErrCatalogNotFound = errors.New("catalog record not found")

// CatalogService defines business logic for the course catalog
type CatalogService interface {
	CreateDomain(req models.CreateDomainRequest) (*models.Domain, error)
	UpdateDomain(id uint, req models.UpdateDomainRequest) (*models.Domain, error)
	ListDomains() ([]models.Domain, error)
	DeleteDomain(id uint) error

	CreateCourse(req models.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(id uint, req models.UpdateCourseRequest) (*models.Course, error)
	GetCourseBySlug(slug string) (*models.Course, error)
	ListCourses(domainID uint) ([]models.Course, error)
	DeleteCourse(id uint) error

	CreateSpecialization(req models.CreateSpecializationRequest) (*models.Specialization, error)
	UpdateSpecialization(id uint, req models.UpdateSpecializationRequest) (*models.Specialization, error)
	ListSpecializations(courseID uint) ([]models.Specialization, error)
	DeleteSpecialization(id uint) error
}

// catalogService implements CatalogService
type catalogService struct {
	repo repository.CatalogRepository
	now  func() time.Time
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(repo repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo, now: time.Now}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCatalogNotFound
	}
	return err
}

func (s *catalogService) CreateDomain(req models.CreateDomainRequest) (*models.Domain, error) {
	d := &models.Domain{
		Name:     strings.TrimSpace(req.Name),
		Slug:     strings.TrimSpace(req.Slug),
		IsActive: true,
	}
	if err := s.repo.CreateDomain(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *catalogService) UpdateDomain(id uint, req models.UpdateDomainRequest) (*models.Domain, error) {
	d, err := s.repo.FindDomainByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		fields["slug"] = strings.TrimSpace(*req.Slug)
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, d.UpdatedAt, s.now)

	if _, err := s.repo.UpdateDomainFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindDomainByID(id)
}

func (s *catalogService) ListDomains() ([]models.Domain, error) {
	return s.repo.ListDomains()
}

func (s *catalogService) DeleteDomain(id uint) error {
	return s.repo.DeleteDomain(id)
}

func (s *catalogService) CreateCourse(req models.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.repo.FindDomainByID(req.DomainID); err != nil {
		return nil, notFoundOr(err)
	}

	c := &models.Course{
		DomainID:    req.DomainID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.TrimSpace(req.Slug),
		Description: req.Description,
		DurationMo:  req.DurationMo,
		IsActive:    true,
	}
	if err := s.repo.CreateCourse(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *catalogService) UpdateCourse(id uint, req models.UpdateCourseRequest) (*models.Course, error) {
	c, err := s.repo.FindCourseByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]interface{}{}
	if req.DomainID != nil {
		fields["domain_id"] = *req.DomainID
	}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		fields["slug"] = strings.TrimSpace(*req.Slug)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DurationMo != nil {
		fields["duration_months"] = *req.DurationMo
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, c.UpdatedAt, s.now)

	if _, err := s.repo.UpdateCourseFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindCourseByID(id)
}

func (s *catalogService) GetCourseBySlug(slug string) (*models.Course, error) {
	c, err := s.repo.FindCourseBySlug(slug)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (s *catalogService) ListCourses(domainID uint) ([]models.Course, error) {
	return s.repo.ListCourses(domainID)
}

func (s *catalogService) DeleteCourse(id uint) error {
	return s.repo.DeleteCourse(id)
}

func (s *catalogService) CreateSpecialization(req models.CreateSpecializationRequest) (*models.Specialization, error) {
	if _, err := s.repo.FindCourseByID(req.CourseID); err != nil {
		return nil, notFoundOr(err)
	}

	sp := &models.Specialization{
		CourseID:    req.CourseID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        strings.TrimSpace(req.Slug),
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateSpecialization(sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *catalogService) UpdateSpecialization(id uint, req models.UpdateSpecializationRequest) (*models.Specialization, error) {
	sp, err := s.repo.FindSpecializationByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]interface{}{}
	if req.CourseID != nil {
		fields["course_id"] = *req.CourseID
	}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		fields["slug"] = strings.TrimSpace(*req.Slug)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, sp.UpdatedAt, s.now)

	if _, err := s.repo.UpdateSpecializationFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindSpecializationByID(id)
}

func (s *catalogService) ListSpecializations(courseID uint) ([]models.Specialization, error) {
	return s.repo.ListSpecializations(courseID)
}

func (s *catalogService) DeleteSpecialization(id uint) error {
	return s.repo.DeleteSpecialization(id)
}
