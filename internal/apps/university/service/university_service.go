package service

import (
	"errors"
	"strings"
	"time"

	"eduportal-backend/internal/apps/university/models"
	"eduportal-backend/internal/apps/university/repository"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// ErrUniversityNotFound is returned when no university or type matches the id.
var ErrUniversityNotFound = errors.New("university not found")

// UniversityService defines business logic for university listings
type UniversityService interface {
	Create(req models.CreateUniversityRequest) (*models.University, error)
	Update(id uint, req models.UpdateUniversityRequest) (*models.University, error)
	GetBySlug(slug string) (*models.University, error)
	List(typeID uint, page, pageSize int) ([]models.University, int64, error)
	Delete(id uint) error

	CreateType(req models.CreateUniversityTypeRequest) (*models.UniversityType, error)
	UpdateType(id uint, req models.UpdateUniversityTypeRequest) (*models.UniversityType, error)
	ListTypes() ([]models.UniversityType, error)
	DeleteType(id uint) error
}

// universityService implements UniversityService
type universityService struct {
	repo repository.UniversityRepository
	now  func() time.Time
}

// NewUniversityService creates a new instance of UniversityService
func NewUniversityService(repo repository.UniversityRepository) UniversityService {
	return &universityService{repo: repo, now: time.Now}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUniversityNotFound
	}
	return err
}

func (s *universityService) Create(req models.CreateUniversityRequest) (*models.University, error) {
	if req.TypeID != nil {
		if _, err := s.repo.FindTypeByID(*req.TypeID); err != nil {
			return nil, notFoundOr(err)
		}
	}

	u := &models.University{
		TypeID:   req.TypeID,
		Name:     strings.TrimSpace(req.Name),
		Slug:     strings.TrimSpace(req.Slug),
		Location: req.Location,
		Website:  req.Website,
		LogoURL:  req.LogoURL,
		About:    req.About,
		IsActive: true,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *universityService) Update(id uint, req models.UpdateUniversityRequest) (*models.University, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]interface{}{}
	if req.TypeID != nil {
		fields["type_id"] = *req.TypeID
	}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil {
		fields["slug"] = strings.TrimSpace(*req.Slug)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.LogoURL != nil {
		fields["logo_url"] = *req.LogoURL
	}
	if req.About != nil {
		fields["about"] = *req.About
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, u.UpdatedAt, s.now)

	if _, err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *universityService) GetBySlug(slug string) (*models.University, error) {
	u, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return u, nil
}

func (s *universityService) List(typeID uint, page, pageSize int) ([]models.University, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.FindAllPaginated(typeID, page, pageSize)
}

func (s *universityService) Delete(id uint) error {
	return s.repo.Delete(id)
}

func (s *universityService) CreateType(req models.CreateUniversityTypeRequest) (*models.UniversityType, error) {
	t := &models.UniversityType{Name: strings.TrimSpace(req.Name)}
	if err := s.repo.CreateType(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *universityService) UpdateType(id uint, req models.UpdateUniversityTypeRequest) (*models.UniversityType, error) {
	t, err := s.repo.FindTypeByID(id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, t.UpdatedAt, s.now)

	if _, err := s.repo.UpdateTypeFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindTypeByID(id)
}

func (s *universityService) ListTypes() ([]models.UniversityType, error) {
	return s.repo.ListTypes()
}

func (s *universityService) DeleteType(id uint) error {
	return s.repo.DeleteType(id)
}
