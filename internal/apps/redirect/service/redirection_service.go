package service

import (
	"errors"
	"strings"
	"time"

	"eduportal-backend/internal/apps/redirect/models"
	"eduportal-backend/internal/apps/redirect/repository"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// ErrRedirectionNotFound is returned when no redirection matches.
var ErrRedirectionNotFound = errors.New("redirection not found")

// RedirectionService defines business logic for URL redirections
type RedirectionService interface {
	Create(req models.CreateRedirectionRequest) (*models.Redirection, error)
	Update(id uint, req models.UpdateRedirectionRequest) (*models.Redirection, error)
	Resolve(sourcePath string) (*models.Redirection, error)
	ListAll() ([]models.Redirection, error)
	Delete(id uint) error
}

// redirectionService implements RedirectionService
type redirectionService struct {
	repo repository.RedirectionRepository
	now  func() time.Time
}

// NewRedirectionService creates a new instance of RedirectionService
func NewRedirectionService(repo repository.RedirectionRepository) RedirectionService {
	return &redirectionService{repo: repo, now: time.Now}
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (s *redirectionService) Create(req models.CreateRedirectionRequest) (*models.Redirection, error) {
	statusCode := req.StatusCode
	if statusCode != 301 && statusCode != 302 {
		statusCode = 301
	}

	rd := &models.Redirection{
		SourcePath: normalizePath(req.SourcePath),
		TargetPath: normalizePath(req.TargetPath),
		StatusCode: statusCode,
	}
	if rd.SourcePath == rd.TargetPath {
		return nil, errors.New("source and target paths must differ")
	}
	if err := s.repo.Create(rd); err != nil {
		return nil, err
	}
	return rd, nil
}

func (s *redirectionService) Update(id uint, req models.UpdateRedirectionRequest) (*models.Redirection, error) {
	rd, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRedirectionNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.SourcePath != nil {
		fields["source_path"] = normalizePath(*req.SourcePath)
	}
	if req.TargetPath != nil {
		fields["target_path"] = normalizePath(*req.TargetPath)
	}
	if req.StatusCode != nil && (*req.StatusCode == 301 || *req.StatusCode == 302) {
		fields["status_code"] = *req.StatusCode
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, rd.UpdatedAt, s.now)

	if _, err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *redirectionService) Resolve(sourcePath string) (*models.Redirection, error) {
	rd, err := s.repo.FindBySourcePath(normalizePath(sourcePath))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRedirectionNotFound
		}
		return nil, err
	}
	return rd, nil
}

func (s *redirectionService) ListAll() ([]models.Redirection, error) {
	return s.repo.ListAll()
}

func (s *redirectionService) Delete(id uint) error {
	return s.repo.Delete(id)
}
