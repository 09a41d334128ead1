package service

import (
	"errors"
	"strings"
	"time"

	"eduportal-backend/internal/apps/blog/models"
	"eduportal-backend/internal/apps/blog/repository"
	"eduportal-backend/internal/common/persistence"

	"gorm.io/gorm"
)

// ErrBlogNotFound is returned when no blog matches the id or slug.
var ErrBlogNotFound = errors.New("blog not found")

// BlogService defines business logic for blogs
type BlogService interface {
	Create(req models.CreateBlogRequest) (*models.Blog, error)
	Update(id uint, req models.UpdateBlogRequest) (*models.Blog, error)
	GetBySlug(slug string) (*models.Blog, error)
	List(publishedOnly bool, page, pageSize int) ([]models.Blog, int64, error)
	Delete(id uint) error
}

// blogService implements BlogService
type blogService struct {
	repo repository.BlogRepository
	now  func() time.Time
}

// NewBlogService creates a new instance of BlogService
func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{repo: repo, now: time.Now}
}

func (s *blogService) Create(req models.CreateBlogRequest) (*models.Blog, error) {
	b := &models.Blog{
		Title:    strings.TrimSpace(req.Title),
		Slug:     strings.TrimSpace(req.Slug),
		Author:   req.Author,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		CoverURL: req.CoverURL,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *blogService) Update(id uint, req models.UpdateBlogRequest) (*models.Blog, error) {
	b, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		fields["slug"] = strings.TrimSpace(*req.Slug)
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.CoverURL != nil {
		fields["cover_url"] = *req.CoverURL
	}
	if req.Published != nil {
		fields["published"] = *req.Published
		if *req.Published && b.PublishedAt == nil {
			fields["published_at"] = s.now()
		}
	}

	withDate := persistence.ParseSaveWithDate(req.SaveWithDate)
	if len(fields) == 0 && !withDate {
		return nil, persistence.ErrNothingToUpdate
	}
	persistence.ApplyAuditPolicy(fields, withDate, b.UpdatedAt, s.now)

	if _, err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.repo.FindByID(id)
}

func (s *blogService) GetBySlug(slug string) (*models.Blog, error) {
	b, err := s.repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *blogService) List(publishedOnly bool, page, pageSize int) ([]models.Blog, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.FindAllPaginated(publishedOnly, page, pageSize)
}

func (s *blogService) Delete(id uint) error {
	return s.repo.Delete(id)
}
