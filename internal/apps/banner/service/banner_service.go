package service

import (
	"eduportal-backend/internal/apps/banner/models"
	"eduportal-backend/internal/apps/banner/repository"
)

// BannerService defines business logic for course banners
type BannerService interface {
	ListByCourse(courseID uint) ([]models.CourseBanner, error)
	ReplaceForCourse(courseID uint, req models.ReplaceBannersRequest) ([]models.CourseBanner, error)
}

// bannerService implements BannerService
type bannerService struct {
	repo repository.BannerRepository
}

// NewBannerService creates a new instance of BannerService
func NewBannerService(repo repository.BannerRepository) BannerService {
	return &bannerService{repo: repo}
}

func (s *bannerService) ListByCourse(courseID uint) ([]models.CourseBanner, error) {
	return s.repo.ListByCourse(courseID)
}

// ReplaceForCourse swaps the whole banner set for a course. An empty list
// clears the course's banners.
func (s *bannerService) ReplaceForCourse(courseID uint, req models.ReplaceBannersRequest) ([]models.CourseBanner, error) {
	banners := make([]models.CourseBanner, 0, len(req.Banners))
	for _, in := range req.Banners {
		banners = append(banners, models.CourseBanner{
			CourseID: courseID,
			Title:    in.Title,
			ImageURL: in.ImageURL,
			LinkURL:  in.LinkURL,
			Priority: in.Priority,
		})
	}

	if err := s.repo.ReplaceForCourse(courseID, banners); err != nil {
		return nil, err
	}
	return s.repo.ListByCourse(courseID)
}
