package service

import (
	"testing"
	"time"

	"eduportal-backend/internal/apps/course/models"
	"eduportal-backend/internal/common/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeCatalogRepo applies field maps to in-memory records the same way
// UpdateColumns does, including the explicit updated_at assignment.
type fakeCatalogRepo struct {
	domains map[uint]*models.Domain
	courses map[uint]*models.Course
	specs   map[uint]*models.Specialization
	nextID  uint
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		domains: map[uint]*models.Domain{},
		courses: map[uint]*models.Course{},
		specs:   map[uint]*models.Specialization{},
	}
}

func (f *fakeCatalogRepo) id() uint { f.nextID++; return f.nextID }

func (f *fakeCatalogRepo) CreateDomain(d *models.Domain) error {
	d.ID = f.id()
	d.UpdatedAt = time.Now()
	f.domains[d.ID] = d
	return nil
}

func (f *fakeCatalogRepo) FindDomainByID(id uint) (*models.Domain, error) {
	d, ok := f.domains[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *fakeCatalogRepo) ListDomains() ([]models.Domain, error) { return nil, nil }

func (f *fakeCatalogRepo) UpdateDomainFields(id uint, fields map[string]interface{}) (int64, error) {
	d, ok := f.domains[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["name"]; ok {
		d.Name = v.(string)
	}
	if v, ok := fields["slug"]; ok {
		d.Slug = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		d.IsActive = v.(bool)
	}
	if v, ok := fields[persistence.AuditColumn]; ok {
		d.UpdatedAt = v.(time.Time)
	}
	return 1, nil
}

func (f *fakeCatalogRepo) DeleteDomain(id uint) error { delete(f.domains, id); return nil }

func (f *fakeCatalogRepo) CreateCourse(c *models.Course) error {
	c.ID = f.id()
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCatalogRepo) FindCourseByID(id uint) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCatalogRepo) FindCourseBySlug(slug string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.Slug == slug {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepo) ListCourses(domainID uint) ([]models.Course, error) { return nil, nil }

func (f *fakeCatalogRepo) UpdateCourseFields(id uint, fields map[string]interface{}) (int64, error) {
	c, ok := f.courses[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["name"]; ok {
		c.Name = v.(string)
	}
	if v, ok := fields[persistence.AuditColumn]; ok {
		c.UpdatedAt = v.(time.Time)
	}
	return 1, nil
}

func (f *fakeCatalogRepo) DeleteCourse(id uint) error { delete(f.courses, id); return nil }

func (f *fakeCatalogRepo) CreateSpecialization(sp *models.Specialization) error {
	sp.ID = f.id()
	f.specs[sp.ID] = sp
	return nil
}

func (f *fakeCatalogRepo) FindSpecializationByID(id uint) (*models.Specialization, error) {
	sp, ok := f.specs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *sp
	return &copied, nil
}

func (f *fakeCatalogRepo) ListSpecializations(courseID uint) ([]models.Specialization, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) UpdateSpecializationFields(id uint, fields map[string]interface{}) (int64, error) {
	return 1, nil
}

func (f *fakeCatalogRepo) DeleteSpecialization(id uint) error { return nil }

func strPtr(s string) *string { return &s }

func TestCatalogService_UpdateDomainAuditFlag(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewCatalogService(repo).(*catalogService)

	created, err := svc.CreateDomain(models.CreateDomainRequest{Name: "Management", Slug: "management"})
	require.NoError(t, err)
	prev := repo.domains[created.ID].UpdatedAt

	current := prev.Add(48 * time.Hour)
	svc.now = func() time.Time { return current }

	t.Run("flag true bumps name and timestamp", func(t *testing.T) {
		updated, err := svc.UpdateDomain(created.ID, models.UpdateDomainRequest{
			Name:         strPtr("Business"),
			SaveWithDate: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Business", updated.Name)
		assert.Equal(t, current, updated.UpdatedAt)
	})

	t.Run("flag false changes the field but keeps the prior timestamp", func(t *testing.T) {
		before := repo.domains[created.ID].UpdatedAt
		updated, err := svc.UpdateDomain(created.ID, models.UpdateDomainRequest{
			Name:         strPtr("Commerce"),
			SaveWithDate: false,
		})
		require.NoError(t, err)
		assert.Equal(t, "Commerce", updated.Name)
		assert.Equal(t, before, updated.UpdatedAt)
	})

	t.Run("string flag from a form is coerced", func(t *testing.T) {
		later := current.Add(time.Hour)
		svc.now = func() time.Time { return later }
		updated, err := svc.UpdateDomain(created.ID, models.UpdateDomainRequest{
			Name:         strPtr("Trade"),
			SaveWithDate: "yes",
		})
		require.NoError(t, err)
		assert.Equal(t, later, updated.UpdatedAt)
	})

	t.Run("no fields and no flag is a no-op", func(t *testing.T) {
		_, err := svc.UpdateDomain(created.ID, models.UpdateDomainRequest{})
		assert.ErrorIs(t, err, persistence.ErrNothingToUpdate)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		_, err := svc.UpdateDomain(9999, models.UpdateDomainRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, ErrCatalogNotFound)
	})
}

func TestCatalogService_CourseRequiresDomain(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := NewCatalogService(repo)

	_, err := svc.CreateCourse(models.CreateCourseRequest{DomainID: 42, Name: "MBA", Slug: "mba"})
	assert.ErrorIs(t, err, ErrCatalogNotFound)

	d, err := svc.CreateDomain(models.CreateDomainRequest{Name: "Management", Slug: "management"})
	require.NoError(t, err)

	course, err := svc.CreateCourse(models.CreateCourseRequest{DomainID: d.ID, Name: "MBA", Slug: "mba"})
	require.NoError(t, err)
	assert.True(t, course.IsActive)

	found, err := svc.GetCourseBySlug("mba")
	require.NoError(t, err)
	assert.Equal(t, course.ID, found.ID)
}
