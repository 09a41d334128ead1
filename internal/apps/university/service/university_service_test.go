package service

import (
	"testing"
	"time"

	"eduportal-backend/internal/apps/university/models"
	"eduportal-backend/internal/common/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUniversityRepo is an in-memory UniversityRepository
type fakeUniversityRepo struct {
	nextID       uint
	universities map[uint]*models.University
	types        map[uint]*models.UniversityType
}

func newFakeUniversityRepo() *fakeUniversityRepo {
	return &fakeUniversityRepo{
		nextID:       1,
		universities: map[uint]*models.University{},
		types:        map[uint]*models.UniversityType{},
	}
}

func (f *fakeUniversityRepo) Create(u *models.University) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.universities[u.ID] = &cp
	return nil
}

func (f *fakeUniversityRepo) FindByID(id uint) (*models.University, error) {
	u, ok := f.universities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUniversityRepo) FindBySlug(slug string) (*models.University, error) {
	for _, u := range f.universities {
		if u.Slug == slug {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUniversityRepo) FindAllPaginated(typeID uint, page, pageSize int) ([]models.University, int64, error) {
	var out []models.University
	for _, u := range f.universities {
		if typeID != 0 && (u.TypeID == nil || *u.TypeID != typeID) {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUniversityRepo) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	u, ok := f.universities[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "slug":
			u.Slug = v.(string)
		case "is_active":
			u.IsActive = v.(bool)
		case persistence.AuditColumn:
			u.UpdatedAt = v.(time.Time)
		}
	}
	return 1, nil
}

func (f *fakeUniversityRepo) Delete(id uint) error {
	delete(f.universities, id)
	return nil
}

func (f *fakeUniversityRepo) CreateType(t *models.UniversityType) error {
	t.ID = f.nextID
	f.nextID++
	cp := *t
	f.types[t.ID] = &cp
	return nil
}

func (f *fakeUniversityRepo) FindTypeByID(id uint) (*models.UniversityType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeUniversityRepo) ListTypes() ([]models.UniversityType, error) {
	out := make([]models.UniversityType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeUniversityRepo) UpdateTypeFields(id uint, fields map[string]interface{}) (int64, error) {
	t, ok := f.types[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			t.Name = v.(string)
		case persistence.AuditColumn:
			t.UpdatedAt = v.(time.Time)
		}
	}
	return 1, nil
}

func (f *fakeUniversityRepo) DeleteType(id uint) error {
	delete(f.types, id)
	return nil
}

func TestUniversityService_Create(t *testing.T) {
	repo := newFakeUniversityRepo()
	svc := NewUniversityService(repo)

	deemed, err := svc.CreateType(models.CreateUniversityTypeRequest{Name: "Deemed"})
	require.NoError(t, err)

	t.Run("with a valid type", func(t *testing.T) {
		u, err := svc.Create(models.CreateUniversityRequest{
			TypeID: &deemed.ID,
			Name:   " Amity University ",
			Slug:   "amity-university",
		})
		require.NoError(t, err)
		assert.Equal(t, "Amity University", u.Name)
		assert.True(t, u.IsActive)
		require.NotNil(t, u.TypeID)
		assert.Equal(t, deemed.ID, *u.TypeID)
	})

	t.Run("without a type", func(t *testing.T) {
		u, err := svc.Create(models.CreateUniversityRequest{
			Name: "IGNOU",
			Slug: "ignou",
		})
		require.NoError(t, err)
		assert.Nil(t, u.TypeID)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		missing := uint(999)
		_, err := svc.Create(models.CreateUniversityRequest{
			TypeID: &missing,
			Name:   "Ghost",
			Slug:   "ghost",
		})
		assert.ErrorIs(t, err, ErrUniversityNotFound)
	})
}

func TestUniversityService_UpdateAuditFlag(t *testing.T) {
	repo := newFakeUniversityRepo()
	current := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	svc := &universityService{repo: repo, now: func() time.Time { return current }}

	u, err := svc.Create(models.CreateUniversityRequest{Name: "NMIMS", Slug: "nmims"})
	require.NoError(t, err)
	repo.universities[u.ID].UpdatedAt = current

	name := "NMIMS Online"

	t.Run("flag set bumps the audit timestamp", func(t *testing.T) {
		current = current.Add(time.Hour)
		out, err := svc.Update(u.ID, models.UpdateUniversityRequest{Name: &name, SaveWithDate: true})
		require.NoError(t, err)
		assert.Equal(t, "NMIMS Online", out.Name)
		assert.Equal(t, current, out.UpdatedAt)
	})

	t.Run("flag omitted keeps the prior timestamp", func(t *testing.T) {
		prior := repo.universities[u.ID].UpdatedAt
		current = current.Add(time.Hour)
		inactive := false
		out, err := svc.Update(u.ID, models.UpdateUniversityRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, out.IsActive)
		assert.Equal(t, prior, out.UpdatedAt)
	})

	t.Run("empty update", func(t *testing.T) {
		_, err := svc.Update(u.ID, models.UpdateUniversityRequest{})
		assert.ErrorIs(t, err, persistence.ErrNothingToUpdate)
	})
}

func TestUniversityService_ListByType(t *testing.T) {
	repo := newFakeUniversityRepo()
	svc := NewUniversityService(repo)

	state, err := svc.CreateType(models.CreateUniversityTypeRequest{Name: "State"})
	require.NoError(t, err)

	_, err = svc.Create(models.CreateUniversityRequest{TypeID: &state.ID, Name: "A", Slug: "a"})
	require.NoError(t, err)
	_, err = svc.Create(models.CreateUniversityRequest{Name: "B", Slug: "b"})
	require.NoError(t, err)

	filtered, total, err := svc.List(state.ID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Slug)

	all, total, err := svc.List(0, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}
