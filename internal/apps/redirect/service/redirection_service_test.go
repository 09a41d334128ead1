package service

import (
	"testing"
	"time"

	"eduportal-backend/internal/apps/redirect/models"
	"eduportal-backend/internal/common/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRedirectionRepo is an in-memory RedirectionRepository
type fakeRedirectionRepo struct {
	nextID  uint
	records map[uint]*models.Redirection
}

func newFakeRedirectionRepo() *fakeRedirectionRepo {
	return &fakeRedirectionRepo{nextID: 1, records: map[uint]*models.Redirection{}}
}

func (f *fakeRedirectionRepo) Create(r *models.Redirection) error {
	r.ID = f.nextID
	f.nextID++
	cp := *r
	f.records[r.ID] = &cp
	return nil
}

func (f *fakeRedirectionRepo) FindByID(id uint) (*models.Redirection, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRedirectionRepo) FindBySourcePath(path string) (*models.Redirection, error) {
	for _, r := range f.records {
		if r.SourcePath == path {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRedirectionRepo) ListAll() ([]models.Redirection, error) {
	out := make([]models.Redirection, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRedirectionRepo) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	r, ok := f.records[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "source_path":
			r.SourcePath = v.(string)
		case "target_path":
			r.TargetPath = v.(string)
		case "status_code":
			r.StatusCode = v.(int)
		case persistence.AuditColumn:
			r.UpdatedAt = v.(time.Time)
		}
	}
	return 1, nil
}

func (f *fakeRedirectionRepo) Delete(id uint) error {
	delete(f.records, id)
	return nil
}

func TestRedirectionService_Create(t *testing.T) {
	svc := &redirectionService{repo: newFakeRedirectionRepo(), now: time.Now}

	t.Run("normalizes paths and defaults status", func(t *testing.T) {
		rd, err := svc.Create(models.CreateRedirectionRequest{
			SourcePath: "old-course",
			TargetPath: " /new-course ",
			StatusCode: 307,
		})
		require.NoError(t, err)
		assert.Equal(t, "/old-course", rd.SourcePath)
		assert.Equal(t, "/new-course", rd.TargetPath)
		assert.Equal(t, 301, rd.StatusCode)
	})

	t.Run("accepts temporary redirect", func(t *testing.T) {
		rd, err := svc.Create(models.CreateRedirectionRequest{
			SourcePath: "/promo",
			TargetPath: "/sale",
			StatusCode: 302,
		})
		require.NoError(t, err)
		assert.Equal(t, 302, rd.StatusCode)
	})

	t.Run("rejects identical source and target", func(t *testing.T) {
		_, err := svc.Create(models.CreateRedirectionRequest{
			SourcePath: "loop",
			TargetPath: "/loop",
		})
		assert.Error(t, err)
	})
}

func TestRedirectionService_Resolve(t *testing.T) {
	repo := newFakeRedirectionRepo()
	svc := &redirectionService{repo: repo, now: time.Now}

	_, err := svc.Create(models.CreateRedirectionRequest{
		SourcePath: "/mba-old",
		TargetPath: "/courses/mba",
	})
	require.NoError(t, err)

	t.Run("resolves with or without leading slash", func(t *testing.T) {
		rd, err := svc.Resolve("mba-old")
		require.NoError(t, err)
		assert.Equal(t, "/courses/mba", rd.TargetPath)
	})

	t.Run("unknown path", func(t *testing.T) {
		_, err := svc.Resolve("/nope")
		assert.ErrorIs(t, err, ErrRedirectionNotFound)
	})
}

func TestRedirectionService_UpdateAuditFlag(t *testing.T) {
	repo := newFakeRedirectionRepo()
	current := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := &redirectionService{repo: repo, now: func() time.Time { return current }}

	rd, err := svc.Create(models.CreateRedirectionRequest{
		SourcePath: "/a",
		TargetPath: "/b",
	})
	require.NoError(t, err)
	repo.records[rd.ID].UpdatedAt = current

	target := "/c"

	t.Run("flag set bumps the audit timestamp", func(t *testing.T) {
		current = current.Add(time.Hour)
		out, err := svc.Update(rd.ID, models.UpdateRedirectionRequest{
			TargetPath:   &target,
			SaveWithDate: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "/c", out.TargetPath)
		assert.Equal(t, current, out.UpdatedAt)
	})

	t.Run("flag omitted keeps the prior timestamp", func(t *testing.T) {
		prior := repo.records[rd.ID].UpdatedAt
		current = current.Add(time.Hour)
		source := "/a2"
		out, err := svc.Update(rd.ID, models.UpdateRedirectionRequest{SourcePath: &source})
		require.NoError(t, err)
		assert.Equal(t, prior, out.UpdatedAt)
	})

	t.Run("invalid status code is ignored", func(t *testing.T) {
		bad := 418
		_, err := svc.Update(rd.ID, models.UpdateRedirectionRequest{StatusCode: &bad})
		assert.ErrorIs(t, err, persistence.ErrNothingToUpdate)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(999, models.UpdateRedirectionRequest{TargetPath: &target})
		assert.ErrorIs(t, err, ErrRedirectionNotFound)
	})
}
