package service

import (
	"strings"
	"testing"

	"eduportal-backend/internal/apps/lead/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLeadRepo struct {
	leads map[uuid.UUID]*models.WebsiteLead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[uuid.UUID]*models.WebsiteLead)}
}

func (f *fakeLeadRepo) Create(lead *models.WebsiteLead) error {
	lead.ID = uuid.New()
	f.leads[lead.ID] = lead
	return nil
}

func (f *fakeLeadRepo) FindByID(id uuid.UUID) (*models.WebsiteLead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return lead, nil
}

func (f *fakeLeadRepo) FindByContact(phone, email string) (*models.WebsiteLead, error) {
	for _, lead := range f.leads {
		if phone != "" && lead.Phone != nil && *lead.Phone == phone {
			return lead, nil
		}
		if email != "" && lead.Email != nil && *lead.Email == email {
			return lead, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeadRepo) ExistsWithOTP(id uuid.UUID, code string) (bool, error) {
	lead, ok := f.leads[id]
	return ok && lead.OTP == code, nil
}

func (f *fakeLeadRepo) Update(lead *models.WebsiteLead) error {
	f.leads[lead.ID] = lead
	return nil
}

func (f *fakeLeadRepo) FindAllPaginated(page, pageSize int) ([]models.WebsiteLead, int64, error) {
	var out []models.WebsiteLead
	for _, lead := range f.leads {
		out = append(out, *lead)
	}
	return out, int64(len(out)), nil
}

func strPtr(s string) *string { return &s }

func TestLeadService_CreateLead(t *testing.T) {
	t.Run("defaults the otp column when none supplied", func(t *testing.T) {
		svc := NewLeadService(newFakeLeadRepo())
		lead, err := svc.CreateLead(models.CreateLeadRequest{Name: "Asha", Email: strPtr("asha@x.com")})
		require.NoError(t, err)
		assert.Equal(t, "123456", lead.OTP)

		ok, err := svc.VerifyLeadOTP(lead.ID, "123456")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("keeps a valid caller-supplied otp", func(t *testing.T) {
		svc := NewLeadService(newFakeLeadRepo())
		lead, err := svc.CreateLead(models.CreateLeadRequest{
			Name:  "Asha",
			Phone: strPtr("9876543210"),
			OTP:   strPtr("482913"),
		})
		require.NoError(t, err)
		assert.Equal(t, "482913", lead.OTP)
	})

	t.Run("invalid otp forms fall back to the default", func(t *testing.T) {
		for _, bad := range []string{"", "12345", "1234567", "12a456", "abcdef"} {
			svc := NewLeadService(newFakeLeadRepo())
			lead, err := svc.CreateLead(models.CreateLeadRequest{
				Name:  "Asha",
				Phone: strPtr("9876543210"),
				OTP:   &bad,
			})
			require.NoError(t, err)
			assert.Equal(t, "123456", lead.OTP, "otp %q should be rejected", bad)
		}
	})

	t.Run("requires email or phone", func(t *testing.T) {
		svc := NewLeadService(newFakeLeadRepo())
		_, err := svc.CreateLead(models.CreateLeadRequest{Name: "Asha"})
		assert.Error(t, err)

		_, err = svc.CreateLead(models.CreateLeadRequest{Name: "Asha", Email: strPtr("  ")})
		assert.Error(t, err)
	})
}

func TestLeadService_VerifyLeadOTP(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo)
	lead, err := svc.CreateLead(models.CreateLeadRequest{Name: "Asha", Email: strPtr("asha@x.com")})
	require.NoError(t, err)

	t.Run("mismatched code is false, not an error", func(t *testing.T) {
		ok, err := svc.VerifyLeadOTP(lead.ID, "000000")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown lead id is false", func(t *testing.T) {
		ok, err := svc.VerifyLeadOTP(uuid.New(), "123456")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("the static code stays verifiable repeatedly", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			ok, err := svc.VerifyLeadOTP(lead.ID, "123456")
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})
}

func TestLeadService_UpdateByContact(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo)
	_, err := svc.CreateLead(models.CreateLeadRequest{
		Name:  "Asha",
		Phone: strPtr("9876543210"),
	})
	require.NoError(t, err)

	t.Run("locates by phone and applies partial update", func(t *testing.T) {
		updated, err := svc.UpdateByContact(models.UpdateLeadByContactRequest{
			Phone:  strPtr("9876543210"),
			Course: strPtr("MBA"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Course)
		assert.Equal(t, "MBA", *updated.Course)
		assert.Equal(t, "Asha", updated.Name)
	})

	t.Run("unknown contact yields not found", func(t *testing.T) {
		_, err := svc.UpdateByContact(models.UpdateLeadByContactRequest{
			Email: strPtr("nobody@x.com"),
		})
		assert.ErrorIs(t, err, ErrLeadNotFound)
	})

	t.Run("requires a locator", func(t *testing.T) {
		_, err := svc.UpdateByContact(models.UpdateLeadByContactRequest{Name: strPtr("X")})
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "required"))
	})
}
