package service

import (
	"testing"

	"eduportal-backend/internal/apps/user/models"
	"eduportal-backend/pkg/secure"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository
type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListAll() ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func TestUserService_Register(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	t.Run("normalizes email and hashes password", func(t *testing.T) {
		u, err := svc.Register(models.RegisterRequest{
			Name:     "  Asha K ",
			Email:    "Asha@Example.COM",
			Password: "long-enough-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "Asha K", u.Name)
		assert.Equal(t, "asha@example.com", u.Email)
		assert.NotEqual(t, "long-enough-password", u.PasswordHash)
		assert.True(t, secure.CheckPassword(u.PasswordHash, "long-enough-password"))
	})

	t.Run("defaults role to editor", func(t *testing.T) {
		u, err := svc.Register(models.RegisterRequest{
			Name:     "B",
			Email:    "b@example.com",
			Password: "another-password",
		})
		require.NoError(t, err)
		assert.Equal(t, "editor", u.Role)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		resp, err := svc.Login(models.LoginRequest{
			Email:    "ASHA@example.com",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "asha@example.com", resp.User.Email)

		claims, err := secure.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(models.LoginRequest{
			Email:    "asha@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(models.LoginRequest{
			Email:    "nobody@example.com",
			Password: "irrelevant",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_GetByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Register(models.RegisterRequest{
		Name:     "C",
		Email:    "c@example.com",
		Password: "password-here",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
