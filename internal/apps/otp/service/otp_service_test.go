package service

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"eduportal-backend/internal/apps/otp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOTPRepo is an in-memory OTPRepository with the same conditional-update
// semantics as the SQL implementation.
type fakeOTPRepo struct {
	records []*models.OtpRecord
}

func (f *fakeOTPRepo) Replace(record *models.OtpRecord) error {
	kept := f.records[:0]
	for _, r := range f.records {
		if r.Subject != record.Subject {
			kept = append(kept, r)
		}
	}
	f.records = append(kept, record)
	return nil
}

func (f *fakeOTPRepo) Consume(subject, code string, now time.Time) (bool, error) {
	for _, r := range f.records {
		if r.Subject == subject && r.Code == code && !r.Used && r.ExpiresAt.After(now) {
			r.Used = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOTPRepo) DeleteExpired(now time.Time) (int64, error) {
	var removed int64
	kept := f.records[:0]
	for _, r := range f.records {
		if !r.ExpiresAt.After(now) || r.Used {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return removed, nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(to, subject, htmlBody, textBody string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func newTestService(repo *fakeOTPRepo, mailer *fakeMailer, clock *time.Time) OTPService {
	return NewOTPService(repo, mailer, func() time.Time { return *clock })
}

func TestOTPService_Issue(t *testing.T) {
	t.Run("generates a 6-digit code with nonzero leading digit", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		mailer := &fakeMailer{}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, mailer, &clock)

		for i := 0; i < 50; i++ {
			code, err := svc.Issue("a@x.com")
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(`^[1-9][0-9]{5}$`), code)
		}
	})

	t.Run("sends the code to the subject's email", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		mailer := &fakeMailer{}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, mailer, &clock)

		_, err := svc.Issue("a@x.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"a@x.com"}, mailer.sent)
	})

	t.Run("rejects an empty subject", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		clock := time.Now()
		svc := newTestService(repo, &fakeMailer{}, &clock)

		_, err := svc.Issue("")
		assert.Error(t, err)
		assert.Empty(t, repo.records)
	})

	t.Run("delivery failure is distinct and leaves the code verifiable", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		mailer := &fakeMailer{err: errors.New("smtp down")}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, mailer, &clock)

		_, err := svc.Issue("a@x.com")
		require.ErrorIs(t, err, ErrDeliveryFailed)

		// The record was written before the delivery attempt.
		require.Len(t, repo.records, 1)
		ok, err := svc.Verify("a@x.com", repo.records[0].Code)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestOTPService_Verify(t *testing.T) {
	t.Run("single use: second verify with the same pair returns false", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, &fakeMailer{}, &clock)

		code, err := svc.Issue("a@x.com")
		require.NoError(t, err)

		ok, err := svc.Verify("a@x.com", code)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Verify("a@x.com", code)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired code verifies false even if unconsumed", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, &fakeMailer{}, &clock)

		code, err := svc.Issue("a@x.com")
		require.NoError(t, err)

		clock = clock.Add(OTPTTL + time.Second)
		ok, err := svc.Verify("a@x.com", code)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("issuing again invalidates the previous code", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, &fakeMailer{}, &clock)

		first, err := svc.Issue("a@x.com")
		require.NoError(t, err)
		second, err := svc.Issue("a@x.com")
		require.NoError(t, err)

		ok, err := svc.Verify("a@x.com", first)
		require.NoError(t, err)
		if first == second {
			// The new code happens to collide with the old one; it is still
			// the one valid record and may verify.
			assert.True(t, ok)
		} else {
			assert.False(t, ok)
		}

		ok, err = svc.Verify("a@x.com", second)
		require.NoError(t, err)
		if first != second {
			assert.True(t, ok)
		}
	})

	t.Run("wrong subject or code is a normal false, not an error", func(t *testing.T) {
		repo := &fakeOTPRepo{}
		clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		svc := newTestService(repo, &fakeMailer{}, &clock)

		code, err := svc.Issue("a@x.com")
		require.NoError(t, err)

		ok, err := svc.Verify("b@x.com", code)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = svc.Verify("a@x.com", "000000")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = svc.Verify("", "")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestOTPService_SweepExpired(t *testing.T) {
	repo := &fakeOTPRepo{}
	clock := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &fakeMailer{}, &clock)

	_, err := svc.Issue("expired@x.com")
	require.NoError(t, err)
	consumed, err := svc.Issue("consumed@x.com")
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	ok, err := svc.Verify("consumed@x.com", consumed)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Issue("live@x.com")
	require.NoError(t, err)

	// Past the first subject's expiry, within the last one's.
	clock = clock.Add(OTPTTL - 30*time.Second)
	count, err := svc.SweepExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, "live@x.com", repo.records[0].Subject)
}
