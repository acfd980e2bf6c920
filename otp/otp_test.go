package otp

import (
	"testing"
	"time"

	"foodondoor-backend/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "9876543210"

func newTestManager(t *testing.T) (*Manager, *cache.MemoryStore, *time.Time) {
	t.Helper()
	store := cache.NewMemoryStore()
	now := time.Now()
	store.SetClock(func() time.Time { return now })

	m := NewManager(store, 5*time.Minute, 60*time.Second, 3)
	m.now = func() time.Time { return now }
	return m, store, &now
}

func advance(m *Manager, store *cache.MemoryStore, now *time.Time, d time.Duration) {
	*now = now.Add(d)
	m.now = func() time.Time { return *now }
	store.SetClock(func() time.Time { return *now })
}

func TestIssueReturnsSixDigitCode(t *testing.T) {
	m, _, _ := newTestManager(t)

	code, err := m.Issue(phone)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Regexp(t, `^[1-9][0-9]{5}$`, code)
}

func TestIssueRateLimited(t *testing.T) {
	m, store, now := newTestManager(t)

	_, err := m.Issue(phone)
	require.NoError(t, err)

	_, err = m.Issue(phone)
	assert.ErrorIs(t, err, ErrRateLimited)

	// A different phone is not affected
	_, err = m.Issue("1112223334")
	assert.NoError(t, err)

	// After the resend window a new code can be issued
	advance(m, store, now, 61*time.Second)
	_, err = m.Issue(phone)
	assert.NoError(t, err)
}

func TestVerifyCorrectCodeConsumesRecord(t *testing.T) {
	m, _, _ := newTestManager(t)

	code, err := m.Issue(phone)
	require.NoError(t, err)

	assert.NoError(t, m.Verify(phone, code))

	// Replaying the same code fails: the record was consumed
	assert.ErrorIs(t, m.Verify(phone, code), ErrExpired)
}

func TestVerifyWrongCodeBurnsAttempts(t *testing.T) {
	m, _, _ := newTestManager(t)

	code, err := m.Issue(phone)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	assert.ErrorIs(t, m.Verify(phone, wrong), ErrInvalidCode)
	assert.ErrorIs(t, m.Verify(phone, wrong), ErrInvalidCode)
	assert.ErrorIs(t, m.Verify(phone, wrong), ErrInvalidCode)

	// Fourth try is rejected even with the right code
	assert.ErrorIs(t, m.Verify(phone, code), ErrTooManyAttempts)

	// And the record is gone afterwards
	assert.ErrorIs(t, m.Verify(phone, code), ErrExpired)
}

func TestVerifyCorrectCodeAfterWrongTries(t *testing.T) {
	m, _, _ := newTestManager(t)

	code, err := m.Issue(phone)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	assert.ErrorIs(t, m.Verify(phone, wrong), ErrInvalidCode)
	assert.ErrorIs(t, m.Verify(phone, wrong), ErrInvalidCode)
	assert.NoError(t, m.Verify(phone, code))
}

func TestVerifyExpiredCode(t *testing.T) {
	m, store, now := newTestManager(t)

	code, err := m.Issue(phone)
	require.NoError(t, err)

	advance(m, store, now, 5*time.Minute+time.Second)
	assert.ErrorIs(t, m.Verify(phone, code), ErrExpired)
}

func TestVerifyUnknownPhone(t *testing.T) {
	m, _, _ := newTestManager(t)
	assert.ErrorIs(t, m.Verify("0000000000", "123456"), ErrExpired)
}

func TestReissueReplacesCode(t *testing.T) {
	m, store, now := newTestManager(t)

	first, err := m.Issue(phone)
	require.NoError(t, err)

	advance(m, store, now, 61*time.Second)
	second, err := m.Issue(phone)
	require.NoError(t, err)

	// Only the latest code is live
	if first != second {
		assert.ErrorIs(t, m.Verify(phone, first), ErrInvalidCode)
	}
	assert.NoError(t, m.Verify(phone, second))
}
