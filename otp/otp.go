// Package otp issues and verifies the one-time codes used for passwordless
// login across all three actor flows.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"foodondoor-backend/cache"
)

var (
	ErrRateLimited     = errors.New("please wait before requesting another OTP")
	ErrExpired         = errors.New("OTP has expired")
	ErrTooManyAttempts = errors.New("too many attempts, please request a new OTP")
	ErrInvalidCode     = errors.New("invalid OTP")
)

const (
	otpKeyPrefix       = "otp_"
	rateLimitKeyPrefix = "rate_limit_"
)

// Record is the cached state for one phone number. At most one live record
// exists per phone.
type Record struct {
	Code      string
	Attempts  int
	CreatedAt time.Time
}

type Manager struct {
	Store       cache.Store
	TTL         time.Duration // code lifetime
	ResendAfter time.Duration // re-issue block window
	MaxAttempts int

	// now is overridable in tests
	now func() time.Time
}

func NewManager(store cache.Store, ttl, resendAfter time.Duration, maxAttempts int) *Manager {
	return &Manager{
		Store:       store,
		TTL:         ttl,
		ResendAfter: resendAfter,
		MaxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// Issue generates a fresh 6-digit code for the phone and stores it with the
// configured TTL. A live rate-limit marker rejects re-issuance. The code is
// returned to the caller for transport; delivery is the SMS collaborator's
// problem.
func (m *Manager) Issue(phone string) (string, error) {
	if _, live := m.Store.Get(rateLimitKeyPrefix + phone); live {
		return "", ErrRateLimited
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	m.Store.SetTTL(otpKeyPrefix+phone, &Record{
		Code:      code,
		Attempts:  0,
		CreatedAt: m.now(),
	}, m.TTL)
	m.Store.SetTTL(rateLimitKeyPrefix+phone, true, m.ResendAfter)

	return code, nil
}

// Verify checks the submitted code. A correct code consumes the record so it
// cannot be replayed; a wrong code burns one attempt and leaves the record in
// place until MaxAttempts is reached, at which point the record is deleted.
func (m *Manager) Verify(phone, submitted string) error {
	key := otpKeyPrefix + phone
	v, ok := m.Store.Get(key)
	if !ok {
		return ErrExpired
	}
	rec, ok := v.(*Record)
	if !ok {
		m.Store.Delete(key)
		return ErrExpired
	}

	if rec.Attempts >= m.MaxAttempts {
		m.Store.Delete(key)
		return ErrTooManyAttempts
	}

	rec.Attempts++
	remaining := m.TTL - m.now().Sub(rec.CreatedAt)
	if remaining <= 0 {
		m.Store.Delete(key)
		return ErrExpired
	}
	m.Store.SetTTL(key, rec, remaining)

	// Compare as strings to avoid type-mismatch false negatives.
	if rec.Code != submitted {
		return ErrInvalidCode
	}

	m.Store.Delete(key)
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
