package account

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medimind/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemStore(), nil)
}

func TestSignupThenLogin(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Signup("Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.Name)
	assert.NotZero(t, created.ID)

	// Signup logs the user in immediately.
	cur, ok, err := svc.Current()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, created, cur)

	// A fresh login with the same pair returns the same record.
	got, err := svc.Login("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestSignupValidation(t *testing.T) {
	tests := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@b.c", "pw"},
		{"empty email", "A", "", "pw"},
		{"empty password", "A", "a@b.c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t)
			_, err := svc.Signup(tt.userName, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Signup("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	// Different name and password do not matter; the email is the key.
	_, err = svc.Signup("Someone Else", "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The match is case-sensitive, so a differently-cased email is new.
	_, err = svc.Signup("Alice", "Alice@example.com", "secret")
	assert.NoError(t, err)
}

func TestLoginFailures(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Signup("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Login("", "secret")
	assert.ErrorIs(t, err, ErrMissingField)

	// Unknown email and wrong password are indistinguishable.
	_, err = svc.Login("nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Signup("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	_, ok, err := svc.Current()
	require.NoError(t, err)
	assert.False(t, ok)

	// Logging out twice is fine.
	assert.NoError(t, svc.Logout())
}

func TestSignupIDsUniqueWithinMillisecond(t *testing.T) {
	svc := newTestService(t)
	frozen := time.UnixMilli(1700000000000)
	svc.SetClock(func() time.Time { return frozen })

	a, err := svc.Signup("A", "a@example.com", "pw")
	require.NoError(t, err)
	b, err := svc.Signup("B", "b@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, frozen.UnixMilli(), a.ID)
	assert.Greater(t, b.ID, a.ID)
}

func TestCorruptUsersRecordPropagates(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(store.KeyUsers, "{not json"))
	svc := NewService(st, nil)

	_, err := svc.Login("a@b.c", "pw")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}
