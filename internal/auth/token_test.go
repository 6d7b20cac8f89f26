package auth

import (
	"testing"
	"time"

	"job-board-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = &models.User{ID: 42, Email: "seeker@example.com", Role: models.RoleJobSeeker}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "job-board-api")

	token, issued, err := m.Generate(testUser)
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ID)
	assert.Equal(t, "seeker@example.com", claims.Email)
	assert.Equal(t, models.RoleJobSeeker, claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "job-board-api", claims.Issuer)
	assert.Equal(t, issued.RegisteredClaims.ID, claims.RegisteredClaims.ID)
	assert.NotEmpty(t, claims.RegisteredClaims.ID)
	assert.Equal(t, models.Actor{ID: 42, Email: "seeker@example.com", Role: models.RoleJobSeeker}, claims.Actor())
}

func TestTokenManager_UniqueTokenIDs(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "job-board-api")
	_, a, err := m.Generate(testUser)
	require.NoError(t, err)
	_, b, err := m.Generate(testUser)
	require.NoError(t, err)
	assert.NotEqual(t, a.RegisteredClaims.ID, b.RegisteredClaims.ID)
}

func TestTokenManager_Expired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", time.Hour, "job-board-api")
	m.now = fixedClock(issuedAt)

	token, _, err := m.Generate(testUser)
	require.NoError(t, err)

	m.now = fixedClock(issuedAt.Add(2 * time.Hour))
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "job-board-api")

	t.Run("Other secret", func(t *testing.T) {
		token, _, err := NewTokenManager("other", time.Hour, "job-board-api").Generate(testUser)
		require.NoError(t, err)
		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{ID: 1, Role: models.RoleEmployer}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Unknown role", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			ID:   1,
			Role: models.Role("admin"),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := m.Parse("abc")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestTokenManager_Remaining(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewTokenManager("secret", 24*time.Hour, "job-board-api")
	m.now = fixedClock(now)

	_, claims, err := m.Generate(testUser)
	require.NoError(t, err)

	m.now = fixedClock(now.Add(6 * time.Hour))
	assert.Equal(t, 18*time.Hour, m.Remaining(claims))
	assert.Zero(t, m.Remaining(&Claims{}))
}
