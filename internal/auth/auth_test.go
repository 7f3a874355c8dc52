package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
)

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(4, 8) // low cost keeps the test fast

	hash, err := h.Hash("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, h.Compare(hash, "correct horse battery"))
	assert.False(t, h.Compare(hash, "wrong password"))
}

func TestHasherRejectsShortPasswords(t *testing.T) {
	h := NewHasher(4, 8)

	_, err := h.Hash("short")

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeWeakPassword, stdErr.Code)
}

func TestNewResetToken(t *testing.T) {
	a, err := NewResetToken()
	require.NoError(t, err)
	b, err := NewResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 64, "32 random bytes hex encoded")
	assert.NotEqual(t, a, b)
}

func newTestSessions(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client, ttl), mr
}

func TestSessionLifecycle(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)
	ctx := context.Background()

	created, err := sessions.Create(ctx, "u1", "couple@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, created.Token)

	got, err := sessions.Get(ctx, created.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "couple@example.com", got.Email)

	require.NoError(t, sessions.Delete(ctx, created.Token))

	_, err = sessions.Get(ctx, created.Token)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, stdErr.Code)
}

func TestSessionUnknownToken(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)

	_, err := sessions.Get(context.Background(), "never-issued")

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, stdErr.Code)
}

func TestSessionExpiry(t *testing.T) {
	sessions, mr := newTestSessions(t, time.Hour)
	ctx := context.Background()

	created, err := sessions.Create(ctx, "u1", "couple@example.com")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = sessions.Get(ctx, created.Token)
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, stdErr.Code, "expired key is gone from redis")
}

func TestSessionEmptyToken(t *testing.T) {
	sessions, _ := newTestSessions(t, time.Hour)

	_, err := sessions.Get(context.Background(), "")
	assert.Error(t, err)
}
