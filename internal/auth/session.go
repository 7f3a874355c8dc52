package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/metrics"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps opaque session tokens in Redis. The token is the only
// thing the client holds; everything else lives server side with a TTL.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create issues a new session token for the user.
func (s *SessionStore) Create(ctx context.Context, userID, email string) (*models.Session, error) {
	now := time.Now()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.Token, raw, s.ttl).Err(); err != nil {
		return nil, apperrors.NewCacheUnavailableError(err)
	}

	metrics.SessionsActive.Inc()
	return session, nil
}

// Get resolves a token to its session. Unknown or expired tokens return an
// unauthorized error.
func (s *SessionStore) Get(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorizedError("missing session token")
	}

	raw, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, apperrors.NewUnauthorizedError("unknown session token")
	}
	if err != nil {
		return nil, apperrors.NewCacheUnavailableError(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if session.IsExpired() {
		_ = s.client.Del(ctx, sessionKeyPrefix+token).Err()
		return nil, apperrors.NewSessionExpiredError()
	}
	return &session, nil
}

// Delete removes a session, logging the user out.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	metrics.SessionsActive.Dec()
	return nil
}
