// Package session implements opaque server-side sessions backed by Redis.
// The session caches the agency's coordinates so read paths can annotate
// distances without an extra roster lookup.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName carries the opaque session token.
const CookieName = "resq_session"

// TTL is the session lifetime; it is refreshed whenever the session is
// rewritten.
const TTL = 24 * time.Hour

// ErrNotFound means the token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Session is the per-request identity populated by the auth layer. It is
// passed into handlers through the request context, never held in process
// state.
type Session struct {
	AgencyID  string   `json:"agency_id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Manager issues and resolves session tokens.
type Manager struct {
	redis *redis.Client
}

// NewManager wraps a Redis client.
func NewManager(client *redis.Client) *Manager {
	return &Manager{redis: client}
}

// Issue stores the session under a fresh opaque token.
func (m *Manager) Issue(ctx context.Context, s Session) (string, error) {
	token := uuid.New().String()
	if err := m.write(ctx, token, s); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token. ErrNotFound covers both unknown and expired tokens.
func (m *Manager) Get(ctx context.Context, token string) (Session, error) {
	payload, err := m.redis.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

// Update rewrites the session under its existing token, refreshing the TTL.
func (m *Manager) Update(ctx context.Context, token string, s Session) error {
	return m.write(ctx, token, s)
}

// Clear removes the session. Clearing an unknown token is not an error.
func (m *Manager) Clear(ctx context.Context, token string) error {
	if err := m.redis.Del(ctx, key(token)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (m *Manager) write(ctx context.Context, token string, s Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := m.redis.Set(ctx, key(token), payload, TTL).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func key(token string) string {
	return "session:" + token
}

// SetCookie attaches the session cookie to the response. SameSite=None with
// Secure lets the browser frontend send it cross-origin.
func SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, token, int(TTL.Seconds()), "/", "", true, true)
}

// ClearCookie expires the session cookie.
func ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, "", -1, "/", "", true, true)
}
