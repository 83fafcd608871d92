// Package session tracks the logged-in user between command invocations.
// A login issues a signed, expiring token persisted in the store; every
// authenticated command validates it to establish the current user, whose
// name then namespaces all per-user storage keys.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// ErrNotAuthenticated indicates no valid session exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// DefaultTTL is how long a login stays valid.
const DefaultTTL = 30 * 24 * time.Hour

// Claims are the session token claims.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Data is the persisted session record.
type Data struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// Manager issues and validates sessions. The signing secret is generated
// once per installation and persisted alongside the session.
type Manager struct {
	kv  storage.KV
	ttl time.Duration
}

// NewManager creates a session manager with the given token lifetime.
func NewManager(kv storage.KV, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{kv: kv, ttl: ttl}
}

// Login issues a session token for username and persists it, replacing any
// previous session.
func (m *Manager) Login(ctx context.Context, username string) error {
	secret, err := m.secret(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "tagihan",
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	data, err := json.Marshal(Data{
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := m.kv.Put(ctx, budget.KeySession, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Logout removes the persisted session. Logging out with no session is not
// an error.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.kv.Delete(ctx, budget.KeySession); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentUser validates the persisted session token and returns the
// logged-in username. Returns ErrNotAuthenticated when no session exists,
// the token is expired, or validation fails for any other reason.
func (m *Manager) CurrentUser(ctx context.Context) (string, error) {
	raw, err := m.kv.Get(ctx, budget.KeySession)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", ErrNotAuthenticated
	}

	secret, err := m.secret(ctx)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(data.Token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", ErrNotAuthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", ErrNotAuthenticated
	}
	return claims.Username, nil
}

// secret returns the per-installation signing secret, generating and
// persisting it on first use.
func (m *Manager) secret(ctx context.Context) ([]byte, error) {
	raw, err := m.kv.Get(ctx, budget.KeySessionSecret)
	if err == nil {
		secret, decodeErr := base64.StdEncoding.DecodeString(string(raw))
		if decodeErr == nil && len(secret) > 0 {
			return secret, nil
		}
		// Fall through and regenerate a corrupted secret. Existing
		// sessions become invalid, which degrades to a re-login.
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		return nil, fmt.Errorf("failed to load session secret: %w", err)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate session secret: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(secret)
	if err := m.kv.Put(ctx, budget.KeySessionSecret, []byte(encoded)); err != nil {
		return nil, fmt.Errorf("failed to save session secret: %w", err)
	}
	return secret, nil
}
