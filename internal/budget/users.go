package budget

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/crypto"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/models"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
)

// UserStore manages the global username → password-hash mapping. It is the
// only store that is not namespaced per user.
type UserStore struct {
	kv     storage.KV
	scheme crypto.Scheme
}

// NewUserStore creates a UserStore hashing new passwords under scheme.
// Verification always auto-detects the stored encoding, so changing the
// scheme never invalidates existing accounts.
func NewUserStore(kv storage.KV, scheme crypto.Scheme) *UserStore {
	return &UserStore{kv: kv, scheme: scheme}
}

// Load returns the credentials mapping. An absent or corrupted stored value
// yields an empty mapping, never an error.
func (s *UserStore) Load(ctx context.Context) models.Credentials {
	data, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		return models.Credentials{}
	}

	var users models.Credentials
	if err := json.Unmarshal(data, &users); err != nil {
		return models.Credentials{}
	}
	if users == nil {
		users = models.Credentials{}
	}
	return users
}

// Save overwrites the credentials mapping wholesale.
func (s *UserStore) Save(ctx context.Context, users models.Credentials) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := s.kv.Put(ctx, KeyUsers, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// Count returns the number of registered users.
func (s *UserStore) Count(ctx context.Context) int {
	return len(s.Load(ctx))
}

// Register creates a new account. Returns ErrUserExists when the username
// is already taken.
func (s *UserStore) Register(ctx context.Context, username, password string) error {
	users := s.Load(ctx)
	if _, ok := users[username]; ok {
		return ErrUserExists
	}

	hash, err := crypto.HashPassword(password, s.scheme)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users[username] = hash
	return s.Save(ctx, users)
}

// Verify reports whether username/password match a stored account. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *UserStore) Verify(ctx context.Context, username, password string) bool {
	users := s.Load(ctx)
	hash, ok := users[username]
	if !ok {
		return false
	}
	return crypto.CheckPassword(password, hash)
}

// ChangePassword replaces the stored hash for username after verifying the
// current password. Returns ErrInvalidCredentials when the current password
// is wrong or the account does not exist.
func (s *UserStore) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if !s.Verify(ctx, username, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(newPassword, s.scheme)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	users := s.Load(ctx)
	users[username] = hash
	return s.Save(ctx, users)
}
