package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Scheme selects the password hashing algorithm.
type Scheme string

const (
	// SchemeSHA256 is the legacy unsalted SHA-256 hex digest. It is the
	// default because it matches the hashes already present in stores
	// written by earlier versions: identical passwords produce identical
	// hashes across accounts.
	SchemeSHA256 Scheme = "sha256"

	// SchemeArgon2id is the hardened per-account-salted encoding.
	SchemeArgon2id Scheme = "argon2id"
)

// Argon2id parameters
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
	argon2SaltLen = 16
)

const argon2Prefix = "$argon2id$"

// HashPassword hashes a plaintext password under the given scheme.
func HashPassword(password string, scheme Scheme) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	switch scheme {
	case SchemeSHA256:
		sum := sha256.Sum256([]byte(password))
		return hex.EncodeToString(sum[:]), nil
	case SchemeArgon2id:
		salt := make([]byte, argon2SaltLen)
		if _, err := rand.Read(salt); err != nil {
			return "", fmt.Errorf("failed to generate salt: %w", err)
		}
		return encodeArgon2(password, salt), nil
	default:
		return "", fmt.Errorf("unknown hash scheme: %s", scheme)
	}
}

// CheckPassword reports whether password matches the stored hash. The
// encoding is detected from the hash itself, so stores that mix legacy
// SHA-256 digests with argon2id encodings verify correctly.
func CheckPassword(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}

	if strings.HasPrefix(stored, argon2Prefix) {
		return checkArgon2(password, stored)
	}

	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
}

// encodeArgon2 produces the standard $argon2id$v=19$m=...,t=...,p=...$salt$hash
// encoding with base64 raw-std salt and key.
func encodeArgon2(password string, salt []byte) string {
	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix,
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
}

func checkArgon2(password, stored string) bool {
	parts := strings.Split(stored, "$")
	// "", "argon2id", "v=19", "m=...,t=...,p=...", salt, hash
	if len(parts) != 6 {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
