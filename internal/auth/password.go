package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters following OWASP recommendations.
const (
	argonMemory  = 64 * 1024
	argonTime    = 3
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// HashPassword hashes a password with argon2id and renders it in PHC format:
// $argon2id$v=19$m=65536,t=3,p=4$<salt>$<hash>
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks a password against an argon2id PHC hash. The stored
// parameters drive the comparison, so hashes created under older settings
// keep verifying after the defaults change.
func VerifyPassword(password, encoded string) (bool, error) {
	params, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), params.salt,
		params.time, params.memory, params.threads, uint32(len(params.hash)))
	return subtle.ConstantTimeCompare(params.hash, candidate) == 1, nil
}

type phcParams struct {
	salt    []byte
	hash    []byte
	memory  uint32
	time    uint32
	threads uint8
}

func parsePHC(encoded string) (phcParams, error) {
	var params phcParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return params, fmt.Errorf("invalid PHC format: expected 6 parts, got %d", len(parts))
	}
	if parts[1] != "argon2id" {
		return params, fmt.Errorf("unsupported algorithm %q", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, fmt.Errorf("failed to parse version: %w", err)
	}
	if version != argon2.Version {
		return params, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, fmt.Errorf("failed to parse parameters: %w", err)
	}

	var err error
	if params.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return params, fmt.Errorf("failed to decode salt: %w", err)
	}
	if params.hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return params, fmt.Errorf("failed to decode hash: %w", err)
	}
	return params, nil
}
