package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Role names one of the static access levels.
type Role string

const (
	// RoleAll grants every endpoint.
	RoleAll Role = "all"
	// RoleStoreOnly grants the analytics endpoints.
	RoleStoreOnly Role = "store_only"
	// RoleCSVOnly grants the filter and export endpoints.
	RoleCSVOnly Role = "csv_only"
)

// ParseRole maps a user-file role name to its Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAll, RoleStoreOnly, RoleCSVOnly:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ErrInvalidCredentials covers unknown users and wrong passwords alike;
// login responses never distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

type userEntry struct {
	hash string
	role Role
}

// UserStore is the static credential set loaded once at startup. Read-only
// after load; user management happens by editing the file and restarting.
type UserStore struct {
	users map[string]userEntry
}

// userFile is the YAML shape of the user store:
//
//	users:
//	  admin:
//	    password_hash: $argon2id$v=19$...
//	    role: all
type userFile struct {
	Users map[string]struct {
		PasswordHash string `yaml:"password_hash"`
		Role         string `yaml:"role"`
	} `yaml:"users"`
}

// LoadUserStore reads and validates the YAML user file. Every entry must
// carry a known role and an argon2id hash; a bad entry fails the whole load
// rather than silently locking one user out.
func LoadUserStore(path string) (*UserStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user store: %w", err)
	}

	var file userFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse user store: %w", err)
	}
	if len(file.Users) == 0 {
		return nil, fmt.Errorf("user store %s defines no users", path)
	}

	users := make(map[string]userEntry, len(file.Users))
	for name, u := range file.Users {
		role, err := ParseRole(u.Role)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", name, err)
		}
		if !strings.HasPrefix(u.PasswordHash, "$argon2id$") {
			return nil, fmt.Errorf("user %q: password_hash is not an argon2id PHC string", name)
		}
		users[name] = userEntry{hash: u.PasswordHash, role: role}
	}

	slog.Info("[Auth] User store loaded", "path", path, "users", len(users))
	return &UserStore{users: users}, nil
}

// Authenticate verifies a username/password pair and returns the user's role.
func (s *UserStore) Authenticate(username, password string) (Role, error) {
	entry, ok := s.users[username]
	if !ok {
		return "", ErrInvalidCredentials
	}

	match, err := VerifyPassword(password, entry.hash)
	if err != nil {
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return "", ErrInvalidCredentials
	}
	return entry.role, nil
}
