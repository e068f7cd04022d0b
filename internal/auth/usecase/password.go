package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"invoice-assistant/internal/auth"
)

const (
	pbkdf2Iterations = 100000
	pbkdf2KeyLen     = sha256.Size
)

// HashPassword returns hex(PBKDF2-SHA256(password, salt)).
func HashPassword(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

func (uc *implUseCase) checkPassword(hash, password string) bool {
	want := HashPassword(password, uc.cfg.PasswordSalt)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(want)) == 1
}

// DefaultUsers are the accounts a fresh deployment starts with.
func DefaultUsers(salt string) []auth.User {
	return []auth.User{
		{Username: "admin", PasswordHash: HashPassword("admin123", salt), Role: auth.RoleAdmin},
		{Username: "user", PasswordHash: HashPassword("user123", salt), Role: auth.RoleUser},
	}
}
