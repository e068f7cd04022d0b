package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles known to the service.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// --- Domain Model ---

// User is an account. PasswordHash is hex PBKDF2-SHA256.
type User struct {
	Username     string
	PasswordHash string
	Role         string
}

// LoginEvent is one login attempt, successful or not.
type LoginEvent struct {
	Username  string
	IPAddress string
	Success   bool
	Timestamp time.Time
}

// Claims is the payload of an issued token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Stats summarizes the login history.
type Stats struct {
	TotalAttempts      int
	SuccessfulAttempts int
	FailedAttempts     int
	UniqueUsers        int
	UniqueIPs          int
	// PotentiallyMaliciousIPs maps an IP to its recent failure count.
	PotentiallyMaliciousIPs map[string]int
}

// --- UseCase Inputs ---

type LoginInput struct {
	Username  string
	Password  string
	IPAddress string
}

type ChangePasswordInput struct {
	Username    string
	OldPassword string
	NewPassword string
}

type LoginHistoryInput struct {
	Username string
	// Success filters by outcome when set.
	Success *bool
	Limit   int
}

// --- UseCase Outputs ---

type LoginOutput struct {
	Token     string
	Username  string
	Role      string
	ExpiresIn int
}
